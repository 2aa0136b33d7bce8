package main

import (
	"github.com/zhulik/runoff/internal/cli"
)

func main() {
	cli.Run()
}
