package json

import (
	"fmt"
	"io"

	libJSON "github.com/goccy/go-json"
)

func Marshal(data any) ([]byte, error) {
	bytes, err := libJSON.Marshal(data)
	if err != nil {
		return bytes, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return bytes, nil
}

// Encode writes data as indented JSON followed by a newline.
func Encode(w io.Writer, data any) error {
	encoder := libJSON.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
