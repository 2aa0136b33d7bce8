package iter

import (
	"errors"
)

// MapAll applies fun to every element and joins all errors. Nothing is returned if any call fails.
func MapAll[F any, T any](xs []F, fun func(F) (T, error)) ([]T, error) {
	result := make([]T, len(xs))

	var errs []error

	for i, x := range xs {
		var err error

		result[i], err = fun(x)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return result, nil
}
