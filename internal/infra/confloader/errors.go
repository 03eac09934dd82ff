package confloader

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingKey is reported when a required key is absent.
	ErrMissingKey = errors.New("key is missing")
	// ErrWrongType is reported when a key holds a value of an unexpected type.
	ErrWrongType = errors.New("value has wrong type")
)

// FieldError describes a malformed configuration field.
type FieldError struct {
	Key  string
	Want string
	Got  any
	Err  error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrWrongType) {
		return fmt.Sprintf("config field %q: expected %s, got %T", e.Key, e.Want, e.Got)
	}
	return fmt.Sprintf("config field %q: %v", e.Key, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missing(key string) error {
	return &FieldError{Key: key, Err: ErrMissingKey}
}

func wrongType(key, want string, got any) error {
	return &FieldError{Key: key, Want: want, Got: got, Err: ErrWrongType}
}
