package hxattrs

import (
	"errors"
	"fmt"
)

// Sentinel errors for schema and codec operations.
var (
	ErrUnknownAttribute = errors.New("hxattrs: unknown attribute")
	ErrDecryptFailed    = errors.New("hxattrs: attribute decryption failed")
	ErrSignatureInvalid = errors.New("hxattrs: signature verification failed")
	ErrInvalidFormat    = errors.New("hxattrs: invalid attribute encoding")
)

// SchemaError reports an omission directive naming an attribute outside the
// vocabulary. It is raised when a schema is defined (NewOmitList, MustOmit,
// code generation), never while composing or rendering.
type SchemaError struct {
	Name string // offending name, as written by the caller
	Pos  string // optional source position (file:line), set by the generator
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("hxattrs: cannot omit %q: not in the attribute vocabulary", e.Name)
	if e.Pos != "" {
		return e.Pos + ": " + msg
	}
	return msg
}

// Unwrap lets errors.Is match ErrUnknownAttribute.
func (e *SchemaError) Unwrap() error {
	return ErrUnknownAttribute
}

// IsSchemaError checks if err is (or wraps) a *SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// IsDecodeError checks if err is a decryption, signature or format error
// from Unseal.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrInvalidFormat)
}
