package hxattrs

import (
	"errors"

	"github.com/pthm/hxattrs/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a new encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// Seal encodes a finished bag into a URL-safe token so it can cross a
// request boundary, typically inside hx-vals. Signed tokens are readable
// but tamper-proof; sensitive tokens are encrypted.
func Seal(enc *Encoder, a Attrs, sensitive bool) (string, error) {
	return enc.Encode(a, sensitive)
}

// Unseal decodes a token produced by Seal with the same key and mode.
// Failures wrap ErrInvalidFormat, ErrSignatureInvalid or ErrDecryptFailed.
func Unseal(enc *Encoder, token string, sensitive bool) (Attrs, error) {
	var a Attrs
	if err := enc.Decode(token, sensitive, &a); err != nil {
		return Attrs{}, wrapEncodingError(err)
	}
	return a, nil
}

// wrapEncodingError maps encoding package errors to hxattrs sentinels.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) || errors.Is(err, ErrInvalidFormat) {
		return ErrInvalidFormat
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
