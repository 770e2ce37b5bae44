package password

import (
	"errors"
	"fmt"
)

// Public, stable errors for callers.
var (
	ErrTooShort        = errors.New("password too short")
	ErrInvalidEncoding = errors.New("password encoding invalid")
)

// Kind discriminates the variants of Error.
type Kind int

const (
	KindTooShort Kind = iota + 1
	KindInvalidEncoding
)

func (k Kind) String() string {
	switch k {
	case KindTooShort:
		return "too_short"
	case KindInvalidEncoding:
		return "invalid_encoding"
	default:
		return "unknown"
	}
}

// Error is returned by the constructors when input is rejected.
// Exactly one of Length (KindTooShort) or Detail (KindInvalidEncoding) is meaningful.
// Detail must never carry the rejected input.
type Error struct {
	Kind   Kind
	Length int
	Detail string
}

// TooShort reports input of n bytes, fewer than MinLength.
func TooShort(n int) *Error {
	return &Error{Kind: KindTooShort, Length: n}
}

// InvalidEncoding reports input that could not be read as text.
func InvalidEncoding(detail string) *Error {
	return &Error{Kind: KindInvalidEncoding, Detail: detail}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindTooShort:
		return fmt.Sprintf("password should be at least %d characters long, but was %d", MinLength, e.Length)
	case KindInvalidEncoding:
		return fmt.Sprintf("password should be a valid string: %s", e.Detail)
	default:
		return "password rejected"
	}
}

// Unwrap exposes the sentinel for e.Kind so callers can use errors.Is.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindTooShort:
		return ErrTooShort
	case KindInvalidEncoding:
		return ErrInvalidEncoding
	default:
		return nil
	}
}

// IsTooShort reports whether err represents ErrTooShort.
func IsTooShort(err error) bool { return errors.Is(err, ErrTooShort) }

// IsInvalidEncoding reports whether err represents ErrInvalidEncoding.
func IsInvalidEncoding(err error) bool { return errors.Is(err, ErrInvalidEncoding) }
