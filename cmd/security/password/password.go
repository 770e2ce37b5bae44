package password

import (
	"fmt"
	"log/slog"
	"strconv"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// MinLength is the minimum accepted input length in bytes (one ASCII character per byte).
const MinLength = 8

const redacted = "[REDACTED]"

// Password holds the digest of a validated password. The zero value holds no digest.
type Password struct {
	digest string
}

// New validates raw and returns a Password holding only its digest.
// Length is measured in bytes; multi-byte text is not given special treatment.
func New(raw string) (Password, error) {
	if n := len(raw); n < MinLength {
		return Password{}, TooShort(n)
	}
	return Password{digest: digest(raw)}, nil
}

// NewFromBytes is New for byte input. Input that is not valid UTF-8 is rejected
// with an InvalidEncoding error before the length check.
func NewFromBytes(raw []byte) (Password, error) {
	if !utf8.Valid(raw) {
		return Password{}, InvalidEncoding(fmt.Sprintf("invalid UTF-8 at byte offset %d", firstInvalid(raw)))
	}
	if n := len(raw); n < MinLength {
		return Password{}, TooShort(n)
	}
	return Password{digest: strconv.FormatUint(xxhash.Sum64(raw), 10)}, nil
}

// digest returns the decimal form of the 64-bit xxhash of s.
// xxhash uses a fixed seed, so equal inputs always produce equal digests.
func digest(s string) string {
	return strconv.FormatUint(xxhash.Sum64String(s), 10)
}

func firstInvalid(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Digest returns the stored digest. It is empty only for the zero value.
func (p Password) Digest() string { return p.digest }

// IsZero reports whether p was not produced by a constructor.
func (p Password) IsZero() bool { return p.digest == "" }

func (p Password) String() string {
	return "Password(" + redacted + ")"
}

// GoString backs %#v and shows the digest, which is safe to print.
func (p Password) GoString() string {
	return fmt.Sprintf("password.Password{digest:%q}", p.digest)
}

// Format keeps every verb on the redacted forms above; %v with the + flag
// would otherwise reach into the unexported field.
func (p Password) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('#'):
		_, _ = fmt.Fprint(f, p.GoString())
	case verb == 'v' && f.Flag('+'):
		_, _ = fmt.Fprintf(f, "{digest:%s}", p.digest)
	case verb == 'q':
		_, _ = fmt.Fprintf(f, "%q", p.String())
	default:
		_, _ = fmt.Fprint(f, p.String())
	}
}

// LogValue implements slog.LogValuer.
func (p Password) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("value", redacted),
		slog.String("digest", p.digest),
	)
}
