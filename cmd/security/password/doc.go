// Package password provides the Password value type for pwtype.
//
// A Password is built only through New (or NewFromBytes) and holds a digest of
// the submitted input, never the input itself:
// - Input shorter than MinLength bytes is rejected with a TooShort error.
// - Byte input that is not valid UTF-8 is rejected with an InvalidEncoding error.
// - Accepted input is reduced to the decimal form of its 64-bit xxhash digest.
//
// Security notes:
// - The digest is fast and unsalted. It is NOT suitable for storing real credentials;
//   use an Argon2id or bcrypt hasher for that.
// - Nothing in this package logs or prints its input. Formatting a Password
//   (fmt, slog) yields the redacted digest only.
package password
