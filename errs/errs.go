// Package errs defines the sentinel errors returned by stringlet and its
// storage packages.
//
// Typed errors in the stringlet package (LengthError, EncodingError,
// CapacityError) unwrap to the sentinels below, so callers can use either
// errors.Is with a sentinel or errors.As with the typed error.
package errs

import "errors"

// Construction errors.
var (
	// ErrLength indicates the content length does not satisfy the kind's fit rule.
	ErrLength = errors.New("stringlet: content length does not fit")
	// ErrEncoding indicates the content is not valid UTF-8.
	ErrEncoding = errors.New("stringlet: invalid UTF-8")
	// ErrCapacity indicates an illegal (kind, capacity) configuration.
	ErrCapacity = errors.New("stringlet: illegal capacity for kind")
	// ErrInvalidKind indicates an unknown kind value or name.
	ErrInvalidKind = errors.New("stringlet: invalid kind")
	// ErrInvalidRecord indicates a raw record with the wrong size or a non-canonical tail.
	ErrInvalidRecord = errors.New("stringlet: invalid raw record")
)

// Column storage errors.
var (
	ErrInvalidHeaderSize      = errors.New("column: invalid header size")
	ErrInvalidHeaderFlags     = errors.New("column: invalid header flags")
	ErrInvalidMagicNumber     = errors.New("column: invalid magic number")
	ErrInvalidPayload         = errors.New("column: invalid payload")
	ErrChecksumMismatch       = errors.New("column: checksum mismatch")
	ErrConfigMismatch         = errors.New("column: configuration mismatch")
	ErrUnsupportedCompression = errors.New("column: unsupported compression")
	ErrTooManyRecords         = errors.New("column: too many records")
	ErrIndexOutOfRange        = errors.New("column: index out of range")
	ErrEncoderFinished        = errors.New("column: encoder already finished")
	ErrDuplicateString        = errors.New("column: duplicate string in distinct column")
)
