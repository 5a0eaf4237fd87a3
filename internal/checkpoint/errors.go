package checkpoint

import "errors"

var (
	// ErrInvalidMagic reports a file that is not a .flint checkpoint.
	ErrInvalidMagic = errors.New("invalid magic bytes")

	// ErrUnsupportedVersion reports a format version this build cannot read.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrChecksumMismatch reports a corrupted or truncated file.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrTensorNotFound reports a parameter absent from the checkpoint.
	ErrTensorNotFound = errors.New("tensor not found in checkpoint")
)
