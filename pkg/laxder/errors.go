package laxder

import "errors"

// Parse failures are routine outcomes for adversarial or legacy-malformed
// input, so they are plain sentinel errors rather than wrapped chains. Use
// errors.Is to distinguish reasons.
var (
	// ErrSigTooShort is returned when the input ends before a required tag,
	// length byte, or length field.
	ErrSigTooShort = errors.New("malformed signature: too short")

	// ErrSigInvalidSeqID is returned when the first byte is not the ASN.1
	// SEQUENCE tag (0x30).
	ErrSigInvalidSeqID = errors.New("malformed signature: no sequence tag")

	// ErrSigInvalidLength is returned when a long-form length field has more
	// significant bytes than a representable size allows.
	ErrSigInvalidLength = errors.New("malformed signature: length overflow")

	// ErrSigInvalidDataLen is returned when a declared length extends past
	// the end of the actual input (truncation).
	ErrSigInvalidDataLen = errors.New("malformed signature: declared length exceeds input")

	// ErrSigInvalidRIntID is returned when the r field does not start with
	// the ASN.1 INTEGER tag (0x02).
	ErrSigInvalidRIntID = errors.New("malformed signature: no integer tag for r")

	// ErrSigInvalidSIntID is returned when the s field does not start with
	// the ASN.1 INTEGER tag (0x02).
	ErrSigInvalidSIntID = errors.New("malformed signature: no integer tag for s")

	// ErrSigZeroLen is returned when an integer field declares a length of
	// zero bytes.
	ErrSigZeroLen = errors.New("malformed signature: zero-length integer")

	// ErrSigOverflow is returned when an integer still has more than 32
	// significant bytes after its leading zero padding is stripped.
	ErrSigOverflow = errors.New("malformed signature: integer exceeds 32 bytes")
)
