package laxder

const (
	// SignatureSize is the length in bytes of a normalized compact signature.
	SignatureSize = 64

	// fieldSize is the width of each big-endian component in the compact form.
	fieldSize = SignatureSize / 2

	// maxLengthBytes bounds the significant bytes of a long-form length field.
	// Anything wider cannot describe a real buffer.
	maxLengthBytes = 8

	sequenceTag = 0x30
	integerTag  = 0x02
)

// ParseSignature decodes a possibly non-canonical DER-encoded ECDSA signature
// and normalizes it into the compact 64-byte form.
//
// The input must encode an ASN.1 SEQUENCE holding exactly two INTEGER fields,
// r then s, but a bounded set of BER-legal deviations from strict DER is
// tolerated: long-form length encodings where short form would suffice,
// redundant leading zero bytes in long-form length fields, redundant leading
// zero padding on the integer values, and a declared sequence length longer
// than the two integers actually need (the surplus tail is ignored). A
// declared length that extends past the end of the input is a hard failure,
// as is an integer wider than 32 significant bytes or an empty integer field.
//
// The parser never retains or mutates the input, performs no I/O, and is safe
// for concurrent use. Note that it does not enforce the curve-order bound on
// r and s; that belongs to the verification layer.
func ParseSignature(input []byte) (CompactSignature, error) {
	var sig CompactSignature

	// Sequence tag byte.
	if len(input) == 0 {
		return sig, ErrSigTooShort
	}
	if input[0] != sequenceTag {
		return sig, ErrSigInvalidSeqID
	}

	// Sequence length. The declared length must be satisfiable by the actual
	// buffer; beyond that it is not trusted, since historical encoders wrote
	// sequences longer than their content.
	seqLen, pos, err := readLength(input, 1)
	if err != nil {
		return sig, err
	}
	if seqLen > uint64(len(input)-pos) {
		return sig, ErrSigInvalidDataLen
	}

	rPos, rLen, pos, err := readInteger(input, pos, ErrSigInvalidRIntID)
	if err != nil {
		return sig, err
	}
	sPos, sLen, _, err := readInteger(input, pos, ErrSigInvalidSIntID)
	if err != nil {
		return sig, err
	}

	// Right-align each value into its 32-byte half, zero-padding on the left.
	copy(sig[fieldSize-rLen:fieldSize], input[rPos:rPos+rLen])
	copy(sig[SignatureSize-sLen:], input[sPos:sPos+sLen])
	return sig, nil
}

// readLength decodes the ASN.1 length field starting at pos and returns the
// decoded length together with the position of the first content byte. Both
// the short form and the long form are accepted, including long-form
// encodings a strict DER decoder rejects: unnecessarily wide fields and
// redundant leading zero bytes.
func readLength(input []byte, pos int) (uint64, int, error) {
	if pos >= len(input) {
		return 0, 0, ErrSigTooShort
	}
	lenByte := input[pos]
	pos++
	if lenByte < 0x80 {
		return uint64(lenByte), pos, nil
	}

	numBytes := int(lenByte & 0x7f)
	if numBytes > len(input)-pos {
		return 0, 0, ErrSigTooShort
	}
	for numBytes > 0 && input[pos] == 0 {
		pos++
		numBytes--
	}
	if numBytes > maxLengthBytes {
		return 0, 0, ErrSigInvalidLength
	}
	var length uint64
	for ; numBytes > 0; numBytes-- {
		length = length<<8 | uint64(input[pos])
		pos++
	}
	return length, pos, nil
}

// readInteger decodes one INTEGER field starting at pos. It returns the
// offset and length of the significant value bytes (leading zero padding
// already stripped) plus the position immediately after the field. tagErr
// identifies which component was malformed when the tag byte is wrong.
func readInteger(input []byte, pos int, tagErr error) (int, int, int, error) {
	if pos >= len(input) {
		return 0, 0, 0, ErrSigTooShort
	}
	if input[pos] != integerTag {
		return 0, 0, 0, tagErr
	}

	length, pos, err := readLength(input, pos+1)
	if err != nil {
		return 0, 0, 0, err
	}
	if length == 0 {
		return 0, 0, 0, ErrSigZeroLen
	}
	if length > uint64(len(input)-pos) {
		return 0, 0, 0, ErrSigInvalidDataLen
	}
	valPos := pos
	valLen := int(length)
	next := pos + valLen

	// Leading zeroes are padding whether or not the encoding needed them.
	// A value that strips to nothing is simply zero.
	for valLen > 0 && input[valPos] == 0 {
		valPos++
		valLen--
	}
	if valLen > fieldSize {
		return 0, 0, 0, ErrSigOverflow
	}
	return valPos, valLen, next, nil
}
