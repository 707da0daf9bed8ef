package laxder

import (
	"encoding/asn1"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// CompactSignature is a normalized ECDSA signature: r followed by s, each a
// 32-byte big-endian unsigned integer. A successful parse always yields
// exactly this form regardless of how loosely the input was encoded.
type CompactSignature [SignatureSize]byte

// R returns the r component as a 32-byte big-endian value.
func (sig CompactSignature) R() [fieldSize]byte {
	var r [fieldSize]byte
	copy(r[:], sig[:fieldSize])
	return r
}

// S returns the s component as a 32-byte big-endian value.
func (sig CompactSignature) S() [fieldSize]byte {
	var s [fieldSize]byte
	copy(s[:], sig[fieldSize:])
	return s
}

// String returns the signature as 128 lowercase hex characters.
func (sig CompactSignature) String() string {
	return hex.EncodeToString(sig[:])
}

// Signature converts the compact form into a decred ecdsa.Signature suitable
// for verification. The parser deliberately does not enforce the curve-order
// bound, so the conversion fails when either component is not reduced modulo
// the secp256k1 group order.
func (sig CompactSignature) Signature() (*ecdsa.Signature, error) {
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[:fieldSize]); overflow {
		return nil, errors.New("r is >= curve order")
	}
	if overflow := s.SetByteSlice(sig[fieldSize:]); overflow {
		return nil, errors.New("s is >= curve order")
	}
	return ecdsa.NewSignature(&r, &s), nil
}

type derSignature struct {
	R, S *big.Int
}

// SerializeDER re-encodes the signature as minimal canonical DER. Re-parsing
// the result yields the identical 64 bytes, so this is the strict companion
// to the lenient ParseSignature.
func (sig CompactSignature) SerializeDER() ([]byte, error) {
	r := new(big.Int).SetBytes(sig[:fieldSize])
	s := new(big.Int).SetBytes(sig[fieldSize:])
	der, err := asn1.Marshal(derSignature{R: r, S: s})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal signature: %w", err)
	}
	return der, nil
}
