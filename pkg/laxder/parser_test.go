package laxder

import (
	"bytes"
	"errors"
	"testing"
)

// encodeInt wraps value bytes in an INTEGER tag/length header.
func encodeInt(v []byte) []byte {
	return append([]byte{0x02, byte(len(v))}, v...)
}

// encodeSig wraps two encoded integers in a SEQUENCE tag/length header.
func encodeSig(r, s []byte) []byte {
	body := append(encodeInt(r), encodeInt(s)...)
	return append([]byte{0x30, byte(len(body))}, body...)
}

// testR and testS are 32-byte components with the high bit clear, so the
// minimal canonical encoding needs no sign byte.
func testComponents() (r, s []byte) {
	r = make([]byte, 32)
	s = make([]byte, 32)
	for i := range r {
		r[i] = byte(0x3f ^ i)
		s[i] = byte(0x2a + i)
	}
	return r, s
}

func TestParseSignature_MinimalCanonical(t *testing.T) {
	r, s := testComponents()

	sig, err := ParseSignature(encodeSig(r, s))
	if err != nil {
		t.Fatalf("Failed to parse minimal canonical signature: %v", err)
	}

	if !bytes.Equal(sig[:32], r) {
		t.Errorf("r mismatch. Got: %x, Expected: %x", sig[:32], r)
	}
	if !bytes.Equal(sig[32:], s) {
		t.Errorf("s mismatch. Got: %x, Expected: %x", sig[32:], s)
	}
}

func TestParseSignature_SignBytePadding(t *testing.T) {
	r, s := testComponents()
	r[0] |= 0x80 // force the canonical sign byte

	sig, err := ParseSignature(encodeSig(append([]byte{0x00}, r...), s))
	if err != nil {
		t.Fatalf("Failed to parse signature with sign byte: %v", err)
	}

	if !bytes.Equal(sig[:32], r) {
		t.Errorf("r mismatch after sign byte strip. Got: %x, Expected: %x", sig[:32], r)
	}
}

func TestParseSignature_ExcessZeroPadding(t *testing.T) {
	r, s := testComponents()
	padded := append([]byte{0x00, 0x00, 0x00}, r...)

	sig, err := ParseSignature(encodeSig(padded, s))
	if err != nil {
		t.Fatalf("Failed to parse signature with excess padding: %v", err)
	}

	if !bytes.Equal(sig[:32], r) {
		t.Errorf("r mismatch after padding strip. Got: %x, Expected: %x", sig[:32], r)
	}
}

func TestParseSignature_ShortComponentsLeftPadded(t *testing.T) {
	sig, err := ParseSignature(encodeSig([]byte{0x7f}, []byte{0x01, 0x02}))
	if err != nil {
		t.Fatalf("Failed to parse signature with short components: %v", err)
	}

	wantR := append(make([]byte, 31), 0x7f)
	wantS := append(make([]byte, 30), 0x01, 0x02)
	if !bytes.Equal(sig[:32], wantR) {
		t.Errorf("r not left-padded. Got: %x, Expected: %x", sig[:32], wantR)
	}
	if !bytes.Equal(sig[32:], wantS) {
		t.Errorf("s not left-padded. Got: %x, Expected: %x", sig[32:], wantS)
	}
}

func TestParseSignature_NegativeWithoutSignByte(t *testing.T) {
	// BER would read this r as negative; the lenient boundary accepts the
	// raw magnitude as long as it fits 32 bytes.
	r, s := testComponents()
	r[0] |= 0x80

	sig, err := ParseSignature(encodeSig(r, s))
	if err != nil {
		t.Fatalf("Failed to parse high-bit r without sign byte: %v", err)
	}
	if !bytes.Equal(sig[:32], r) {
		t.Errorf("r mismatch. Got: %x, Expected: %x", sig[:32], r)
	}
}

func TestParseSignature_TrailingGarbageInsideOuterLength(t *testing.T) {
	r, s := testComponents()
	raw := encodeSig(r, s)
	garbage := []byte{0xde, 0xad, 0xbe, 0xef}
	raw = append(raw, garbage...)
	raw[1] += byte(len(garbage)) // declared outer length covers the garbage

	sig, err := ParseSignature(raw)
	if err != nil {
		t.Fatalf("Failed to parse signature with declared trailing bytes: %v", err)
	}
	if !bytes.Equal(sig[:32], r) || !bytes.Equal(sig[32:], s) {
		t.Error("Trailing bytes inside the declared length changed the output")
	}
}

func TestParseSignature_LongFormLengths(t *testing.T) {
	r, s := testComponents()
	body := append(encodeInt(r), encodeInt(s)...)
	want, err := ParseSignature(encodeSig(r, s))
	if err != nil {
		t.Fatalf("Failed to parse reference encoding: %v", err)
	}

	cases := []struct {
		name string
		raw  []byte
	}{
		{"long_form_outer", append([]byte{0x30, 0x81, byte(len(body))}, body...)},
		{"long_form_outer_redundant_zeros", append([]byte{0x30, 0x84, 0x00, 0x00, 0x00, byte(len(body))}, body...)},
		{
			"long_form_inner_r",
			append([]byte{0x30, byte(len(body) + 1)},
				append(append([]byte{0x02, 0x81, 0x20}, r...), encodeInt(s)...)...),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sig, err := ParseSignature(tc.raw)
			if err != nil {
				t.Fatalf("Failed to parse: %v", err)
			}
			if sig != want {
				t.Errorf("Output mismatch. Got: %s, Expected: %s", sig, want)
			}
		})
	}
}

func TestParseSignature_Failures(t *testing.T) {
	r, s := testComponents()
	valid := encodeSig(r, s)

	wrongOuterTag := append([]byte{}, valid...)
	wrongOuterTag[0] = 0x31

	outerPastEnd := append([]byte{}, valid...)
	outerPastEnd[1] = 0x60

	truncatedS := append(append([]byte{}, encodeInt(r)...), 0x02, 0x21)
	truncatedS = append(truncatedS, s...) // declares 33 bytes, supplies 32
	truncatedS = append([]byte{0x30, byte(len(truncatedS))}, truncatedS...)

	zeroLenR := append([]byte{0x02, 0x00}, encodeInt(s)...)
	zeroLenR = append([]byte{0x30, byte(len(zeroLenR))}, zeroLenR...)

	oversizedR := encodeSig(append([]byte{0x01}, r...), s) // 33 significant bytes

	wrongRTag := append([]byte{}, valid...)
	wrongRTag[2] = 0x03

	lengthOverflow := append([]byte{0x30, 0x89}, bytes.Repeat([]byte{0xff}, 9)...)
	lengthOverflow = append(lengthOverflow, valid[2:]...)

	missingS := append([]byte{0x30, byte(len(encodeInt(r)))}, encodeInt(r)...)

	cases := []struct {
		name string
		raw  []byte
		want error
	}{
		{"empty_input", nil, ErrSigTooShort},
		{"outer_tag_only", []byte{0x30}, ErrSigTooShort},
		{"wrong_outer_tag", wrongOuterTag, ErrSigInvalidSeqID},
		{"outer_length_past_end", outerPastEnd, ErrSigInvalidDataLen},
		{"truncated_s", truncatedS, ErrSigInvalidDataLen},
		{"zero_length_r", zeroLenR, ErrSigZeroLen},
		{"oversized_r", oversizedR, ErrSigOverflow},
		{"wrong_r_tag", wrongRTag, ErrSigInvalidRIntID},
		{"length_overflow", lengthOverflow, ErrSigInvalidLength},
		{"missing_s", missingS, ErrSigTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSignature(tc.raw)
			if err == nil {
				t.Fatal("Expected parse failure, got success")
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Wrong failure reason. Got: %v, Expected: %v", err, tc.want)
			}
		})
	}
}

func TestParseSignature_ZeroValuedInteger(t *testing.T) {
	// A one-byte zero integer is an encoded value of zero, not a
	// zero-length field; it normalizes to 32 zero bytes.
	_, s := testComponents()

	sig, err := ParseSignature(encodeSig([]byte{0x00}, s))
	if err != nil {
		t.Fatalf("Failed to parse zero-valued r: %v", err)
	}
	if !bytes.Equal(sig[:32], make([]byte, 32)) {
		t.Errorf("Zero r not normalized to zero bytes: %x", sig[:32])
	}
}

func TestParseSignature_Fixtures(t *testing.T) {
	vectors, err := loadDERVectors()
	if err != nil {
		t.Fatalf("Failed to load fixture vectors: %v", err)
	}
	if len(vectors) == 0 {
		t.Fatal("Expected at least one fixture vector")
	}

	for _, vec := range vectors {
		t.Run(vec.Name, func(t *testing.T) {
			raw, err := hexDecode(vec.DER)
			if err != nil {
				t.Fatalf("Bad fixture hex: %v", err)
			}

			sig, err := ParseSignature(raw)
			if vec.Err {
				if err == nil {
					t.Fatalf("Expected failure, got %s", sig)
				}
				return
			}
			if err != nil {
				t.Fatalf("Failed to parse: %v", err)
			}
			if sig.String() != vec.Compact {
				t.Errorf("Output mismatch. Got: %s, Expected: %s", sig, vec.Compact)
			}
		})
	}

	t.Logf("Checked %d fixture vectors", len(vectors))
}
