package laxder

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// derVector describes one encoded-signature vector from the fixtures
// directory: the hex-encoded input, and either the expected 64-byte compact
// output or the expectation that parsing fails.
type derVector struct {
	Name    string `json:"name"`
	DER     string `json:"der"`
	Compact string `json:"compact"`
	Err     bool   `json:"err"`
}

// fixturesDir returns the path of the fixtures directory relative to this
// package.
func fixturesDir() string {
	return filepath.Join("..", "..", "fixtures")
}

// loadDERVectors reads the encoded-signature vectors from
// fixtures/test_signatures_der.json.
func loadDERVectors() ([]derVector, error) {
	file, err := os.Open(filepath.Join(fixturesDir(), "test_signatures_der.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer file.Close()

	var vectors []derVector
	if err := json.NewDecoder(file).Decode(&vectors); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return vectors, nil
}

// hexDecode decodes a hex string, handling a 0x prefix.
func hexDecode(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return hex.DecodeString(s)
}
