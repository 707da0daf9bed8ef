package laxder

import (
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// SignatureLoader defines the interface for loading raw DER signatures from
// historical dump files.
type SignatureLoader interface {
	// LoadSignatures reads a dump and returns the raw signature bytes in
	// file order. Entries are not parsed or validated here; feed them to
	// ParseSignature or DecodeBatch.
	LoadSignatures(source string) ([][]byte, error)
}

// JSONLoader loads signatures from JSON dump files.
type JSONLoader struct {
	DERField string // Field name for the hex-encoded signature (default: "der")
}

// LoadSignatures reads signatures from a JSON file.
//
// Expected format:
// [
//
//	{"txid": "...", "der": "3044..."},
//	{"txid": "...", "der": "0x3045..."}
//
// ]
func (l *JSONLoader) LoadSignatures(jsonFile string) ([][]byte, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	var items []map[string]interface{}
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	derField := l.DERField
	if derField == "" {
		derField = "der"
	}

	raws := make([][]byte, 0, len(items))
	for i, item := range items {
		val, ok := item[derField]
		if !ok {
			return nil, fmt.Errorf("entry %d: missing %s field", i, derField)
		}
		str, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("entry %d: %s field must be a hex string", i, derField)
		}
		raw, err := decodeHexField(str)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		raws = append(raws, raw)
	}

	return raws, nil
}

// CSVLoader loads signatures from CSV dump files.
type CSVLoader struct {
	DERCol string // Column name for the hex-encoded signature (default: "der")
}

// LoadSignatures reads signatures from a CSV file with a header row.
func (l *CSVLoader) LoadSignatures(csvFile string) ([][]byte, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	derCol := l.DERCol
	if derCol == "" {
		derCol = "der"
	}

	derIdx := -1
	for i, col := range header {
		if col == derCol {
			derIdx = i
		}
	}
	if derIdx == -1 {
		return nil, fmt.Errorf("missing required column: %s", derCol)
	}

	raws := make([][]byte, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if derIdx >= len(record) {
			return nil, fmt.Errorf("line %d: %s column index out of range", line, derCol)
		}
		raw, err := decodeHexField(record[derIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		raws = append(raws, raw)
	}

	return raws, nil
}

// decodeHexField decodes a hex string, handling an optional 0x prefix.
func decodeHexField(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return raw, nil
}
