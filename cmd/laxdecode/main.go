package main

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mahdiidarabi/lax-der/pkg/laxder"
)

func main() {
	var (
		derHex         = flag.String("der", "", "Single hex-encoded DER signature to decode")
		signaturesFile = flag.String("signatures", "", "Path to signature dump file (JSON or CSV)")
		format         = flag.String("format", "json", "Dump file format (json or csv)")
		field          = flag.String("field", "der", "Field or column holding the hex-encoded signature")
		numWorkers     = flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect based on CPU cores)")
		publicKey      = flag.String("public-key", "", "Public key in hex format (compressed, 66 chars) for verification")
		msgHash        = flag.String("hash", "", "32-byte message hash in hex for verification")
	)
	flag.Parse()

	if *derHex == "" && *signaturesFile == "" {
		fmt.Fprintf(os.Stderr, "Error: --der or --signatures is required\n")
		flag.Usage()
		os.Exit(1)
	}

	if *derHex != "" {
		decodeSingle(*derHex, *publicKey, *msgHash)
		return
	}

	// Set up loader based on format
	var loader laxder.SignatureLoader
	if *format == "json" {
		loader = &laxder.JSONLoader{DERField: *field}
	} else {
		loader = &laxder.CSVLoader{DERCol: *field}
	}

	raws, err := loader.LoadSignatures(*signaturesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d signatures from %s\n", len(raws), *signaturesFile)

	results := laxder.DecodeBatch(context.Background(), raws, *numWorkers)

	decoded := 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Printf("[%d] rejected: %v\n", res.Index, res.Err)
			continue
		}
		fmt.Printf("[%d] %s\n", res.Index, res.Sig)
		decoded++
	}
	fmt.Printf("\nDecoded %d/%d signatures\n", decoded, len(results))

	if decoded < len(results) {
		os.Exit(1)
	}
}

func decodeSingle(derHex, publicKey, msgHash string) {
	raw, err := decodeHex(derHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --der hex: %v\n", err)
		os.Exit(1)
	}

	sig, err := laxder.ParseSignature(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	r := sig.R()
	s := sig.S()
	fmt.Printf("r: %x\n", r)
	fmt.Printf("s: %x\n", s)
	fmt.Printf("compact: %s\n", sig)

	if publicKey == "" || msgHash == "" {
		return
	}

	pubKeyBytes, err := decodeHex(publicKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --public-key hex: %v\n", err)
		os.Exit(1)
	}
	hashBytes, err := decodeHex(msgHash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --hash hex: %v\n", err)
		os.Exit(1)
	}

	if laxder.StaticContext().VerifyCompact(sig, hashBytes, pubKeyBytes) {
		fmt.Println("✓ Signature verified against public key!")
	} else {
		fmt.Println("✗ Signature did NOT verify")
		os.Exit(1)
	}
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return hex.DecodeString(s)
}
