// Package laxder decodes DER-encoded ECDSA signatures leniently and
// normalizes them into a fixed 64-byte compact form (r followed by s, each a
// 32-byte big-endian unsigned integer).
//
// Historical transaction data contains signatures that are BER-legal but not
// canonical DER: oversized length fields, redundant leading zero padding,
// declared lengths longer than the content they frame. Strict decoders such
// as encoding/asn1 or the decred ecdsa package reject these by design. This
// package accepts a bounded set of such deviations while still rejecting
// genuinely invalid encodings, so verification pipelines keep accepting
// exactly the signatures they historically accepted.
//
// # Quick Start
//
//	import "github.com/mahdiidarabi/lax-der/pkg/laxder"
//
//	// Normalize a raw DER signature obtained from an untrusted source
//	sig, err := laxder.ParseSignature(raw)
//	if err != nil {
//	    // malformed beyond the lenient boundary: treat as unusable
//	    return err
//	}
//
//	// Verify against a message hash and a serialized public key
//	if !laxder.StaticContext().VerifyCompact(sig, hash, pubKeyBytes) {
//	    return errors.New("bad signature")
//	}
//
// # Bulk Dumps
//
// Historical signatures usually arrive in bulk. The loaders read hex-encoded
// dumps and DecodeBatch normalizes them on parallel workers:
//
//	loader := &laxder.JSONLoader{DERField: "der"}
//	raws, err := loader.LoadSignatures("signatures.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results := laxder.DecodeBatch(ctx, raws, 0)
//	for _, res := range results {
//	    if res.Err != nil {
//	        fmt.Printf("signature %d rejected: %v\n", res.Index, res.Err)
//	        continue
//	    }
//	    fmt.Printf("signature %d: %s\n", res.Index, res.Sig)
//	}
//
// Parse failures are routine for adversarial input and are reported as
// sentinel errors, never as panics. The parser itself is stateless and safe
// for unlimited concurrent use.
package laxder
