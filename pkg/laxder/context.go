package laxder

import (
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Context is the process-wide handle to the secp256k1 verification
// machinery. It is immutable after construction and shared by every caller
// for the lifetime of the process; callers never own or tear it down.
type Context struct {
	curve *secp256k1.KoblitzCurve
	order *big.Int
}

var (
	staticCtx     *Context
	staticCtxOnce sync.Once
)

// StaticContext returns the shared verification context, constructing it on
// first use. Concurrent first callers block until construction completes and
// then observe the same fully-constructed handle; later reads take no lock.
// Construction failure is fatal: a process that cannot set up its curve
// cannot verify anything, so there is no error return and no fallback.
func StaticContext() *Context {
	staticCtxOnce.Do(func() {
		staticCtx = newContext()
	})
	return staticCtx
}

func newContext() *Context {
	curve := secp256k1.S256()
	if curve == nil || curve.N == nil || curve.N.Sign() <= 0 {
		panic("laxder: failed to initialize secp256k1 context")
	}
	return &Context{
		curve: curve,
		order: curve.N,
	}
}

// CurveOrder returns a copy of the secp256k1 group order.
func (c *Context) CurveOrder() *big.Int {
	return new(big.Int).Set(c.order)
}

// VerifyCompact reports whether sig is a valid signature of hash under the
// serialized public key (compressed, uncompressed, or hybrid form). A key
// that fails to parse or a signature component outside the curve order
// reports false.
func (c *Context) VerifyCompact(sig CompactSignature, hash, pubKey []byte) bool {
	pk, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false
	}
	ecdsaSig, err := sig.Signature()
	if err != nil {
		return false
	}
	return ecdsaSig.Verify(hash, pk)
}
