package search

import (
	"bytes"
	"errors"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/dreamware/vanity/internal/keygen"
)

// stubKeypair is a keypair with fixed encodings.
type stubKeypair struct {
	pub  string
	priv string
}

func (k stubKeypair) PublicKey() string  { return k.pub }
func (k stubKeypair) PrivateKey() string { return k.priv }

// sequenceGen returns the given public keys in order, then repeats filler
// forever. When cycle is set it loops over keys instead of falling back to
// filler. Every call is counted.
type sequenceGen struct {
	keys   []string
	filler string
	cycle  bool
	calls  atomic.Uint64
}

func (g *sequenceGen) Generate() (keygen.Keypair, error) {
	n := g.calls.Add(1) - 1
	var pub string
	switch {
	case g.cycle:
		pub = g.keys[n%uint64(len(g.keys))]
	case n < uint64(len(g.keys)):
		pub = g.keys[n]
	default:
		pub = g.filler
	}
	return stubKeypair{pub: pub, priv: "priv-" + pub}, nil
}

// failingGen succeeds for the first ok calls and fails on every call after.
type failingGen struct {
	ok    uint64
	calls atomic.Uint64
}

var errEntropy = errors.New("entropy exhausted")

func (g *failingGen) Generate() (keygen.Keypair, error) {
	if g.calls.Add(1) > g.ok {
		return nil, errEntropy
	}
	return stubKeypair{pub: "zzz", priv: "zzz"}, nil
}

// failingSink rejects every match.
type failingSink struct{}

func (failingSink) Emit(Match) error { return io.ErrClosedPipe }

// syncBuffer is a bytes.Buffer safe for concurrent writers and readers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
