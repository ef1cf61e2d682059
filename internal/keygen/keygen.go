package keygen

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/mr-tron/base58"
)

// Alphabet is the base58 alphabet every Solana public key encoding is drawn from.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ErrGenerate is returned when a fresh keypair cannot be produced,
// which in practice means the randomness source failed.
var ErrGenerate = errors.New("keypair generation failed")

// Keypair is a freshly generated keypair together with its canonical text forms.
type Keypair interface {
	// PublicKey returns the canonical encoding of the public key.
	// This is the string the search predicate is applied to.
	PublicKey() string

	// PrivateKey returns the canonical encoding of the private material.
	// It is only requested for matching keypairs.
	PrivateKey() string
}

// Generator produces fresh random keypairs.
// Implementations must be safe for concurrent use by multiple workers.
type Generator interface {
	// Generate returns a new random keypair.
	// An error is fatal for the whole search run.
	Generate() (Keypair, error)
}

// Solana generates ed25519 keypairs encoded the way the Solana CLI prints them.
type Solana struct {
	rand io.Reader // Entropy source, crypto/rand when nil
}

// NewSolana returns a Solana generator reading entropy from crypto/rand.
func NewSolana() *Solana {
	return &Solana{}
}

// NewSolanaFromReader returns a Solana generator reading entropy from r.
// A deterministic reader produces deterministic keypairs, which tests rely on.
func NewSolanaFromReader(r io.Reader) *Solana {
	return &Solana{rand: r}
}

// Generate creates a new ed25519 keypair.
func (s *Solana) Generate() (Keypair, error) {
	r := s.rand
	if r == nil {
		r = rand.Reader
	}
	pub, priv, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerate, err)
	}
	return &solanaKeypair{
		public:  base58.Encode(pub),
		private: priv,
	}, nil
}

// solanaKeypair holds the encoded public key and the raw 64-byte private key
// (seed followed by public key). The private encoding is computed on demand.
type solanaKeypair struct {
	public  string
	private ed25519.PrivateKey
}

func (k *solanaKeypair) PublicKey() string {
	return k.public
}

func (k *solanaKeypair) PrivateKey() string {
	return base58.Encode(k.private)
}
