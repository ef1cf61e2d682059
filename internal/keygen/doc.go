// Package keygen defines the key generation boundary used by the search engine
// and provides the Solana implementation: ed25519 keypairs whose public key and
// keypair bytes are rendered as base58 strings.
//
// # Overview
//
// The search engine treats a Generator as an opaque capability. It never parses
// the encodings it receives; it only prefix-matches the public key string and
// prints both strings when a match is found.
//
// # Encoding
//
// Solana renders each keypair the way the Solana CLI prints it:
//   - PublicKey: base58 of the 32-byte ed25519 public key
//   - PrivateKey: base58 of the 64-byte keypair, the 32-byte seed followed by
//     the public key
//
// Every character of either string is drawn from Alphabet, so a target
// containing '0', 'O', 'I' or 'l' can never match exactly.
//
// # Failures
//
// A failed entropy read is returned wrapped in ErrGenerate. Generate is safe
// for concurrent use when the underlying reader is; crypto/rand always is.
package keygen
