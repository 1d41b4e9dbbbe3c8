package brtypes

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Hasher performs deterministic one-way hashing.
type Hasher interface {
	// Hash returns the hex-encoded digest of plaintext.
	Hash(plaintext []byte) (string, error)
}

// sha256Hasher implements SHA-256 hashing.
type sha256Hasher struct{}

// SHA256Hasher returns a SHA-256 hasher.
// The result is a hex-encoded 64-character string.
func SHA256Hasher() Hasher {
	return &sha256Hasher{}
}

func (h *sha256Hasher) Hash(plaintext []byte) (string, error) {
	sum := sha256.Sum256(plaintext)
	return hex.EncodeToString(sum[:]), nil
}

// sha512Hasher implements SHA-512 hashing.
type sha512Hasher struct{}

// SHA512Hasher returns a SHA-512 hasher.
// The result is a hex-encoded 128-character string.
func SHA512Hasher() Hasher {
	return &sha512Hasher{}
}

func (h *sha512Hasher) Hash(plaintext []byte) (string, error) {
	sum := sha512.Sum512(plaintext)
	return hex.EncodeToString(sum[:]), nil
}

// blake2bHasher implements keyed BLAKE2b-256.
type blake2bHasher struct {
	key []byte
}

// Blake2b returns a BLAKE2b-256 hasher keyed with key.
// Taxpayer numbers have a small search space, so fingerprints that may leak
// should be keyed. key may be nil for an unkeyed hash and must not exceed 64 bytes.
func Blake2b(key []byte) (Hasher, error) {
	if len(key) > blake2b.Size {
		return nil, fmt.Errorf("%w: blake2b key must be at most %d bytes, got %d", ErrInvalidKeySize, blake2b.Size, len(key))
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &blake2bHasher{key: k}, nil
}

func (h *blake2bHasher) Hash(plaintext []byte) (string, error) {
	d, err := blake2b.New256(h.key)
	if err != nil {
		return "", fmt.Errorf("blake2b: %w", err)
	}
	d.Write(plaintext)
	return hex.EncodeToString(d.Sum(nil)), nil
}

// NewHasher returns the hasher for algo. key is only used by HashBlake2b.
func NewHasher(algo HashAlgo, key []byte) (Hasher, error) {
	switch algo {
	case HashSHA256:
		return SHA256Hasher(), nil
	case HashSHA512:
		return SHA512Hasher(), nil
	case HashBlake2b:
		return Blake2b(key)
	}
	return nil, fmt.Errorf("%w: unsupported hash algorithm %q", ErrInvalidTag, algo)
}

// Fingerprint hashes the canonical form of v, so every accepted spelling of
// the same value yields the same digest. nil, nil pointers and zero values
// fail with ErrEmptyValue.
func Fingerprint(v Value, h Hasher) (string, error) {
	if isNil(v) || v.IsZero() {
		return "", ErrEmptyValue
	}
	return h.Hash([]byte(string(v.Kind()) + ":" + v.String()))
}
