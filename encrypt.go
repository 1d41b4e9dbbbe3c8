package brtypes

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// Encryption errors.
var (
	ErrInvalidKeySize   = errors.New("invalid key size")
	ErrCiphertextShort  = errors.New("ciphertext too short")
	ErrDecryptionFailed = errors.New("decryption failed")
	ErrUnknownKeyID     = errors.New("unknown key id")
)

// Encryptor handles encryption/decryption of field values at rest.
type Encryptor interface {
	// Encrypt encrypts plaintext and returns ciphertext.
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt decrypts ciphertext and returns plaintext.
	Decrypt(ciphertext []byte) ([]byte, error)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: must be 16, 24, or 32 bytes, got %d", ErrInvalidKeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// seal appends nonce||sealed(plaintext) to dst.
func seal(gcm cipher.AEAD, dst, plaintext, aad []byte) ([]byte, error) {
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	dst = append(dst, nonce...)
	return gcm.Seal(dst, nonce, plaintext, aad), nil
}

func open(gcm cipher.AEAD, data, aad []byte) ([]byte, error) {
	n := gcm.NonceSize()
	if len(data) < n+gcm.Overhead() {
		return nil, ErrCiphertextShort
	}
	plaintext, err := gcm.Open(nil, data[:n], data[n:], aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return plaintext, nil
}

// aesEncryptor implements AES-GCM with a single key.
type aesEncryptor struct {
	gcm cipher.AEAD
	aad []byte
}

// AES returns an AES-GCM encryptor.
// Key must be 16, 24, or 32 bytes for AES-128, AES-192, or AES-256.
func AES(key []byte) (Encryptor, error) {
	return AESWithAAD(key, nil)
}

// AESWithAAD returns an AES-GCM encryptor that authenticates aad with every
// value. Ciphertext produced for one table or tenant fails to decrypt under another.
func AESWithAAD(key, aad []byte) (Encryptor, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return &aesEncryptor{gcm: gcm, aad: append([]byte(nil), aad...)}, nil
}

func (e *aesEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	return seal(e.gcm, nil, plaintext, e.aad)
}

func (e *aesEncryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	return open(e.gcm, ciphertext, e.aad)
}

// keyRing holds several AES keys addressed by a one-byte id.
type keyRing struct {
	current byte
	keys    map[byte]cipher.AEAD
}

// AESKeyRing returns an AES-GCM encryptor for key rotation. Values are
// encrypted with keys[current] and prefixed with its id; any key in the ring
// can decrypt. Retire a key only after everything sealed with it was rewritten.
func AESKeyRing(keys map[byte][]byte, current byte) (Encryptor, error) {
	if _, ok := keys[current]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKeyID, current)
	}
	ring := &keyRing{current: current, keys: make(map[byte]cipher.AEAD, len(keys))}
	for id, key := range keys {
		gcm, err := newGCM(key)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", id, err)
		}
		ring.keys[id] = gcm
	}
	return ring, nil
}

func (r *keyRing) Encrypt(plaintext []byte) ([]byte, error) {
	return seal(r.keys[r.current], []byte{r.current}, plaintext, nil)
}

func (r *keyRing) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 {
		return nil, ErrCiphertextShort
	}
	gcm, ok := r.keys[ciphertext[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKeyID, ciphertext[0])
	}
	return open(gcm, ciphertext[1:], nil)
}
