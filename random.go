package brtypes

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// newRand returns a generator private to the caller, seeded from the OS.
func newRand() *rand.Rand {
	var seed [32]byte
	crand.Read(seed[:]) // crashes rather than returning an error since Go 1.24
	return rand.New(rand.NewChaCha8(seed))
}

func randomDigits(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + r.IntN(10))
	}
	return string(b)
}

// randomBody draws n digits, redrawing while every digit is the same.
func randomBody(r *rand.Rand, n int) string {
	for {
		body := randomDigits(r, n)
		if !allSame(body) {
			return body
		}
	}
}
