// Package checkphrase derives short human-pronounceable word sequences from
// address-like strings.
//
// Two parties who each derive the phrase for "the same" address can compare
// a handful of words instead of a long base58/hex string, which makes an
// address-poisoning swap visible at a glance. Derivation is a pure function
// of the address bytes, the wordlist, and fixed constants; the same inputs
// produce the same phrase in every conforming implementation.
package checkphrase

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/quantus-network/go-checkphrase/pkg/wordlist"
)

// Derivation constants. These are part of the cross-implementation wire
// contract: changing any of them changes every derived phrase.
const (
	// Salt is the fixed PBKDF2 salt.
	Salt = "human-readable-checksum"

	// Iterations is the PBKDF2 iteration count.
	Iterations = 40000

	// DefaultLength is the canonical number of words in a checkphrase.
	DefaultLength = 5

	// bitsPerWord indexes a 2048-word list (2^11).
	bitsPerWord = 11
)

var (
	// ErrEmptyAddress is returned when the input address is empty.
	// Deriving a phrase for nothing is undefined, not a hash of "".
	ErrEmptyAddress = errors.New("empty address")

	// ErrBadLength is returned for a non-positive word count.
	ErrBadLength = errors.New("checksum length must be positive")
)

// KeyByteCount returns the PBKDF2 output length for n words:
// n*11 bits rounded up to whole bytes.
func KeyByteCount(n int) int {
	return (n*bitsPerWord + 7) / 8
}

// Derive maps an address to an ordered sequence of n words from wl.
// The address is treated as opaque bytes (callers pass UTF-8 text as-is,
// no normalization). The wordlist must have exactly 2048 entries; anything
// else fails before any key derivation runs.
func Derive(address []byte, wl *wordlist.Wordlist, n int) ([]string, error) {
	if wl.Len() != wordlist.Size {
		return nil, fmt.Errorf("%w: got %d", wordlist.ErrWrongSize, wl.Len())
	}
	indices, err := DeriveIndices(address, n)
	if err != nil {
		return nil, err
	}
	words := make([]string, n)
	for i, idx := range indices {
		words[i] = wl.Word(idx)
	}
	return words, nil
}

// DeriveIndices computes the n wordlist indices for an address without
// resolving them to words. Each index is in [0, 2047].
//
// The PBKDF2-HMAC-SHA256 output (KeyByteCount(n) bytes) is read as a
// big-endian bit string; the low (8*K) mod 11 bits are discarded and the
// remaining bits split into n 11-bit groups from the most-significant end.
// Index extraction walks the byte buffer directly rather than going through
// a big integer, so the packing is identical on every platform.
func DeriveIndices(address []byte, n int) ([]int, error) {
	if len(address) == 0 {
		return nil, ErrEmptyAddress
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadLength, n)
	}

	key := pbkdf2.Key(address, []byte(Salt), Iterations, KeyByteCount(n), sha256.New)

	indices := make([]int, n)
	for i := range indices {
		indices[i] = window11(key, i*bitsPerWord)
	}
	return indices, nil
}

// window11 extracts the 11-bit big-endian value starting at bit offset off
// (counted from the most-significant bit of key[0]).
func window11(key []byte, off int) int {
	b := off / 8
	r := off % 8

	// Pull up to three bytes covering the window into the top of a 24-bit
	// accumulator, then shift the window down and mask.
	v := uint32(key[b]) << 16
	if b+1 < len(key) {
		v |= uint32(key[b+1]) << 8
	}
	if b+2 < len(key) {
		v |= uint32(key[b+2])
	}
	return int((v >> (13 - r)) & 0x7FF)
}
