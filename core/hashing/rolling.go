// Package hashing implements the fixed-window rolling hash used for
// MapFrame ids: a polynomial hash whose digits are the FNV-1a digests of a
// window's mask keys, one digit per key, computed incrementally so each
// slide costs O(|k|) for the mask key entering the window, never
// O(minTokens). The digits are per-key digests, not the key bytes, so the
// value is not a byte-level polynomial over the concatenated keys.
//
// Base and modulus (documented here per spec.md §9 "Rolling hash";
// implementer's choice, stated for reproducibility):
//
//	base    = 131            (a small odd prime; keeps per-key updates cheap)
//	modulus = 1<<61 - 1       (a Mersenne prime; arithmetic fits in a uint64
//	                           without overflow during multiply-add, and the
//	                           hash space is large enough that accidental
//	                           collisions are rare — though never assumed
//	                           sufficient: every candidate equal-id match is
//	                           still verified token-by-token, per spec.md
//	                           §4.2's mandatory collision policy.)
package hashing

import "math/bits"

const (
	base    uint64 = 131
	modulus uint64 = (1 << 61) - 1
)

// mulmod multiplies a and b modulo the package modulus without overflowing
// uint64. It computes the full 128-bit product with bits.Mul64 and reduces
// it using the Mersenne-prime identity 2^64 ≡ 8 (mod 2^61-1): x = hi*2^64 +
// lo ≡ hi*8 + lo (mod modulus). Since a,b < modulus < 2^61, hi < 2^58, so
// hi*8 < 2^61 never overflows uint64 on its own; only the final add against
// lo can carry, which bits.Add64 reports explicitly.
func mulmod(a, b uint64) uint64 {
	a %= modulus
	b %= modulus
	hi, lo := bits.Mul64(a, b)

	t := hi * 8
	sum, carry := bits.Add64(t, lo, 0)
	// 2^64 ≡ 8 (mod modulus) again accounts for the carry bit.
	sum += carry * 8

	for sum >= modulus {
		sum -= modulus
	}
	return sum
}

// powmod returns base^exp mod modulus.
func powmod(exp int) uint64 {
	result := uint64(1)
	b := base % modulus
	for exp > 0 {
		if exp&1 == 1 {
			result = mulmod(result, b)
		}
		b = mulmod(b, b)
		exp >>= 1
	}
	return result
}

// Window is an incremental rolling hash over a fixed-width sequence of
// byte-string keys (mask keys). Keys are hashed internally with FNV-1a to a
// fixed-width uint64 "digit" before being folded into the polynomial, so the
// O(|k|) cost of Push/Pop is the cost of hashing one key, not of redoing the
// whole window's polynomial arithmetic.
type Window struct {
	width   int
	keys    []uint64 // digest-per-key ring buffer, size == width once full
	head    int      // index of the oldest key once full
	filled  int
	value   uint64
	highPow uint64 // base^(width-1) mod modulus, the factor the outgoing digit carries
}

// NewWindow returns a rolling hash for windows of exactly width keys.
func NewWindow(width int) *Window {
	if width < 1 {
		width = 1
	}
	return &Window{
		width:   width,
		keys:    make([]uint64, width),
		highPow: powmod(width - 1),
	}
}

// digest folds a mask key string down to a fixed-width polynomial digit
// using FNV-1a, so the rolling arithmetic operates on fixed-size values
// regardless of key length.
func digest(key string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= prime64
	}
	return h % modulus
}

// Push slides the window forward by one key: the oldest key (if the window
// is already full) is subtracted and the new key is added, both in O(|key|)
// time (the cost of computing its digest).
func (w *Window) Push(key string) {
	d := digest(key)
	if w.filled < w.width {
		w.value = (mulmod(w.value, base) + d) % modulus
		w.keys[w.filled] = d
		w.filled++
		return
	}

	outgoing := w.keys[w.head]
	// value = (value - outgoing*base^(width-1)) * base + incoming, mod p
	sub := mulmod(outgoing, w.highPow)
	v := w.value + modulus - sub%modulus
	v %= modulus
	w.value = (mulmod(v, base) + d) % modulus

	w.keys[w.head] = d
	w.head = (w.head + 1) % w.width
}

// Full reports whether the window has accumulated `width` keys.
func (w *Window) Full() bool { return w.filled == w.width }

// Value returns the current rolling hash value.
func (w *Window) Value() uint64 { return w.value }

// Hash computes the rolling hash of a full, already-known sequence of mask
// keys in one pass — used by callers (e.g. frame builders, tests) that have
// the whole window in hand rather than sliding into it incrementally.
func Hash(keys []string) uint64 {
	w := NewWindow(len(keys))
	for _, k := range keys {
		w.Push(k)
	}
	return w.Value()
}
