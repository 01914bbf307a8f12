// Package repr implements the compact two-machine-word big-integer
// storage: small values live inline, larger ones spill to a heap-backed
// Buffer, with the capacity field alone discriminating the two (sign
// folded into its sign bit). UBig and IBig are thin wrappers over Repr.
package repr

import "github.com/oisee/bignum/pkg/word"

// MaxCapacity bounds the word count any Repr/Buffer may hold, so that
// bit-length arithmetic (len*word.Bits) cannot overflow an int.
const MaxCapacity = int64(^uint(0)>>1) / word.Bits

// DefaultCapacity is the capacity a fresh heap allocation for n words
// gets: enough headroom that a handful of subsequent pushes don't force
// an immediate reallocation.
func DefaultCapacity(n int) int {
	return clampCapacity(n + n/8 + 2)
}

// MaxCompactCapacity is the largest capacity Shrink will leave a Buffer
// of length n at; above this, Shrink reallocates down to DefaultCapacity.
func MaxCompactCapacity(n int) int {
	return clampCapacity(n + n/4 + 4)
}

func clampCapacity(n int) int {
	if int64(n) > MaxCapacity {
		return int(MaxCapacity)
	}
	return n
}

// Buffer is a heap-only, little-endian growable word vector. Its backing
// array is layout-compatible with a heap Repr's magnitude, so handing a
// trimmed Buffer's words to FromBuffer is a zero-copy reinterpretation.
type Buffer struct {
	words []word.Word
}

// NewBuffer allocates a Buffer with at least the given word capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{words: make([]word.Word, 0, capacity)}
}

// NewBufferFromWords builds a Buffer that owns a copy of src.
func NewBufferFromWords(src []word.Word) *Buffer {
	b := NewBuffer(DefaultCapacity(len(src)))
	b.PushSlice(src)
	return b
}

// Len reports the current word count.
func (b *Buffer) Len() int { return len(b.words) }

// Words returns the live word slice (most-significant word last).
func (b *Buffer) Words() []word.Word { return b.words }

// Allocate grows the buffer by n zero words and returns the newly
// appended slice for the caller to fill in.
func (b *Buffer) Allocate(n int) []word.Word {
	b.EnsureCapacity(len(b.words) + n)
	start := len(b.words)
	b.words = b.words[:start+n]
	for i := start; i < len(b.words); i++ {
		b.words[i] = 0
	}
	return b.words[start:]
}

// Push appends a single word.
func (b *Buffer) Push(w word.Word) {
	b.EnsureCapacity(len(b.words) + 1)
	b.words = append(b.words, w)
}

// PushSlice appends a whole slice.
func (b *Buffer) PushSlice(s []word.Word) {
	b.EnsureCapacity(len(b.words) + len(s))
	b.words = append(b.words, s...)
}

// PopZeros trims trailing (most-significant) zero words, the
// canonicalization step every kernel result needs before it can be
// reinterpreted as a Repr magnitude.
func (b *Buffer) PopZeros() {
	n := len(b.words)
	for n > 0 && b.words[n-1] == 0 {
		n--
	}
	b.words = b.words[:n]
}

// Truncate shrinks the buffer to exactly n words, discarding the rest.
func (b *Buffer) Truncate(n int) {
	if n < len(b.words) {
		b.words = b.words[:n]
	}
}

// EraseFront removes the n least-significant words, shifting everything
// else down (equivalent to an exact division by B^n for a value known to
// be a multiple of it).
func (b *Buffer) EraseFront(n int) {
	if n <= 0 {
		return
	}
	if n >= len(b.words) {
		b.words = b.words[:0]
		return
	}
	copy(b.words, b.words[n:])
	b.words = b.words[:len(b.words)-n]
}

// EnsureCapacity grows the backing array so at least n words fit without
// another reallocation.
func (b *Buffer) EnsureCapacity(n int) {
	if cap(b.words) >= n {
		return
	}
	grown := make([]word.Word, len(b.words), DefaultCapacity(n))
	copy(grown, b.words)
	b.words = grown
}

// Shrink reallocates down to DefaultCapacity(len) only if the current
// capacity exceeds MaxCompactCapacity(len); otherwise it is a no-op, so
// repeated Shrink calls on an already-compact Buffer never reallocate.
func (b *Buffer) Shrink() {
	n := len(b.words)
	if cap(b.words) <= MaxCompactCapacity(n) {
		return
	}
	fresh := make([]word.Word, n, DefaultCapacity(n))
	copy(fresh, b.words)
	b.words = fresh
}
