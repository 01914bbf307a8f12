package repr

import "github.com/oisee/bignum/pkg/word"

// Repr is the packed big-integer storage shared by UBig and IBig. The
// sign of capacity encodes the value's sign; its magnitude discriminates
// storage form:
//
//	|capacity| == 1: single inline word, inline[1] always 0.
//	|capacity| == 2: double inline word, inline[1] != 0.
//	|capacity| >= 3: heap, len(heap) == |capacity| and heap's top word
//	                 is nonzero.
//
// Zero is always capacity=+1, inline=[0,0].
type Repr struct {
	capacity int64
	inline   [2]word.Word
	heap     []word.Word
}

// FromWord builds the single-inline-word form.
func FromWord(w word.Word) Repr {
	return Repr{capacity: 1, inline: [2]word.Word{w, 0}}
}

// FromDWord builds the inline form for a double word, downgrading to
// single-word if the high half is zero.
func FromDWord(dw word.DoubleWord) Repr {
	if dw.Hi == 0 {
		return FromWord(dw.Lo)
	}
	return Repr{capacity: 2, inline: [2]word.Word{dw.Lo, dw.Hi}}
}

// FromBuffer canonicalizes buf into a Repr: trailing zero words are
// popped, and the result is inlined if it now fits in two words, else
// the buffer is shrunk and reinterpreted as the heap form directly (no
// copy).
func FromBuffer(buf *Buffer) Repr {
	buf.PopZeros()
	switch buf.Len() {
	case 0:
		return FromWord(0)
	case 1:
		return FromWord(buf.Words()[0])
	case 2:
		w := buf.Words()
		return FromDWord(word.DoubleWord{Lo: w[0], Hi: w[1]})
	default:
		buf.Shrink()
		n := buf.Len()
		if int64(n) > MaxCapacity {
			panic("repr: capacity overflow")
		}
		return Repr{capacity: int64(n), heap: buf.Words()}
	}
}

// FromWords builds a Repr (with the given sign) directly from a
// magnitude slice, copying it through a Buffer so the source is never
// aliased.
func FromWords(negative bool, magnitude []word.Word) Repr {
	buf := NewBufferFromWords(magnitude)
	r := FromBuffer(buf)
	return r.WithSign(negative)
}

// IsZero reports whether the value is exactly zero. The Go zero value of
// Repr (capacity 0) is treated as zero too, so a bare `var r Repr` (as
// opposed to FromWord(0)) is already a valid zero without construction.
func (r Repr) IsZero() bool {
	return (r.capacity == 0 || r.capacity == 1) && r.inline[0] == 0
}

// Negative reports the sign bit; zero is always reported as positive.
func (r Repr) Negative() bool { return r.capacity < 0 }

// WithSign returns a copy of r with the given sign, preserving the
// zero-is-always-positive invariant.
func (r Repr) WithSign(negative bool) Repr {
	if r.IsZero() {
		return r
	}
	if negative {
		r.capacity = -absInt64(r.capacity)
	} else {
		r.capacity = absInt64(r.capacity)
	}
	return r
}

// SetSign mutates r's sign in place; same invariant as WithSign.
func (r *Repr) SetSign(negative bool) { *r = r.WithSign(negative) }

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func (r Repr) isHeap() bool { return absInt64(r.capacity) >= 3 }

// Len reports the number of magnitude words (1 or 2 inline, or the heap
// length), i.e. |capacity|.
func (r Repr) Len() int {
	n := absInt64(r.capacity)
	return int(n)
}

// Typed is the tagged view produced by AsTyped/IntoTyped: exactly one of
// Small (for inline values) or Large (for heap values) is meaningful,
// selected by IsLarge.
type Typed struct {
	IsLarge bool
	Small   word.DoubleWord
	Large   []word.Word
}

// AsTyped projects r to its tagged view for algorithmic dispatch.
func (r Repr) AsTyped() Typed {
	if r.isHeap() {
		return Typed{IsLarge: true, Large: r.heap}
	}
	return Typed{Small: word.DoubleWord{Lo: r.inline[0], Hi: r.inline[1]}}
}

// IntoTyped is AsTyped's owned-consuming counterpart in the source
// this was distilled from; under Go's GC there is no distinct "consume"
// operation, so it is AsTyped by another name, kept for parity with the
// construction/projection operation list.
func (r Repr) IntoTyped() Typed { return r.AsTyped() }

// Words returns the magnitude as a little-endian slice. For the heap
// case it aliases r's buffer and is valid only until the next mutation
// of r; for the inline case it is a freshly built copy of the inline
// words, so writes through it do not reach r.
func (r Repr) Words() []word.Word {
	t := r.AsTyped()
	if t.IsLarge {
		return t.Large
	}
	if t.Small.Hi == 0 {
		return []word.Word{t.Small.Lo}
	}
	return []word.Word{t.Small.Lo, t.Small.Hi}
}

// Clone duplicates r; the heap form allocates a fresh DefaultCapacity
// buffer rather than aliasing the source.
func (r Repr) Clone() Repr {
	if !r.isHeap() {
		return r
	}
	heap := make([]word.Word, len(r.heap), DefaultCapacity(len(r.heap)))
	copy(heap, r.heap)
	return Repr{capacity: r.capacity, heap: heap}
}

// CloneInto duplicates r into dst, reusing dst's existing heap
// allocation when its capacity falls within [len, MaxCompactCapacity(len)]
// rather than always reallocating (mirrors the source's clone_from).
func (r Repr) CloneInto(dst *Repr) {
	if !r.isHeap() {
		*dst = r
		return
	}
	n := len(r.heap)
	if cap(dst.heap) >= n && cap(dst.heap) <= MaxCompactCapacity(n) {
		dst.heap = dst.heap[:n]
		copy(dst.heap, r.heap)
	} else {
		dst.heap = make([]word.Word, n, DefaultCapacity(n))
		copy(dst.heap, r.heap)
	}
	dst.capacity = r.capacity
}
