// Package arith implements the word-slice kernels every big-integer
// operation ultimately bottoms out on: add/sub, shift, compare,
// multiply/square, division, GCD, square/cube root and log, all operating
// in place on little-endian []word.Word with the least significant word
// first. Kernels take a caller-provided Memory arena for their main
// scratch buffers — the same discipline pkg/search uses in the teacher
// repo for its fingerprint/pruner scratch buffers — though several (the
// root, log and GCD helpers among them) also allocate temporaries with
// make.
package arith

import "github.com/oisee/bignum/pkg/word"

// Memory is a caller-owned scratch arena. Kernels that need working
// storage beyond dst/src (multiply, division, GCD, square root) take a
// *Memory and carve words out of it with Allocate; the arena is freed
// like any other slice when the caller drops it.
type Memory struct {
	words []word.Word
	used  int
}

// NewMemory allocates an arena of the given word capacity.
func NewMemory(words int) *Memory {
	return &Memory{words: make([]word.Word, words)}
}

// Allocate returns a zeroed slice of n words carved from the arena and
// advances the cursor. Panics if the arena is exhausted — callers must
// size the arena with the MemoryRequirement* helper next to the kernel
// they intend to call.
func (m *Memory) Allocate(n int) []word.Word {
	if m.used+n > len(m.words) {
		panic("arith: scratch memory arena exhausted")
	}
	s := m.words[m.used : m.used+n : m.used+n]
	for i := range s {
		s[i] = 0
	}
	m.used += n
	return s
}

// Mark returns the current cursor position, to be passed to Reset to
// release everything allocated since.
func (m *Memory) Mark() int { return m.used }

// Reset rewinds the cursor to a previously captured Mark, making that
// space available for reuse without a new allocation.
func (m *Memory) Reset(mark int) { m.used = mark }

// Remaining reports how many words are still available in the arena.
func (m *Memory) Remaining() int { return len(m.words) - m.used }
