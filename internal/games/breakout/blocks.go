package breakout

import "iter"

// blockSlot is one entry of the arena. A slot never goes back to present once cleared.
type blockSlot struct {
	block   Block
	present bool
}

// Blocks is an insertion-ordered arena of block slots. Destroying a block
// clears its slot in place, so indices stay valid for the whole session and a
// renderer can keep per-index resources without remapping.
type Blocks struct {
	slots   []blockSlot
	present int
}

func newBlocks(blocks []Block) Blocks {
	slots := make([]blockSlot, len(blocks))
	for i, b := range blocks {
		slots[i] = blockSlot{block: b, present: true}
	}
	return Blocks{slots: slots, present: len(blocks)}
}

// Len returns the number of slots, destroyed ones included.
func (bs *Blocks) Len() int {
	return len(bs.slots)
}

// Present returns the number of blocks not yet destroyed.
func (bs *Blocks) Present() int {
	return bs.present
}

// At returns the block in slot i and whether it is still present.
// Out-of-range indices report absent.
func (bs *Blocks) At(i int) (Block, bool) {
	if i < 0 || i >= len(bs.slots) {
		return Block{}, false
	}
	s := bs.slots[i]
	if !s.present {
		return Block{}, false
	}
	return s.block, true
}

// All iterates present blocks in insertion order, yielding their slot index.
func (bs *Blocks) All() iter.Seq2[int, Block] {
	return func(yield func(int, Block) bool) {
		for i, s := range bs.slots {
			if !s.present {
				continue
			}
			if !yield(i, s.block) {
				return
			}
		}
	}
}

// destroy clears slot i. It reports whether a block was actually removed;
// destroying an empty slot is a no-op.
func (bs *Blocks) destroy(i int) bool {
	if i < 0 || i >= len(bs.slots) || !bs.slots[i].present {
		return false
	}
	bs.slots[i].present = false
	bs.present--
	return true
}

// restore sets slot presence from a snapshot.
func (bs *Blocks) restore(present []bool) {
	bs.present = 0
	for i := range bs.slots {
		bs.slots[i].present = present[i]
		if present[i] {
			bs.present++
		}
	}
}
