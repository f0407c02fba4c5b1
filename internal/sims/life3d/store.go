package life3d

import "github.com/pkg/errors"

const (
	blockEdge  = 4
	blockShift = 2
	blockMask  = blockEdge - 1
	blockCells = blockEdge * blockEdge * blockEdge

	aliveBit  uint8 = 0x80
	countMask uint8 = 0x1f
)

// ErrStoreFull is returned when a write needs a new block but the store has
// reached its block budget.
var ErrStoreFull = errors.New("cell store block budget exhausted")

type block [blockCells]uint8

// Store keeps one packed byte per cell (alive flag plus neighbor count) in
// lazily allocated 4x4x4 blocks. Coordinates wrap toroidally.
type Store struct {
	columns, rows, stacks int
	bx, by, bz            int

	blocks    []*block
	allocated int
	maxBlocks int
}

// NewStore creates a store for the given extents. Each extent is rounded up to
// a multiple of 4. A maxBlocks of zero disables the block budget.
func NewStore(columns, rows, stacks, maxBlocks int) *Store {
	columns = roundExtent(columns)
	rows = roundExtent(rows)
	stacks = roundExtent(stacks)
	s := &Store{
		columns:   columns,
		rows:      rows,
		stacks:    stacks,
		bx:        columns >> blockShift,
		by:        rows >> blockShift,
		bz:        stacks >> blockShift,
		maxBlocks: maxBlocks,
	}
	s.blocks = make([]*block, s.bx*s.by*s.bz)
	return s
}

func roundExtent(n int) int {
	if n < blockEdge {
		return blockEdge
	}
	return (n + blockMask) &^ blockMask
}

// Extents returns the wrapped world dimensions.
func (s *Store) Extents() (columns, rows, stacks int) {
	return s.columns, s.rows, s.stacks
}

// Blocks reports how many blocks are currently allocated.
func (s *Store) Blocks() int { return s.allocated }

func wrap(v, n int) int {
	if v >= 0 && v < n {
		return v
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// locate wraps the coordinate and returns the block index and the offset of
// the cell inside that block.
func (s *Store) locate(x, y, z int) (int, int) {
	x = wrap(x, s.columns)
	y = wrap(y, s.rows)
	z = wrap(z, s.stacks)
	bx, by, bz := x>>blockShift, y>>blockShift, z>>blockShift
	bi := (bz*s.by+by)*s.bx + bx
	off := (z&blockMask)<<4 | (y&blockMask)<<2 | x&blockMask
	return bi, off
}

func (s *Store) ensure(bi int) (*block, error) {
	if b := s.blocks[bi]; b != nil {
		return b, nil
	}
	if s.maxBlocks > 0 && s.allocated >= s.maxBlocks {
		return nil, errors.Wrapf(ErrStoreFull, "allocating block %d of %d", s.allocated+1, s.maxBlocks)
	}
	b := new(block)
	s.blocks[bi] = b
	s.allocated++
	return b, nil
}

// Read returns the packed byte at the coordinate, or 0 when its block is not
// allocated.
func (s *Store) Read(x, y, z int) uint8 {
	bi, off := s.locate(x, y, z)
	b := s.blocks[bi]
	if b == nil {
		return 0
	}
	return b[off]
}

// Write stores a packed byte, allocating the block when needed.
func (s *Store) Write(x, y, z int, v uint8) error {
	bi, off := s.locate(x, y, z)
	b := s.blocks[bi]
	if b == nil {
		if v == 0 {
			return nil
		}
		var err error
		if b, err = s.ensure(bi); err != nil {
			return err
		}
	}
	b[off] = v
	return nil
}

// Increment adds delta to the neighbor count of a cell, leaving the alive flag
// untouched.
func (s *Store) Increment(x, y, z int, delta uint8) error {
	bi, off := s.locate(x, y, z)
	b, err := s.ensure(bi)
	if err != nil {
		return err
	}
	v := b[off]
	b[off] = v&aliveBit | (v&countMask+delta)&countMask
	return nil
}

// Reclaim frees every block whose bytes are all zero and returns how many
// were released.
func (s *Store) Reclaim() int {
	freed := 0
	for i, b := range s.blocks {
		if b == nil || !b.empty() {
			continue
		}
		s.blocks[i] = nil
		s.allocated--
		freed++
	}
	return freed
}

// Clear drops every block.
func (s *Store) Clear() {
	clear(s.blocks)
	s.allocated = 0
}

// forEachBlock visits each allocated block with the coordinate of its lowest
// corner.
func (s *Store) forEachBlock(fn func(x, y, z int, b *block)) {
	for i, b := range s.blocks {
		if b == nil {
			continue
		}
		x := i % s.bx
		y := (i / s.bx) % s.by
		z := i / (s.bx * s.by)
		fn(x<<blockShift, y<<blockShift, z<<blockShift, b)
	}
}

func (b *block) empty() bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

func isAlive(v uint8) bool { return v&aliveBit != 0 }

func neighborCount(v uint8) int { return int(v & countMask) }
