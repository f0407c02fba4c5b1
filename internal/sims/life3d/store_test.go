package life3d

import (
	"testing"

	"github.com/pkg/errors"
)

func TestStoreReadWrite(t *testing.T) {
	s := NewStore(16, 16, 8, 0)
	if got := s.Read(3, 4, 5); got != 0 {
		t.Fatalf("unallocated read = %d, want 0", got)
	}
	if err := s.Write(3, 4, 5, 0); err != nil || s.Blocks() != 0 {
		t.Fatalf("zero write allocated a block: blocks=%d err=%v", s.Blocks(), err)
	}
	if err := s.Write(3, 4, 5, aliveBit); err != nil {
		t.Fatalf("write: %v", err)
	}
	if s.Blocks() != 1 {
		t.Fatalf("blocks = %d, want 1", s.Blocks())
	}
	if got := s.Read(3, 4, 5); got != aliveBit {
		t.Fatalf("read = %#x, want %#x", got, aliveBit)
	}
	if got := s.Read(2, 4, 5); got != 0 {
		t.Fatalf("neighbor in same block = %#x, want 0", got)
	}
}

func TestStoreWraps(t *testing.T) {
	s := NewStore(8, 12, 4, 0)
	if err := s.Write(-1, -1, -1, 7); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := s.Read(7, 11, 3); got != 7 {
		t.Fatalf("wrapped read = %d, want 7", got)
	}
	if got := s.Read(15, 23, 7); got != 7 {
		t.Fatalf("read past the far edge = %d, want 7", got)
	}
	if got := s.Read(-9, -13, -5); got != 7 {
		t.Fatalf("read one full wrap below = %d, want 7", got)
	}
}

func TestStoreRoundsExtents(t *testing.T) {
	s := NewStore(10, 3, 0, 0)
	c, r, st := s.Extents()
	if c != 12 || r != 4 || st != 4 {
		t.Fatalf("extents = %d,%d,%d, want 12,4,4", c, r, st)
	}
}

func TestStoreIncrementKeepsAliveBit(t *testing.T) {
	s := NewStore(8, 8, 8, 0)
	if err := s.Write(1, 1, 1, aliveBit); err != nil {
		t.Fatalf("write: %v", err)
	}
	for i := 0; i < MaxNeighbors; i++ {
		if err := s.Increment(1, 1, 1, 1); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	v := s.Read(1, 1, 1)
	if !isAlive(v) || neighborCount(v) != MaxNeighbors {
		t.Fatalf("cell = alive %v count %d, want alive with %d", isAlive(v), neighborCount(v), MaxNeighbors)
	}
	if err := s.Increment(6, 6, 6, 2); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if v := s.Read(6, 6, 6); isAlive(v) || neighborCount(v) != 2 {
		t.Fatalf("dead cell = %#x, want count 2", v)
	}
}

func TestStoreReclaim(t *testing.T) {
	s := NewStore(8, 8, 8, 0)
	if err := s.Write(0, 0, 0, aliveBit); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Increment(5, 5, 5, 1); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if got := s.Reclaim(); got != 0 {
		t.Fatalf("reclaimed %d busy blocks", got)
	}
	if err := s.Write(5, 5, 5, 0); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := s.Reclaim(); got != 1 || s.Blocks() != 1 {
		t.Fatalf("reclaim freed %d, %d blocks left; want 1 and 1", got, s.Blocks())
	}
	s.Clear()
	if s.Blocks() != 0 || s.Read(0, 0, 0) != 0 {
		t.Fatal("Clear left cells behind")
	}
}

func TestStoreBudget(t *testing.T) {
	s := NewStore(8, 8, 8, 2)
	if err := s.Write(0, 0, 0, aliveBit); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Write(4, 0, 0, aliveBit); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.Write(1, 2, 3, aliveBit); err != nil {
		t.Fatalf("write into an allocated block: %v", err)
	}
	err := s.Write(0, 4, 0, aliveBit)
	if errors.Cause(err) != ErrStoreFull {
		t.Fatalf("third block: err = %v, want ErrStoreFull", err)
	}
	if err := s.Increment(0, 0, 4, 1); errors.Cause(err) != ErrStoreFull {
		t.Fatalf("increment into third block: err = %v, want ErrStoreFull", err)
	}
	if err := s.Write(0, 4, 0, 0); err != nil {
		t.Fatalf("zero write needs no block: %v", err)
	}
}

func TestStoreForEachBlock(t *testing.T) {
	s := NewStore(8, 8, 8, 0)
	for _, p := range []Point{{1, 2, 3}, {5, 6, 7}} {
		if err := s.Write(p.X, p.Y, p.Z, aliveBit); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	var corners []Point
	s.forEachBlock(func(x, y, z int, b *block) {
		corners = append(corners, Point{x, y, z})
	})
	if len(corners) != 2 || corners[0] != (Point{0, 0, 0}) || corners[1] != (Point{4, 4, 4}) {
		t.Fatalf("block corners = %v", corners)
	}
}
