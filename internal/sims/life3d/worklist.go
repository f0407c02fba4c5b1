package life3d

// CellID addresses a record in the worklist arena.
type CellID int32

// NoCell marks the absence of a record.
const NoCell CellID = -1

// Cell is one live-cell record. Visible and Dist are refreshed by the renderer
// every frame.
type Cell struct {
	X, Y, Z int
	Visible bool
	Dist    float64

	prev, next CellID
	bucket     CellID
	linked     bool
}

// Worklist is the ordered set of live cells, stored as a doubly linked list
// over an arena of records. Removed records wait in a pending set until
// Release so a handle stays valid for the rest of the pass that removed it.
type Worklist struct {
	cells   []Cell
	head    CellID
	tail    CellID
	free    []CellID
	pending []CellID
	n       int
}

// NewWorklist returns an empty list.
func NewWorklist() *Worklist {
	return &Worklist{head: NoCell, tail: NoCell}
}

// Len reports the number of linked records.
func (l *Worklist) Len() int { return l.n }

// Head returns the first record or NoCell.
func (l *Worklist) Head() CellID { return l.head }

// Tail returns the last record or NoCell.
func (l *Worklist) Tail() CellID { return l.tail }

// Next returns the record after id.
func (l *Worklist) Next(id CellID) CellID { return l.cells[id].next }

// Prev returns the record before id.
func (l *Worklist) Prev(id CellID) CellID { return l.cells[id].prev }

// Cell returns the record for id. The pointer is invalidated by Append.
func (l *Worklist) Cell(id CellID) *Cell { return &l.cells[id] }

// Pending reports how many removed records await Release.
func (l *Worklist) Pending() int { return len(l.pending) }

// Append links a new record at the tail.
func (l *Worklist) Append(x, y, z int) CellID {
	var id CellID
	if n := len(l.free); n > 0 {
		id = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		id = CellID(len(l.cells))
		l.cells = append(l.cells, Cell{})
	}
	l.cells[id] = Cell{X: x, Y: y, Z: z, prev: l.tail, next: NoCell, bucket: NoCell, linked: true}
	if l.tail != NoCell {
		l.cells[l.tail].next = id
	} else {
		l.head = id
	}
	l.tail = id
	l.n++
	return id
}

// Remove unlinks the record and parks it in the pending set.
func (l *Worklist) Remove(id CellID) {
	c := &l.cells[id]
	if !c.linked {
		return
	}
	if c.prev != NoCell {
		l.cells[c.prev].next = c.next
	} else {
		l.head = c.next
	}
	if c.next != NoCell {
		l.cells[c.next].prev = c.prev
	} else {
		l.tail = c.prev
	}
	c.linked = false
	l.n--
	l.pending = append(l.pending, id)
}

// Release recycles every pending record.
func (l *Worklist) Release() {
	l.free = append(l.free, l.pending...)
	l.pending = l.pending[:0]
}

// Reset drops every record, linked or pending.
func (l *Worklist) Reset() {
	l.cells = l.cells[:0]
	l.free = l.free[:0]
	l.pending = l.pending[:0]
	l.head, l.tail = NoCell, NoCell
	l.n = 0
}
