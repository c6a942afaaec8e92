package arena

// borrowState tracks which views of a tree are alive.
//
// Shared views carry the epoch they were created in. Exclusive views carry a
// lease and their depth in stack; a lease is alive as long as it is found at
// its depth.
type borrowState struct {
	epoch     uint64   // current shared epoch
	stack     []uint64 // live exclusive leases, root lease first
	lastLease uint64   // last lease handed out
	mutScope  bool     // inside Update
	refScopes int      // nesting depth of View
}

func violate(op string, id NodeID, reason string) {
	err := &BorrowError{Op: op, Node: id, Reason: reason}
	tracer().Errorf("%s", err)
	panic(err)
}

// beginShared is called when a shared root view is requested. All exclusive
// views die.
func (b *borrowState) beginShared(op string, id NodeID) uint64 {
	if b.mutScope {
		violate(op, id, "tree is exclusively borrowed by Update")
	}
	b.stack = b.stack[:0]
	return b.epoch
}

// beginExclusive is called when an exclusive root view is requested. All
// other views die.
func (b *borrowState) beginExclusive(op string, id NodeID) uint64 {
	if b.mutScope {
		violate(op, id, "tree is exclusively borrowed by Update")
	}
	if b.refScopes > 0 {
		violate(op, id, "tree is borrowed by View")
	}
	b.epoch++
	b.stack = b.stack[:0]
	return b.push()
}

func (b *borrowState) push() uint64 {
	b.lastLease++
	b.stack = append(b.stack, b.lastLease)
	return b.lastLease
}

func (b *borrowState) checkShared(op string, id NodeID, epoch uint64) {
	if epoch != b.epoch {
		violate(op, id, "shared view outlived by exclusive access")
	}
}

// useExclusive validates an exclusive view and ends every view derived from it.
func (b *borrowState) useExclusive(op string, id NodeID, depth int, lease uint64) {
	if depth >= len(b.stack) || b.stack[depth] != lease {
		violate(op, id, "exclusive view is no longer alive")
	}
	b.stack = b.stack[:depth+1]
}

// derive uses an exclusive view and returns a lease for a view derived from it.
func (b *borrowState) derive(op string, id NodeID, depth int, lease uint64) uint64 {
	b.useExclusive(op, id, depth, lease)
	return b.push()
}
