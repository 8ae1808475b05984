package engine

import (
	"unsafe"

	"negamax-chess/board"
)

const (
	// Flags
	UpperBound int8 = iota
	LowerBound
	Exact

	clusterSize = 4
)

// TransTable is a hash-indexed cache of search results. Entries are grouped in
// clusters of four; a store prefers the slot already holding the key, then an
// empty slot, then the shallowest entry.
type TransTable struct {
	entries      []TTEntry
	clusterCount uint64
}

type TTEntry struct {
	Hash  uint64
	Move  board.Move
	Score int32
	Depth int8
	Flag  int8
}

// NewTransTable allocates a table of roughly sizeMB megabytes.
func NewTransTable(sizeMB int) *TransTable {
	tt := &TransTable{}
	tt.Resize(sizeMB)
	return tt
}

// Resize reallocates the table, dropping every entry.
func (tt *TransTable) Resize(sizeMB int) {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	totalBytes := uint64(clamp(sizeMB, MinHashMB, MaxHashMB)) * 1024 * 1024
	clusterCount := totalBytes / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	tt.clusterCount = clusterCount
	tt.entries = make([]TTEntry, clusterCount*clusterSize)
}

// Clear empties the table without reallocating.
func (tt *TransTable) Clear() {
	clear(tt.entries)
}

// Len reports the number of slots.
func (tt *TransTable) Len() int { return len(tt.entries) }

// Probe returns the entry stored for hash, if any.
func (tt *TransTable) Probe(hash uint64) (entry TTEntry, found bool) {
	if tt.clusterCount == 0 || hash == 0 {
		return TTEntry{}, false
	}
	base := int(hash % tt.clusterCount * clusterSize)
	for i := 0; i < clusterSize; i++ {
		if e := tt.entries[base+i]; e.Hash == hash {
			return e, true
		}
	}
	return TTEntry{}, false
}

// usable reports whether a probed entry settles the node at this depth and
// window, and the score to return. Mate scores are stored relative to the node
// and converted back to the root distance here.
func (e TTEntry) usable(depth int, alpha, beta int32, ply int) (bool, int32) {
	if int(e.Depth) < depth {
		return false, 0
	}
	score := e.Score
	if score > MateThreshold {
		score -= int32(ply)
	} else if score < -MateThreshold {
		score += int32(ply)
	}
	switch e.Flag {
	case Exact:
		return true, score
	case UpperBound:
		if score <= alpha {
			return true, alpha
		}
	case LowerBound:
		if score >= beta {
			return true, beta
		}
	}
	return false, 0
}

// Store records a search result.
func (tt *TransTable) Store(hash uint64, depth, ply int, move board.Move, score int32, flag int8) {
	if tt.clusterCount == 0 {
		return
	}
	base := int(hash % tt.clusterCount * clusterSize)

	// Mate scores are kept as distance from this node.
	if score > MateThreshold {
		score += int32(ply)
	} else if score < -MateThreshold {
		score -= int32(ply)
	}

	target := -1
	for i := 0; i < clusterSize; i++ {
		if tt.entries[base+i].Hash == hash {
			target = base + i
			break
		}
	}
	if target == -1 {
		for i := 0; i < clusterSize; i++ {
			if tt.entries[base+i].Hash == 0 {
				target = base + i
				break
			}
		}
	}
	if target == -1 {
		target = base
		for i := 1; i < clusterSize; i++ {
			if tt.entries[base+i].Depth < tt.entries[target].Depth {
				target = base + i
			}
		}
	}

	tt.entries[target] = TTEntry{
		Hash:  hash,
		Move:  move,
		Score: score,
		Depth: int8(depth),
		Flag:  flag,
	}
}
