package engine

import "fmt"

const (
	MinHashMB = 1
	MaxHashMB = 1024
	MinDepth  = 1
	MaxDepth  = 64

	// MaxPly bounds the search tree height; no line goes past MaxDepth plies.
	MaxPly = MaxDepth
)

// Options configures a Searcher.
type Options struct {
	// HashMB is the transposition table size in megabytes.
	HashMB int
	// Depth is used when a search is started without an explicit depth.
	Depth int
}

func DefaultOptions() Options {
	return Options{HashMB: 16, Depth: 5}
}

// Validate reports the first option outside its range.
func (o Options) Validate() error {
	if o.HashMB < MinHashMB || o.HashMB > MaxHashMB {
		return fmt.Errorf("hash %d MB out of range [%d, %d]", o.HashMB, MinHashMB, MaxHashMB)
	}
	if o.Depth < MinDepth || o.Depth > MaxDepth {
		return fmt.Errorf("depth %d out of range [%d, %d]", o.Depth, MinDepth, MaxDepth)
	}
	return nil
}
