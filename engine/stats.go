package engine

import "fmt"

// Stats collects node and cutoff counts for one search.
type Stats struct {
	Nodes       uint64
	TTProbes    uint64
	TTHits      uint64
	TTCutoffs   uint64
	BetaCutoffs uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes %d tt_probes %d tt_hits %d tt_cutoffs %d beta_cutoffs %d",
		s.Nodes, s.TTProbes, s.TTHits, s.TTCutoffs, s.BetaCutoffs)
}
