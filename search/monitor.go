package search

import (
	"github.com/omarkamelalwahsh/courseseek/core"
	"github.com/omarkamelalwahsh/courseseek/vocab"
)

// SearchMonitor provides hooks to observe the search pipeline.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterExpansion(expansion vocab.Expansion)
	AfterPreFilter(ids []core.ID)
	AfterSimilarity(scores map[core.ID]float32)
	GateRejected(reason string)
	Finish(outcome *Outcome)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                        {}
func (n *noopMonitor) AfterExpansion(_ vocab.Expansion)      {}
func (n *noopMonitor) AfterPreFilter(_ []core.ID)            {}
func (n *noopMonitor) AfterSimilarity(_ map[core.ID]float32) {}
func (n *noopMonitor) GateRejected(_ string)                 {}
func (n *noopMonitor) Finish(_ *Outcome)                     {}
