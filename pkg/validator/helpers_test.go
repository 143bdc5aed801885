package validator

import (
	"voltaic-hq/faraday/pkg/network"
)

// stubValidator is a configurable test double for runner and registry tests.
type stubValidator struct {
	name     string
	category Category
	issues   []Issue
	err      error
	panicMsg string
	calls    *[]string
}

func (s *stubValidator) Name() string       { return s.name }
func (s *stubValidator) Category() Category { return s.category }

func (s *stubValidator) Check(n *network.Network) ([]Issue, error) {
	if s.calls != nil {
		*s.calls = append(*s.calls, s.name)
	}
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	return s.issues, s.err
}

// emptyNetwork returns a network with no entities.
func emptyNetwork() *network.Network {
	return network.NewBuilder(network.LevelLV).Build()
}

// twoNodeNetwork returns a network with nodes "A" and "B".
func twoNodeNetwork() *network.Network {
	b := network.NewBuilder(network.LevelLV)
	b.AddNode(network.Node{ID: "A", Name: "Bus A"})
	b.AddNode(network.Node{ID: "B", Name: "Bus B"})
	return b.Build()
}
