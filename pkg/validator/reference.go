package validator

import (
	"fmt"

	"voltaic-hq/faraday/pkg/network"
)

// branchEndpoint is one declared endpoint of a branch, labelled for issue
// messages ("node1", "winding 2", ...).
type branchEndpoint struct {
	label string
	node  string
}

// branch is the kind-independent view of an edge the reference validators
// check.
type branch struct {
	id        string
	name      string
	endpoints []branchEndpoint
}

// nodeReferenceValidator checks that every declared endpoint of one branch
// kind resolves to an existing node. One ERROR issue is emitted per dangling
// endpoint, in the iteration order of the branch collection.
type nodeReferenceValidator struct {
	name     string
	kind     string
	branches func(n *network.Network) []branch
}

func (v *nodeReferenceValidator) Name() string       { return v.name }
func (v *nodeReferenceValidator) Category() Category { return CategoryCore }

func (v *nodeReferenceValidator) Check(n *network.Network) ([]Issue, error) {
	var issues []Issue
	for _, b := range v.branches(n) {
		for _, ep := range b.endpoints {
			if n.HasNode(ep.node) {
				continue
			}
			issues = append(issues, Issue{
				Severity:  SeverityError,
				Validator: v.name,
				Message: fmt.Sprintf("%s %q references unknown node %q (%s)",
					v.kind, displayName(b), ep.node, ep.label),
				EntityRef: b.id,
			})
		}
	}
	return issues, nil
}

func displayName(b branch) string {
	if b.name != "" {
		return b.name
	}
	return b.id
}

// NewCableNodeReference returns the built-in validator checking that both
// endpoints of every cable resolve to an existing node.
func NewCableNodeReference() Validator {
	return &nodeReferenceValidator{
		name: "cable_node_reference",
		kind: "cable",
		branches: func(n *network.Network) []branch {
			out := make([]branch, 0, len(n.Cables()))
			for _, c := range n.Cables() {
				out = append(out, branch{
					id:   c.ID,
					name: c.Name,
					endpoints: []branchEndpoint{
						{label: "node1", node: c.Node1},
						{label: "node2", node: c.Node2},
					},
				})
			}
			return out
		},
	}
}

// NewLinkNodeReference returns the built-in validator checking that both
// endpoints of every link resolve to an existing node.
func NewLinkNodeReference() Validator {
	return &nodeReferenceValidator{
		name: "link_node_reference",
		kind: "link",
		branches: func(n *network.Network) []branch {
			out := make([]branch, 0, len(n.Links()))
			for _, l := range n.Links() {
				out = append(out, branch{
					id:   l.ID,
					name: l.Name,
					endpoints: []branchEndpoint{
						{label: "node1", node: l.Node1},
						{label: "node2", node: l.Node2},
					},
				})
			}
			return out
		},
	}
}

// NewTransformerNodeReference returns the built-in validator checking that
// every declared winding of every transformer resolves to an existing node.
func NewTransformerNodeReference() Validator {
	return &nodeReferenceValidator{
		name: "transformer_node_reference",
		kind: "transformer",
		branches: func(n *network.Network) []branch {
			out := make([]branch, 0, len(n.Transformers()))
			for _, t := range n.Transformers() {
				eps := make([]branchEndpoint, 0, len(t.Windings))
				for i, w := range t.Windings {
					eps = append(eps, branchEndpoint{
						label: fmt.Sprintf("winding %d", i+1),
						node:  w,
					})
				}
				out = append(out, branch{id: t.ID, name: t.Name, endpoints: eps})
			}
			return out
		},
	}
}
