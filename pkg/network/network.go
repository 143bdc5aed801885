package network

import (
	"github.com/google/uuid"
)

// Level identifies the voltage level a network models.
type Level string

const (
	// LevelLV is a low-voltage distribution network.
	LevelLV Level = "LV"
	// LevelMV is a medium-voltage distribution network.
	LevelMV Level = "MV"
)

// Node is a bus or terminal in the network graph.
type Node struct {
	// ID uniquely identifies the node within its network. Opaque to the
	// engine; assigned by the Builder when left empty.
	ID string `json:"id"`

	// Name is the human-readable node name.
	Name string `json:"name,omitempty"`
}

// Cable is a two-terminal cable branch connecting two nodes.
type Cable struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	// Node1 and Node2 are the declared endpoint node IDs.
	Node1 string `json:"node1"`
	Node2 string `json:"node2"`
}

// Link is a two-terminal connection without electrical length, such as a
// busbar coupling or a switch modelled as a branch.
type Link struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	Node1 string `json:"node1"`
	Node2 string `json:"node2"`
}

// Transformer is a branch with two or more windings, each terminating on a
// node. Two-winding distribution transformers are the common case; three
// windings occur for special transformers.
type Transformer struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`

	// Windings holds the declared endpoint node IDs, one per winding.
	Windings []string `json:"windings"`
}

// Network is an immutable, already-constructed electrical network graph.
// All accessors iterate in insertion order, so enumeration is deterministic
// for a fixed network. Callers must not modify the returned slices.
//
// A Network is safe for concurrent readers; it has no mutating operations
// after Build.
type Network struct {
	level        Level
	nodes        []Node
	cables       []Cable
	links        []Link
	transformers []Transformer

	nodeIndex map[string]int
}

// Level returns the voltage level tag of the network.
func (n *Network) Level() Level { return n.level }

// Nodes returns all nodes in insertion order.
func (n *Network) Nodes() []Node { return n.nodes }

// Cables returns all cables in insertion order.
func (n *Network) Cables() []Cable { return n.cables }

// Links returns all links in insertion order.
func (n *Network) Links() []Link { return n.links }

// Transformers returns all transformers in insertion order.
func (n *Network) Transformers() []Transformer { return n.transformers }

// HasNode reports whether a node with the given ID exists in the network.
func (n *Network) HasNode(id string) bool {
	_, ok := n.nodeIndex[id]
	return ok
}

// NodeByID returns the node with the given ID.
func (n *Network) NodeByID(id string) (Node, bool) {
	i, ok := n.nodeIndex[id]
	if !ok {
		return Node{}, false
	}
	return n.nodes[i], true
}

// Builder assembles a Network. Entities are kept in the order they are
// added; entities added without an ID receive a generated UUID.
type Builder struct {
	level        Level
	nodes        []Node
	cables       []Cable
	links        []Link
	transformers []Transformer
}

// NewBuilder creates a Builder for a network at the given voltage level.
func NewBuilder(level Level) *Builder {
	return &Builder{level: level}
}

// AddNode adds a node and returns its ID.
func (b *Builder) AddNode(n Node) string {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	b.nodes = append(b.nodes, n)
	return n.ID
}

// AddCable adds a cable and returns its ID.
func (b *Builder) AddCable(c Cable) string {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	b.cables = append(b.cables, c)
	return c.ID
}

// AddLink adds a link and returns its ID.
func (b *Builder) AddLink(l Link) string {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	b.links = append(b.links, l)
	return l.ID
}

// AddTransformer adds a transformer and returns its ID.
func (b *Builder) AddTransformer(t Transformer) string {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	b.transformers = append(b.transformers, t)
	return t.ID
}

// Build finalizes the network. The Builder must not be reused afterwards.
func (b *Builder) Build() *Network {
	idx := make(map[string]int, len(b.nodes))
	for i, n := range b.nodes {
		idx[n.ID] = i
	}
	return &Network{
		level:        b.level,
		nodes:        b.nodes,
		cables:       b.cables,
		links:        b.links,
		transformers: b.transformers,
		nodeIndex:    idx,
	}
}
