package network

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Document is the JSON description of a network accepted by the faraday CLI.
// It is a flat listing of nodes and branches; endpoint fields reference nodes
// by ID. This is the toolkit's own interchange document, not a vendor network
// file format.
type Document struct {
	Level        Level         `json:"level,omitempty"`
	Nodes        []Node        `json:"nodes"`
	Cables       []Cable       `json:"cables,omitempty"`
	Links        []Link        `json:"links,omitempty"`
	Transformers []Transformer `json:"transformers,omitempty"`
}

// ReadDocument parses a network document from r and constructs the Network.
// Duplicate entity IDs are rejected; dangling endpoint references are not
// (reporting those is the validation engine's job).
func ReadDocument(r io.Reader) (*Network, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse network document: %w", err)
	}
	return doc.Network()
}

// LoadFile reads a network document from the file at path.
func LoadFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open network document %q: %w", path, err)
	}
	defer f.Close()

	n, err := ReadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Network constructs the immutable Network described by the document.
func (d *Document) Network() (*Network, error) {
	level := d.Level
	if level == "" {
		level = LevelLV
	}

	seen := make(map[string]string) // ID -> entity kind
	checkID := func(kind, id string) error {
		if id == "" {
			return nil // Builder assigns one
		}
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("duplicate entity ID %q (%s and %s)", id, prev, kind)
		}
		seen[id] = kind
		return nil
	}

	b := NewBuilder(level)
	for _, n := range d.Nodes {
		if err := checkID("node", n.ID); err != nil {
			return nil, err
		}
		b.AddNode(n)
	}
	for _, c := range d.Cables {
		if err := checkID("cable", c.ID); err != nil {
			return nil, err
		}
		b.AddCable(c)
	}
	for _, l := range d.Links {
		if err := checkID("link", l.ID); err != nil {
			return nil, err
		}
		b.AddLink(l)
	}
	for _, t := range d.Transformers {
		if err := checkID("transformer", t.ID); err != nil {
			return nil, err
		}
		b.AddTransformer(t)
	}
	return b.Build(), nil
}
