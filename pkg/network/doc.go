/*
Package network provides the in-memory electrical network model consumed by
the validation engine.

A Network is an immutable graph of nodes (buses) connected by typed branches:
cables, links, and transformers. Networks are assembled once through a Builder
and are read-only afterwards:

	b := network.NewBuilder(network.LevelLV)
	a := b.AddNode(network.Node{Name: "Bus A"})
	c := b.AddNode(network.Node{Name: "Bus B"})
	b.AddCable(network.Cable{Name: "Feeder 1", Node1: a, Node2: c})
	net := b.Build()

Branch endpoints reference nodes by their opaque string ID. The model does not
enforce referential integrity itself; dangling endpoint references are exactly
what the validation engine reports.

The package also defines the JSON network document accepted by the faraday
CLI (see ReadDocument and LoadFile).
*/
package network
