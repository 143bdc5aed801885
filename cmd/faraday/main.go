// Faraday is a validation toolkit for electrical network models.
//
// It checks the structural and referential integrity of a network graph of
// buses connected by cables, links, and transformers:
//   - Reference-integrity validators for every branch kind
//   - Category, include, and exclude filters for validator selection
//   - Text and JSON report output for people and CI pipelines
//
// Usage:
//
//	# Validate a network document
//	faraday validate --file network.json
//
//	# Only the core validators, JSON output
//	faraday validate --file network.json --category core --format json
//
//	# List registered validators
//	faraday validators
//
//	# Show version information
//	faraday version
package main

func main() {
	Execute()
}
