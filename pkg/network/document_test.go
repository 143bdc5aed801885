package network

import (
	"strings"
	"testing"
)

func TestReadDocument(t *testing.T) {
	doc := `{
		"level": "MV",
		"nodes": [
			{"id": "a", "name": "Bus A"},
			{"id": "b", "name": "Bus B"}
		],
		"cables": [
			{"id": "c1", "name": "Feeder", "node1": "a", "node2": "b"}
		],
		"links": [
			{"id": "l1", "node1": "a", "node2": "b"}
		],
		"transformers": [
			{"id": "t1", "windings": ["a", "b", "missing"]}
		]
	}`

	n, err := ReadDocument(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}

	if n.Level() != LevelMV {
		t.Errorf("Level() = %q, want MV", n.Level())
	}
	if len(n.Nodes()) != 2 || len(n.Cables()) != 1 || len(n.Links()) != 1 || len(n.Transformers()) != 1 {
		t.Errorf("entity counts: nodes=%d cables=%d links=%d transformers=%d",
			len(n.Nodes()), len(n.Cables()), len(n.Links()), len(n.Transformers()))
	}

	// Dangling references pass document loading; the validators catch them.
	if got := n.Transformers()[0].Windings; len(got) != 3 || got[2] != "missing" {
		t.Errorf("windings = %v", got)
	}
}

func TestReadDocument_DefaultsLevel(t *testing.T) {
	n, err := ReadDocument(strings.NewReader(`{"nodes": []}`))
	if err != nil {
		t.Fatalf("ReadDocument() error: %v", err)
	}
	if n.Level() != LevelLV {
		t.Errorf("Level() = %q, want LV default", n.Level())
	}
}

func TestReadDocument_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "malformed JSON",
			doc:     `{"nodes": [`,
			wantErr: "failed to parse",
		},
		{
			name:    "unknown field",
			doc:     `{"nodes": [], "busbars": []}`,
			wantErr: "failed to parse",
		},
		{
			name:    "duplicate node ID",
			doc:     `{"nodes": [{"id": "a"}, {"id": "a"}]}`,
			wantErr: "duplicate entity ID",
		},
		{
			name:    "ID shared across kinds",
			doc:     `{"nodes": [{"id": "x"}], "cables": [{"id": "x", "node1": "x", "node2": "x"}]}`,
			wantErr: "duplicate entity ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadDocument(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("ReadDocument() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}
