package viz

import (
	"strings"
	"testing"

	"github.com/genomicmedlab/dgigo/internal/dgidb"
	"github.com/genomicmedlab/dgigo/internal/netgraph"
)

func TestGenerateHTML(t *testing.T) {
	html, err := GenerateHTML(sampleGraph(), DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}

	for _, want := range []string{
		"<!DOCTYPE html>",
		"cytoscape",
		"Drug-Gene Interaction Network",
		`"preset"`,
		"VEMURAFENIB",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestGenerateHTMLLayouts(t *testing.T) {
	tests := []struct {
		layout       string
		wantCytoName string
	}{
		{"spring", "preset"},
		{"", "preset"},
		{"force", "cose"},
		{"circle", "circle"},
		{"grid", "grid"},
	}

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Layout = tt.layout
			html, err := GenerateHTML(sampleGraph(), opts)
			if err != nil {
				t.Fatalf("GenerateHTML() error = %v", err)
			}
			if !strings.Contains(html, `"`+tt.wantCytoName+`"`) {
				t.Errorf("HTML missing layout %q", tt.wantCytoName)
			}
		})
	}
}

func TestGenerateHTMLInvalidLayout(t *testing.T) {
	opts := DefaultOptions()
	opts.Layout = "hexagonal"
	if _, err := GenerateHTML(sampleGraph(), opts); err == nil {
		t.Error("expected error for invalid layout, got nil")
	}
}

func TestGenerateHTMLNilGraph(t *testing.T) {
	if _, err := GenerateHTML(nil, DefaultOptions()); err == nil {
		t.Error("expected error for nil graph, got nil")
	}
}

func TestGenerateHTMLEmptyGraph(t *testing.T) {
	g := netgraph.New(nil, nil, dgidb.SearchGenes)
	html, err := GenerateHTML(g, DefaultOptions())
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}
	if !strings.Contains(html, "No interaction data") {
		t.Error("empty graph HTML missing empty state message")
	}
}

func TestGenerateHTMLCustomTitle(t *testing.T) {
	opts := DefaultOptions()
	opts.Title = "BRAF network"
	html, err := GenerateHTML(sampleGraph(), opts)
	if err != nil {
		t.Fatalf("GenerateHTML() error = %v", err)
	}
	if !strings.Contains(html, "<title>BRAF network</title>") {
		t.Error("HTML missing custom title")
	}
}
