package export

import (
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	table := Table{
		Header: []string{"gene", "drug", "score"},
		Rows: [][]string{
			{"BRAF", "VEMURAFENIB", "12.92"},
			{"BRAF", "with,comma", "9.51"},
		},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, table); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	want := "gene,drug,score\nBRAF,VEMURAFENIB,12.92\nBRAF,\"with,comma\",9.51\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestWriteTSV(t *testing.T) {
	table := Table{
		Header: []string{"gene", "drug"},
		Rows:   [][]string{{"BRAF", "VEMURAFENIB"}},
	}

	var sb strings.Builder
	if err := WriteTSV(&sb, table); err != nil {
		t.Fatalf("WriteTSV() error = %v", err)
	}

	want := "gene\tdrug\nBRAF\tVEMURAFENIB\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestWriteCSVRowWidthMismatch(t *testing.T) {
	table := Table{
		Header: []string{"gene", "drug"},
		Rows:   [][]string{{"BRAF"}},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, table); err == nil {
		t.Error("expected error for short row, got nil")
	}
}
