package vcf

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleVCF = `##fileformat=VCFv4.2
##contig=<ID=7>
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO
7	140753336	.	A	T	60	PASS	.
7	55191822	rs121434568	T	G	99	PASS	.
12	25245350	.	C	A	50	PASS	.
`

func TestRead(t *testing.T) {
	records, err := Read(strings.NewReader(sampleVCF), "", 0)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := []Record{
		{Chromosome: "7", Position: 140753336, Ref: "A", Alt: "T", Qual: "60", Filter: "PASS"},
		{Chromosome: "7", Position: 55191822, Ref: "T", Alt: "G", Qual: "99", Filter: "PASS"},
		{Chromosome: "12", Position: 25245350, Ref: "C", Alt: "A", Qual: "50", Filter: "PASS"},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestReadContigFilter(t *testing.T) {
	records, err := Read(strings.NewReader(sampleVCF), "7", 0)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, rec := range records {
		if rec.Chromosome != "7" {
			t.Errorf("chromosome = %s, want 7", rec.Chromosome)
		}
	}
}

func TestReadLimit(t *testing.T) {
	records, err := Read(strings.NewReader(sampleVCF), "", 1)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "7\t123\t.\tA"},
		{"bad position", "7\tabc\t.\tA\tT\t60\tPASS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.line+"\n"), "", 0); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestReadFileGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.vcf.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(sampleVCF)); err != nil {
		t.Fatalf("writing gzip: %v", err)
	}
	gz.Close()
	f.Close()

	records, err := ReadFile(path, "", 0)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.vcf"), "", 0); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
