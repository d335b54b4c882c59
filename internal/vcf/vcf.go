// Package vcf reads variant records from VCF files for gene annotation.
package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record is one variant call, limited to the fields annotation needs.
type Record struct {
	Chromosome string `json:"chromosome"`
	Position   int    `json:"pos"`
	Ref        string `json:"ref"`
	Alt        string `json:"alt"`
	Qual       string `json:"qual"`
	Filter     string `json:"filter"`
}

// minFields is CHROM POS ID REF ALT QUAL FILTER.
const minFields = 7

// ReadFile reads variant records from a plain or gzipped VCF file,
// keeping only records on the given contig. A limit of 0 reads all
// matching records.
func ReadFile(path, contig string, limit int) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening VCF: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") || strings.HasSuffix(path, ".bgz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	return Read(r, contig, limit)
}

// Read parses VCF records from a reader, keeping only records on the given
// contig.
func Read(r io.Reader, contig string, limit int) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 4*1024*1024)

	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < minFields {
			return nil, fmt.Errorf("line %d: malformed VCF record (%d fields)", lineNo, len(fields))
		}
		if contig != "" && fields[0] != contig {
			continue
		}

		pos, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid position %q", lineNo, fields[1])
		}

		records = append(records, Record{
			Chromosome: fields[0],
			Position:   pos,
			Ref:        fields[3],
			Alt:        fields[4],
			Qual:       fields[5],
			Filter:     fields[6],
		})

		if limit > 0 && len(records) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading VCF: %w", err)
	}

	return records, nil
}
