// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes per-record nucleotide counts for FASTA records
// and writes them as a tab-separated report.
package stats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kortschak/fastats/fasta"
)

// Symbols is the closed set of counted nucleotide symbols in report
// column order.
const Symbols = "AGCTN"

// ColumnHeader is the first line of a report.
const ColumnHeader = "Header\tNCBI Accession\tA_count\tG_count\tC_count\tT_count\tN_count"

// ErrInvalidSymbol is matched by a *SymbolError.
var ErrInvalidSymbol = errors.New("invalid nucleotide code")

// SymbolError is returned when a count is requested for a symbol
// outside Symbols.
type SymbolError struct {
	Symbol byte
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidSymbol, e.Symbol)
}

// Is allows errors.Is(err, ErrInvalidSymbol).
func (e *SymbolError) Is(target error) bool { return target == ErrInvalidSymbol }

// Count returns the number of exact, case-sensitive occurrences of sym
// in seq.
func Count(sym byte, seq string) (int, error) {
	if strings.IndexByte(Symbols, sym) < 0 {
		return 0, &SymbolError{Symbol: sym}
	}
	return strings.Count(seq, string(sym)), nil
}

// Accession returns the first white space delimited field of header.
// The '>' marker is retained.
func Accession(header string) string {
	f := strings.Fields(header)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// Row is a single report line.
type Row struct {
	Header    string
	Accession string

	// Counts holds the symbol counts in Symbols order.
	Counts [len(Symbols)]int
}

// Rows returns a report row for each record.
func Rows(headers, seqs []string) ([]Row, error) {
	err := fasta.Verify(headers, seqs)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(headers))
	for i, h := range headers {
		rows[i].Header = h
		rows[i].Accession = Accession(h)
		for j := 0; j < len(Symbols); j++ {
			rows[i].Counts[j], err = Count(Symbols[j], seqs[i])
			if err != nil {
				return nil, err
			}
		}
	}
	return rows, nil
}

// Write writes the report for the records to w.
func Write(w io.Writer, headers, seqs []string) error {
	rows, err := Rows(headers, seqs)
	if err != nil {
		return err
	}
	return writeRows(w, rows)
}

func writeRows(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, ColumnHeader)
	for _, r := range rows {
		fmt.Fprintf(bw, "%s\t%s", r.Header, r.Accession)
		for _, c := range r.Counts {
			fmt.Fprintf(bw, "\t%d", c)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// WriteFile writes the report for the records to the file at path,
// replacing any existing file. No file is created if the records do
// not pair.
func WriteFile(path string, headers, seqs []string) (rows []Row, err error) {
	rows, err = Rows(headers, seqs)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer func() {
		cerr := f.Close()
		if err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %q: %w", path, cerr)
		}
	}()

	err = writeRows(f, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to write %q: %w", path, err)
	}
	return rows, nil
}
