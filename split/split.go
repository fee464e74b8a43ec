// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package split separates combined PDB sequence and secondary structure
// FASTA records into two files based on a header marker.
package split

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	fastats "github.com/kortschak/fastats/fasta"
)

// ProteinMarker is the header substring that identifies a protein
// sequence record in PDB seqres/ss files.
const ProteinMarker = "amino acid sequence"

// Class is the destination class of a record.
type Class int

const (
	SecondaryStructure Class = iota
	Protein
)

func (c Class) String() string {
	switch c {
	case Protein:
		return "protein"
	case SecondaryStructure:
		return "secondary structure"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Classify returns Protein if marker is found in header and
// SecondaryStructure otherwise.
func Classify(header, marker string) Class {
	if strings.Contains(header, marker) {
		return Protein
	}
	return SecondaryStructure
}

// Counts holds the number of records written to each destination.
type Counts struct {
	Protein            int
	SecondaryStructure int
}

// Splitter writes FASTA records to a protein or a secondary structure
// destination.
type Splitter struct {
	// Marker is the header substring identifying protein
	// records. ProteinMarker is used if Marker is empty.
	Marker string

	// Width is the sequence line width of the output.
	// Sequences are written on a single line if Width
	// is not positive.
	Width int
}

// Split writes the records to proteinPath and ssPath using the default
// Splitter.
func Split(headers, seqs []string, proteinPath, ssPath string) (Counts, error) {
	var s Splitter
	return s.Split(headers, seqs, proteinPath, ssPath)
}

// Split writes each record to proteinPath or ssPath depending on its
// class. Both files are created before any record is written, so empty
// input results in two empty files. No file is created if the records
// do not pair.
func (s *Splitter) Split(headers, seqs []string, proteinPath, ssPath string) (n Counts, err error) {
	err = fastats.Verify(headers, seqs)
	if err != nil {
		return n, err
	}

	pf, err := os.Create(proteinPath)
	if err != nil {
		return n, fmt.Errorf("failed to create %q: %w", proteinPath, err)
	}
	defer closeFile(pf, &err)
	sf, err := os.Create(ssPath)
	if err != nil {
		return n, fmt.Errorf("failed to create %q: %w", ssPath, err)
	}
	defer closeFile(sf, &err)

	pw := s.newWriter(pf)
	sw := s.newWriter(sf)

	marker := s.Marker
	if marker == "" {
		marker = ProteinMarker
	}
	for i, h := range headers {
		switch Classify(h, marker) {
		case Protein:
			err = pw.write(h, seqs[i])
			n.Protein++
		default:
			err = sw.write(h, seqs[i])
			n.SecondaryStructure++
		}
		if err != nil {
			return n, err
		}
	}

	err = pw.flush()
	if err != nil {
		return n, fmt.Errorf("failed to write %q: %w", proteinPath, err)
	}
	err = sw.flush()
	if err != nil {
		return n, fmt.Errorf("failed to write %q: %w", ssPath, err)
	}
	return n, nil
}

func closeFile(f *os.File, err *error) {
	cerr := f.Close()
	if *err == nil && cerr != nil {
		*err = fmt.Errorf("failed to close %q: %w", f.Name(), cerr)
	}
}

type recordWriter struct {
	buf   *bufio.Writer
	width int
	fw    *fasta.Writer
}

func (s *Splitter) newWriter(w io.Writer) *recordWriter {
	rw := &recordWriter{buf: bufio.NewWriter(w), width: s.Width}
	if rw.width > 0 {
		rw.fw = fasta.NewWriter(rw.buf, rw.width)
	}
	return rw
}

// write writes a record as its header line followed by its sequence.
func (w *recordWriter) write(header, seq string) error {
	if w.fw == nil || seq == "" {
		_, err := fmt.Fprintf(w.buf, "%s\n%s\n", header, seq)
		return err
	}
	id := strings.TrimPrefix(header, string(fastats.Marker))
	_, err := w.fw.Write(linear.NewSeq(id, alphabet.BytesToLetters([]byte(seq)), alphabet.Protein))
	return err
}

func (w *recordWriter) flush() error { return w.buf.Flush() }
