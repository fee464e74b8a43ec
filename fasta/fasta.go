// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fasta reads FASTA files into index-aligned header and
// sequence lists.
//
// Header lines keep their '>' marker. The sequence of a record is the
// concatenation of every other line up to the next header, with each
// line stripped of surrounding white space.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// Marker is the first character of a FASTA header line.
const Marker = '>'

// ErrLengthMismatch is matched by a *LengthError.
var ErrLengthMismatch = errors.New("header and sequence lists have different lengths")

// LengthError reports header and sequence lists that cannot be paired.
type LengthError struct {
	Headers   int
	Sequences int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v (%d != %d)", ErrLengthMismatch, e.Headers, e.Sequences)
}

// Is allows errors.Is(err, ErrLengthMismatch).
func (e *LengthError) Is(target error) bool { return target == ErrLengthMismatch }

// Verify returns a *LengthError if headers and seqs differ in length.
func Verify(headers, seqs []string) error {
	if len(headers) != len(seqs) {
		return &LengthError{Headers: len(headers), Sequences: len(seqs)}
	}
	return nil
}

// Parse reads the FASTA file at path. Files with a .gz suffix are
// decompressed.
func Parse(path string) (headers, seqs []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip stream %q: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	headers, seqs, err = ParseReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return headers, seqs, nil
}

// ParseReader reads FASTA records from r. Lines may be terminated by
// "\n", "\r\n" or a lone "\r". A header with no sequence lines yields an
// empty sequence. Input with no header lines yields nil slices.
func ParseReader(r io.Reader) (headers, seqs []string, err error) {
	var (
		header  string
		pending bool
		seq     strings.Builder
	)
	br := bufio.NewReader(r)
	for {
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, nil, err
		}
		eof := err == io.EOF
		if eof && text == "" {
			break
		}

		for _, line := range strings.Split(text, "\r") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, string(Marker)) {
				if pending {
					headers = append(headers, header)
					seqs = append(seqs, seq.String())
				}
				header = line
				pending = true
				seq.Reset()
			} else {
				seq.WriteString(line)
			}
		}

		if eof {
			break
		}
	}
	if pending {
		headers = append(headers, header)
		seqs = append(seqs, seq.String())
	}
	return headers, seqs, nil
}
