// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/biogo/biogo/alphabet"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a whole report.
type Summary struct {
	Records int

	// Totals holds the summed symbol counts in Symbols order.
	Totals [len(Symbols)]int

	// MeanLength and StdDevLength are NaN when
	// there are too few records to estimate them.
	MeanLength   float64
	StdDevLength float64

	// NonIUPAC is the number of records with at least one
	// letter outside the redundant DNA alphabet.
	NonIUPAC int
}

// Summarize returns a Summary of the report rows and their sequences.
// rows and seqs must be index-aligned as returned by Rows.
func Summarize(rows []Row, seqs []string) Summary {
	s := Summary{
		Records:      len(rows),
		MeanLength:   math.NaN(),
		StdDevLength: math.NaN(),
	}
	for _, r := range rows {
		for j, c := range r.Counts {
			s.Totals[j] += c
		}
	}

	lengths := make([]float64, len(seqs))
	for i, seq := range seqs {
		lengths[i] = float64(len(seq))
		if !validDNA(seq) {
			s.NonIUPAC++
		}
	}
	if len(lengths) != 0 {
		s.MeanLength, s.StdDevLength = stat.MeanStdDev(lengths, nil)
	}
	return s
}

func validDNA(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if !alphabet.DNAredundant.IsValid(alphabet.Letter(seq[i])) {
			return false
		}
	}
	return true
}
