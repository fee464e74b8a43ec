// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kortschak/fastats/internal/config"
)

func TestNTStats(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.fasta")
	out := filepath.Join(dir, "report.tsv")
	if err := os.WriteFile(in, []byte(">header1\nATGC\n>header2\nATGC"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	cmd := newCommand(&stderr)
	cmd.SetArgs([]string{"-i", in, "--outfile", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	const want = "Header\tNCBI Accession\tA_count\tG_count\tC_count\tT_count\tN_count\n" +
		">header1\t>header1\t1\t1\t1\t1\t0\n" +
		">header2\t>header2\t1\t1\t1\t1\t0\n"
	if string(got) != want {
		t.Errorf("unexpected report:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if !strings.Contains(stderr.String(), "records=2") {
		t.Errorf("expected summary log, got: %q", stderr.String())
	}
}

func TestNTStatsErrors(t *testing.T) {
	dir := t.TempDir()

	cmd := newCommand(&bytes.Buffer{})
	cmd.SetArgs([]string{"-o", filepath.Join(dir, "out.tsv")})
	err := cmd.Execute()
	if !errors.Is(err, config.ErrMissingInput) {
		t.Errorf("expected missing input error, got: %v", err)
	}

	in := filepath.Join(dir, "in.fasta")
	if err := os.WriteFile(in, []byte(">a\nA\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd = newCommand(&bytes.Buffer{})
	cmd.SetArgs([]string{"-i", in})
	err = cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "no output file") {
		t.Errorf("expected missing output error, got: %v", err)
	}

	cmd = newCommand(&bytes.Buffer{})
	cmd.SetArgs([]string{"-i", filepath.Join(dir, "missing.fasta"), "-o", filepath.Join(dir, "out.tsv")})
	err = cmd.Execute()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.tsv")); !os.IsNotExist(err) {
		t.Errorf("expected no report after failed parse, stat error: %v", err)
	}
}
