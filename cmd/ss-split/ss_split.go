// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ss-split splits a combined PDB sequence and secondary structure FASTA
// file into a protein sequence file and a secondary structure file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kortschak/fastats/fasta"
	"github.com/kortschak/fastats/internal/config"
	"github.com/kortschak/fastats/split"
)

func main() {
	err := newCommand(os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "ss-split",
		Short: "Provide a FASTA file to perform splitting on sequence and secondary structure",
		Args:  cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(c, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringP("infile", "i", "", "path to file to open (required)")
	flags.String("protein-out", "pdb_protein.fasta", "path to the protein sequence output")
	flags.String("ss-out", "pdb_ss.fasta", "path to the secondary structure output")
	flags.String("marker", split.ProteinMarker, "header text identifying protein sequence records")
	flags.Int("width", 0, "sequence line width (0 for no wrapping)")
	flags.String("config", "", "path to a settings file")
	flags.String("log-level", "info", "logging level (debug, info, warn, error)")
	v.BindPFlags(flags)

	return cmd
}

func run(c config.Config, stdout, stderr io.Writer) error {
	logger, err := config.NewLogger(stderr, c.LogLevel)
	if err != nil {
		return err
	}

	headers, seqs, err := fasta.Parse(c.Infile)
	if err != nil {
		return err
	}
	logger.Debug("parsed fasta", "path", c.Infile, "records", len(headers))

	s := split.Splitter{Marker: c.Marker, Width: c.Width}
	// Split checks record pairing before either destination is created.
	n, err := s.Split(headers, seqs, c.ProteinOut, c.SSOut)
	if err != nil {
		return err
	}

	// Both lines report the total record count, not the per-class counts.
	fmt.Fprintf(stdout, "Found %d protein sequences\n", len(headers))
	fmt.Fprintf(stderr, "Found %d ss sequences\n", len(seqs))

	logger.Info("split records",
		"protein", n.Protein, "protein_path", c.ProteinOut,
		"ss", n.SecondaryStructure, "ss_path", c.SSOut,
	)
	return nil
}
