// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// nt-stats writes a tab-separated report of A, G, C, T and N counts for
// each record of a FASTA file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kortschak/fastats/fasta"
	"github.com/kortschak/fastats/internal/config"
	"github.com/kortschak/fastats/stats"
)

func main() {
	err := newCommand(os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(stderr io.Writer) *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "nt-stats",
		Short: "Provide a FASTA file to generate nucleotide statistics",
		Args:  cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(c, stderr)
		},
	}
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringP("infile", "i", "", "path to the file to open (required)")
	flags.StringP("outfile", "o", "", "path to the file to write to (required)")
	flags.String("config", "", "path to a settings file")
	flags.String("log-level", "info", "logging level (debug, info, warn, error)")
	v.BindPFlags(flags)

	return cmd
}

func run(c config.Config, stderr io.Writer) error {
	if c.Outfile == "" {
		return errors.New("no output file specified")
	}
	logger, err := config.NewLogger(stderr, c.LogLevel)
	if err != nil {
		return err
	}

	headers, seqs, err := fasta.Parse(c.Infile)
	if err != nil {
		return err
	}
	logger.Debug("parsed fasta", "path", c.Infile, "records", len(headers))

	// WriteFile checks record pairing before the report is created.
	rows, err := stats.WriteFile(c.Outfile, headers, seqs)
	if err != nil {
		return err
	}

	s := stats.Summarize(rows, seqs)
	logger.Info("wrote nucleotide statistics",
		"path", c.Outfile,
		"records", s.Records,
		"A", s.Totals[0], "G", s.Totals[1], "C", s.Totals[2], "T", s.Totals[3], "N", s.Totals[4],
		"mean_length", s.MeanLength,
		"stddev_length", s.StdDevLength,
	)
	if s.NonIUPAC != 0 {
		logger.Warn("records contain letters outside the IUPAC DNA alphabet", "records", s.NonIUPAC)
	}
	return nil
}
