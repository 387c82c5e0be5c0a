package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fractalqb/lineq"
	"github.com/fractalqb/lineq/lineqtest"
)

func init() {
	prepareCmd.RunE = prepareFiles
	prepareCmd.Flags().StringVarP(
		&prepareCmd.suffix,
		"suffix", "s",
		prepareCmd.suffix,
		"Set file suffix for created expected lines files")
	prepareCmd.Flags().BoolVarP(
		&prepareCmd.force,
		"force", "f",
		prepareCmd.force,
		"Force to overwrite existing expected lines files")
	prepareCmd.Flags().BoolP("trim", "t", false,
		"Trim white space from lines")
	prepareCmd.Flags().String("encoding", "UTF-8",
		"Set text encoding of sample files")
	rootCmd.AddCommand(&prepareCmd.Command)
}

var prepareCmd = struct {
	cobra.Command
	suffix string
	force  bool
}{
	Command: cobra.Command{
		Use:   "prepare [file...]",
		Short: "Prepare expected lines files from sample files",
	},
	suffix: lineqtest.StdSuffix,
	force:  false,
}

func prepareFiles(cmd *cobra.Command, files []string) error {
	enc, err := lineq.Encoding(cfg.GetString("encoding"))
	if err != nil {
		return err
	}
	prep := lineq.Prepare{
		Trim:     lineq.LineTrim(cfg.GetBool("trim")),
		Encoding: enc,
	}
	if len(files) == 0 {
		return prep.Text(os.Stdout, os.Stdin)
	}
	for _, f := range files {
		if err := prepareFile(prep, f); err != nil {
			return err
		}
	}
	return nil
}

func prepareFile(prep lineq.Prepare, name string) error {
	expfile := name + prepareCmd.suffix
	if _, err := os.Stat(expfile); !os.IsNotExist(err) {
		if !prepareCmd.force {
			return fmt.Errorf("%s already exists", expfile)
		}
	}
	rd, err := os.Open(name)
	if err != nil {
		return err
	}
	defer rd.Close()
	wr, err := os.Create(expfile)
	if err != nil {
		return err
	}
	defer wr.Close()
	if err = prep.Text(wr, rd); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Info("prepared expected lines", "file", expfile)
	return nil
}
