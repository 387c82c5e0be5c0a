package main

import (
	"github.com/spf13/cobra"

	"github.com/fractalqb/lineq/suite"
)

func init() {
	verifyCmd.RunE = verifySuites
	verifyCmd.Flags().IntVarP(&verifyCmd.parallel, "parallel", "p", 0,
		"Set number of checks that run concurrently")
	rootCmd.AddCommand(&verifyCmd.Command)
}

var verifyCmd = struct {
	cobra.Command
	parallel int
}{
	Command: cobra.Command{
		Use:   "verify suite...",
		Short: "Run validation suites from YAML or TOML files",
		Args:  cobra.MinimumNArgs(1),
	},
}

func verifySuites(cmd *cobra.Command, files []string) error {
	failed := 0
	for _, f := range files {
		s, err := suite.Load(f)
		if err != nil {
			return err
		}
		s.Logger = log.With("suite", f)
		outs, err := s.Run(cmd.Context(), verifyCmd.parallel)
		if err != nil {
			return err
		}
		for _, o := range outs {
			if !o.OK {
				failed++
			}
		}
	}
	if failed > 0 {
		log.Warn("checks failed", "count", failed)
		return errMismatch
	}
	log.Info("all checks passed")
	return nil
}
