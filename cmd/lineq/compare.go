package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fractalqb/lineq"
)

func init() {
	compareCmd.RunE = compareFiles
	f := compareCmd.Flags()
	f.StringVarP(&compareCmd.expfile, "expected", "e", "",
		"Set expected lines file name")
	compareCmd.MarkFlagRequired("expected")
	f.StringP("line-order", "l", "any",
		"Set line order: any, as-in-file")
	f.StringP("column-order", "c", "as-in-file",
		"Set column order: as-in-file, any, permuted")
	f.BoolP("trim", "t", false,
		"Trim white space from lines before comparison")
	f.StringP("delimiter", "d", `\t`,
		"Set column delimiter regexp")
	f.String("enclosure", "",
		"Set column enclosure marker, e.g. '\"'")
	f.String("encoding", "UTF-8",
		"Set text encoding of compared files")
	rootCmd.AddCommand(&compareCmd.Command)
}

var compareCmd = struct {
	cobra.Command
	expfile string
}{
	Command: cobra.Command{
		Use:   "compare -e <expected> [file...]",
		Short: "Compare files with expected lines",
	},
}

func checker() (chk lineq.Checker, err error) {
	if chk.LineOrder, err = lineq.ParseLineOrder(cfg.GetString("line-order")); err != nil {
		return chk, err
	}
	if chk.ColumnOrder, err = lineq.ParseColumnOrder(cfg.GetString("column-order")); err != nil {
		return chk, err
	}
	chk.Trim = lineq.LineTrim(cfg.GetBool("trim"))
	chk.Delimiter = cfg.GetString("delimiter")
	chk.Enclosure = cfg.GetString("enclosure")
	chk.Logger = log
	return chk, nil
}

func compareFiles(cmd *cobra.Command, files []string) error {
	chk, err := checker()
	if err != nil {
		return err
	}
	enc, err := lineq.Encoding(cfg.GetString("encoding"))
	if err != nil {
		return err
	}
	expected, err := lineq.OpenLines(compareCmd.expfile, nil)
	if err != nil {
		return err
	}
	log.Debug("compare",
		"expected", compareCmd.expfile,
		"line-order", chk.LineOrder,
		"column-order", chk.ColumnOrder,
		"trim", chk.Trim,
	)
	if len(files) == 0 {
		res, err := chk.Reader(os.Stdin, enc, expected)
		if err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		return verdict("stdin", res)
	}
	mismatch := false
	for _, f := range files {
		res, err := chk.File(f, enc, expected)
		if err != nil {
			return err
		}
		if verdict(f, res) != nil {
			mismatch = true
		}
	}
	if mismatch {
		return errMismatch
	}
	return nil
}

func verdict(name string, res *lineq.Result) error {
	if res.Equivalent() {
		log.Info("matches expected lines", "file", name, "lines", res.ActualCount)
		return nil
	}
	log.Warn("mismatch with expected lines", "file", name, "error", res.Err())
	return errMismatch
}
