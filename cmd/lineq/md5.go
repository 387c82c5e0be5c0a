package main

import (
	"github.com/spf13/cobra"

	"github.com/fractalqb/lineq"
)

func init() {
	md5Cmd.RunE = md5Files
	md5Cmd.Flags().BoolVar(&md5Cmd.verify, "verify", false,
		"Verify files against their checksum files")
	rootCmd.AddCommand(&md5Cmd.Command)
}

var md5Cmd = struct {
	cobra.Command
	verify bool
}{
	Command: cobra.Command{
		Use:   "md5 file...",
		Short: "Write or verify " + lineq.MD5Suffix + " checksum files",
		Args:  cobra.MinimumNArgs(1),
	},
}

func md5Files(cmd *cobra.Command, files []string) error {
	mismatch := false
	for _, f := range files {
		if !md5Cmd.verify {
			sumf, err := lineq.WriteMD5File(f)
			if err != nil {
				return err
			}
			log.Info("wrote checksum", "file", sumf)
			continue
		}
		ok, err := lineq.VerifyMD5File(f, "")
		switch {
		case err != nil:
			return err
		case ok:
			log.Info("checksum matches", "file", f)
		default:
			log.Warn("checksum mismatch", "file", f)
			mismatch = true
		}
	}
	if mismatch {
		return errMismatch
	}
	return nil
}
