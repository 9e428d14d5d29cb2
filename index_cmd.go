package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dot5enko/simple-seq-io/bgzf"
)

func newIndexCmd() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "index <file.gz>",
		Short: "build a .gzi block index for a blocked-gzip file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return indexFile(args[0], args[0]+".gzi")
		},
	}

	return cmd
}

func indexFile(src, dst string) error {

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	idx, err := bgzf.BuildIndex(in)
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if err = idx.Write(out); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}

	log.Debug().Int("entries", len(idx)).Str("dst", dst).Msg("index written")

	return out.Close()
}
