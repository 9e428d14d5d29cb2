package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dot5enko/simple-seq-io/bgzf"
)

func newDecompressCmd() *cobra.Command {

	var output string

	cmd := &cobra.Command{
		Use:   "decompress <file.gz>",
		Short: "decompress a blocked-gzip file, validating every block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dst := output
			if dst == "" {
				dst = strings.TrimSuffix(args[0], ".gz")
				if dst == args[0] {
					dst = args[0] + ".out"
				}
			}

			return decompressFile(args[0], dst)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default <file> without .gz)")

	return cmd
}

func decompressFile(src, dst string) error {

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	// decode errors carry the offset of the offending block
	if _, err = io.Copy(out, bgzf.NewReader(in)); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}

	return out.Close()
}
