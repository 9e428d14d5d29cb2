package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dot5enko/simple-seq-io/bgzf"
)

func newCompressCmd() *cobra.Command {

	var (
		level   int
		workers int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "compress <file>",
		Short: "compress a file into the blocked-gzip format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("level") {
				level = viper.GetInt("compress.level")
			}
			if !cmd.Flags().Changed("workers") {
				workers = viper.GetInt("compress.workers")
			}

			dst := output
			if dst == "" {
				dst = args[0] + ".gz"
			}

			return compressFile(args[0], dst, level, workers)
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", -1, "deflate compression level")
	cmd.Flags().IntVarP(&workers, "workers", "j", 1, "parallel compression workers")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default <file>.gz)")

	return cmd
}

// compressFile writes the compressed stream to a uniquely named temp file in
// the destination directory and renames it into place, so a failed run never
// leaves a half-written destination.
func compressFile(src, dst string, level, workers int) error {

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp := filepath.Join(filepath.Dir(dst), fmt.Sprintf(".%s.%s.tmp", filepath.Base(dst), uuid.NewString()))

	out, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	fail := func(err error) error {
		out.Close()
		os.Remove(tmp)
		return err
	}

	if workers > 1 {
		pw, err := bgzf.NewPipelineWriter(out, level, workers)
		if err != nil {
			return fail(err)
		}
		if _, err = io.Copy(pw, in); err != nil {
			pw.Close()
			return fail(err)
		}
		if err = pw.Close(); err != nil {
			return fail(err)
		}
	} else {
		bw, err := bgzf.NewWriterLevel(out, level)
		if err != nil {
			return fail(err)
		}
		if _, err = io.Copy(bw, in); err != nil {
			return fail(err)
		}
		if err = bw.Close(); err != nil {
			return fail(err)
		}
		log.Debug().Int("blocks", bw.BlocksWritten()).Str("dst", dst).Msg("stream finished")
	}

	if err = out.Close(); err != nil {
		return fail(err)
	}

	if err = os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return err
	}

	return nil
}
