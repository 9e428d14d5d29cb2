package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dot5enko/simple-seq-io/bgzf"
	fio "github.com/dot5enko/simple-seq-io/io"
)

func newInspectCmd() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "inspect <file.gz>",
		Short: "walk the block structure of a blocked-gzip file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectFile(cmd.OutOrStdout(), args[0])
		},
	}

	return cmd
}

func inspectFile(out io.Writer, path string) error {

	f := fio.NewFileReader(path)
	if err := f.Open(); err != nil {
		return err
	}
	defer f.Close()

	size, err := f.Size()
	if err != nil {
		return err
	}

	blockNo := color.New(color.FgCyan)
	eofNote := color.New(color.FgGreen, color.Bold)
	warn := color.New(color.FgRed, color.Bold)

	var (
		coffset int64
		uoffset int64
		n       int
		sawEOF  bool
	)

	for coffset < size {
		data, next, err := bgzf.DecodeBlockAt(f, coffset)
		if err != nil {
			warn.Fprintf(out, "block %d at offset %d: %v\n", n, coffset, err)
			return err
		}

		vp, _ := bgzf.NewVirtualPosition(coffset, 0)

		blockNo.Fprintf(out, "block %-6d", n)
		fmt.Fprintf(out, " vpos=%-16d compressed=%-6d uncompressed=%-6d logical-offset=%d\n",
			uint64(vp), next-coffset, len(data), uoffset)

		sawEOF = len(data) == 0 && bytes.Equal(mustReadRaw(f, coffset, next), bgzf.EOFMarker())

		uoffset += int64(len(data))
		coffset = next
		n++
	}

	if sawEOF {
		eofNote.Fprintln(out, "clean EOF marker present")
	} else {
		warn.Fprintln(out, "EOF marker missing, stream may be truncated")
	}

	return nil
}

func mustReadRaw(f *fio.FileReader, from, to int64) []byte {

	if to-from != int64(len(bgzf.EOFMarker())) {
		return nil
	}

	raw := make([]byte, to-from)
	if _, err := f.ReadAt(raw, from); err != nil {
		return nil
	}

	return raw
}
