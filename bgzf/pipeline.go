package bgzf

import (
	"hash/crc32"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/dot5enko/simple-seq-io/cache"
	"github.com/dot5enko/simple-seq-io/compression"
)

type compressJob struct {
	raw   []byte
	bufID uint16
	res   chan compressedBlock
}

type compressedBlock struct {
	cdata []byte
	crc   uint32
	ulen  int
	bufID uint16
	err   error
}

// PipelineWriter compresses accumulated blocks on parallel workers. Each
// block is an independent compress unit, so only the sink order matters:
// blocks are handed to the sink in the order they were accumulated, which
// keeps the compressed stream byte-identical in layout to a sequential
// writer's (block contents may differ only in deflate encoding).
//
// Errors occurring on workers or the sink surface from Close. Like Writer,
// a PipelineWriter is not safe for concurrent use.
type PipelineWriter struct {
	jobs  chan compressJob
	order chan chan compressedBlock
	pool  *cache.BufferPool
	g     *errgroup.Group

	cur   []byte
	curID uint16
	ulen  int

	closed bool
}

func NewPipelineWriter(w io.Writer, level, workers int) (*PipelineWriter, error) {

	if workers < 1 {
		workers = 1
	}

	// validate the level before spawning anything
	if _, err := compression.NewDeflater(level); err != nil {
		return nil, err
	}

	pw := &PipelineWriter{
		jobs:  make(chan compressJob),
		order: make(chan chan compressedBlock, workers*2),
		pool:  cache.NewBufferPool(workers*2+1, MaxBlockSize),
		g:     new(errgroup.Group),
	}

	for i := 0; i < workers; i++ {
		pw.g.Go(func() error {
			def, err := compression.NewDeflater(level)

			for job := range pw.jobs {
				out := compressedBlock{
					crc:   crc32.ChecksumIEEE(job.raw),
					ulen:  len(job.raw),
					bufID: job.bufID,
					err:   err,
				}

				if err == nil {
					var cdata []byte
					cdata, out.err = def.Deflate(job.raw)
					if out.err == nil {
						// the deflater's buffer is reused on the next job
						out.cdata = append([]byte(nil), cdata...)
					}
				}

				job.res <- out
			}

			return nil
		})
	}

	pw.g.Go(func() error {
		var firstErr error

		for res := range pw.order {
			blk := <-res
			pw.pool.Return(blk.bufID)

			if firstErr != nil {
				continue
			}
			if blk.err != nil {
				firstErr = blk.err
				continue
			}

			if err := writeBlockHeader(w, len(blk.cdata)); err != nil {
				firstErr = err
				continue
			}
			if _, err := w.Write(blk.cdata); err != nil {
				firstErr = err
				continue
			}
			if err := writeBlockTrailer(w, blk.crc, uint32(blk.ulen)); err != nil {
				firstErr = err
				continue
			}
		}

		if firstErr != nil {
			return firstErr
		}

		_, err := w.Write(eofMarker)
		return err
	})

	pw.cur, pw.curID = pw.pool.Get()

	return pw, nil
}

func (pw *PipelineWriter) dispatch() {

	res := make(chan compressedBlock, 1)

	pw.order <- res
	pw.jobs <- compressJob{raw: pw.cur[:pw.ulen], bufID: pw.curID, res: res}

	pw.cur, pw.curID = pw.pool.Get()
	pw.ulen = 0
}

func (pw *PipelineWriter) Write(p []byte) (int, error) {

	total := 0

	for len(p) > 0 {
		n := copy(pw.cur[pw.ulen:], p)

		pw.ulen += n
		total += n
		p = p[n:]

		if pw.ulen == MaxBlockSize {
			pw.dispatch()
		}
	}

	return total, nil
}

// Flush hands the partial block to the workers. Unlike Writer.Flush it does
// not wait for the block to reach the sink.
func (pw *PipelineWriter) Flush() {
	if pw.ulen > 0 {
		pw.dispatch()
	}
}

// Close drains the pipeline, appends the EOF marker, and reports the first
// error encountered by any worker or the sink.
func (pw *PipelineWriter) Close() error {

	if pw.closed {
		return nil
	}
	pw.closed = true

	pw.Flush()
	pw.pool.Return(pw.curID)
	pw.cur = nil

	close(pw.jobs)
	close(pw.order)

	return pw.g.Wait()
}
