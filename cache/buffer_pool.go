package cache

// BufferPool hands out fixed-size buffers carved from a single arena. Get
// blocks until a buffer is free, which doubles as backpressure for
// producers that outrun consumers.
type BufferPool struct {
	buffers [][]byte
	free    chan uint16

	arena   []byte
	bufSize int
}

func NewBufferPool(n int, bufSize int) *BufferPool {
	arena := make([]byte, n*bufSize)

	buffers := make([][]byte, n)
	for i := 0; i < n; i++ {
		start := i * bufSize
		end := start + bufSize
		buffers[i] = arena[start:end:end] // full slice expression
	}

	free := make(chan uint16, n)
	for i := 0; i < n; i++ {
		free <- uint16(i)
	}

	return &BufferPool{
		arena:   arena,
		buffers: buffers,
		free:    free,
		bufSize: bufSize,
	}
}

func (p *BufferPool) Get() ([]byte, uint16) {
	id := <-p.free
	return p.buffers[id], id
}

func (p *BufferPool) Return(id uint16) {
	p.free <- id
}

func (p *BufferPool) BufferSize() int {
	return p.bufSize
}
