package pool

import "sync"

// BufferPool implements a pool of byte slices used as line scanner buffers
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified size
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Size returns the capacity new buffers are created with
func (bp *BufferPool) Size() int {
	return bp.size
}

// Get retrieves a buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool for reuse
func (bp *BufferPool) Put(buffer *[]byte) {
	// Keep full length so the buffer can be handed straight to a scanner
	*buffer = (*buffer)[:cap(*buffer)]
	bp.pool.Put(buffer)
}

// BatchPool implements a pool of line slices holding one batch of input lines
type BatchPool struct {
	pool sync.Pool
}

// NewBatchPool creates a pool of line slices with the given initial capacity
func NewBatchPool(capacity int) *BatchPool {
	return &BatchPool{
		pool: sync.Pool{
			New: func() interface{} {
				lines := make([]string, 0, capacity)
				return &lines
			},
		},
	}
}

// Get retrieves an empty line slice from the pool
func (p *BatchPool) Get() *[]string {
	return p.pool.Get().(*[]string)
}

// Put returns a line slice to the pool
func (p *BatchPool) Put(lines *[]string) {
	clear(*lines)
	*lines = (*lines)[:0]
	p.pool.Put(lines)
}
