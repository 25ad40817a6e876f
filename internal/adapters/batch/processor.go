// Package batch parses many phrases in parallel while keeping input order.
package batch

import (
	"bufio"
	"context"
	"errors"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/baditaflorin/go_word2num/internal/pool"
	"github.com/baditaflorin/go_word2num/internal/ports"
)

// Constants for batch processing
const (
	// DefaultWorkers is the default number of worker goroutines
	DefaultWorkers = 0 // 0 means use runtime.NumCPU()

	// DefaultBatchSize defines how many lines one worker job carries
	DefaultBatchSize = 64

	// DefaultMaxLineSize bounds the length of one input line
	DefaultMaxLineSize = 64 * 1024

	// MaxJobQueueSize limits the number of pending jobs
	MaxJobQueueSize = 32
)

// ProcessingConfig defines configuration for batch processing
type ProcessingConfig struct {
	Workers     int
	BatchSize   int
	MaxLineSize int
	// Encoder writes one result to the output stream. Defaults to PlainEncoder.
	Encoder Encoder
}

// DefaultConfig returns a default configuration.
func DefaultConfig() ProcessingConfig {
	return ProcessingConfig{
		Workers:     DefaultWorkers,
		BatchSize:   DefaultBatchSize,
		MaxLineSize: DefaultMaxLineSize,
		Encoder:     PlainEncoder,
	}
}

// Stats summarises one stream run.
type Stats struct {
	Lines    int
	Parsed   int
	Duration time.Duration
}

// Processor fans phrases out to a pool of workers sharing one parser.
type Processor struct {
	parser  ports.NumberParser
	logger  ports.Logger
	workers int
	batch   int
	encoder Encoder

	scanBuffers *pool.BufferPool
	batches     *pool.BatchPool
}

// NewProcessor creates a new batch processor.
func NewProcessor(parser ports.NumberParser, logger ports.Logger, config ProcessingConfig) (*Processor, error) {
	if parser == nil {
		return nil, errors.New("parser must not be nil")
	}
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	if config.Workers < 0 {
		return nil, errors.New("workers must not be negative")
	}

	// Use defaults if not specified
	if config.Workers == 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	if config.MaxLineSize <= 0 {
		config.MaxLineSize = DefaultMaxLineSize
	}
	if config.Encoder == nil {
		config.Encoder = PlainEncoder
	}

	return &Processor{
		parser:      parser,
		logger:      logger,
		workers:     config.Workers,
		batch:       config.BatchSize,
		encoder:     config.Encoder,
		scanBuffers: pool.NewBufferPool(config.MaxLineSize),
		batches:     pool.NewBatchPool(config.BatchSize),
	}, nil
}

// Workers returns the number of worker goroutines.
func (p *Processor) Workers() int { return p.workers }

func (p *Processor) parseLine(line int, text string) Result {
	value, ok := p.parser.Parse(text)
	return Result{Line: line, Text: text, Value: value, OK: ok}
}

// ParseAll parses texts in parallel. Results are in input order.
func (p *Processor) ParseAll(ctx context.Context, texts []string) ([]Result, error) {
	results := make([]Result, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	type chunk struct{ lo, hi int }
	jobs := make(chan chunk, MaxJobQueueSize)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				for j := c.lo; j < c.hi; j++ {
					results[j] = p.parseLine(j+1, texts[j])
				}
			}
		}()
	}

feed:
	for lo := 0; lo < len(texts); lo += p.batch {
		hi := min(lo+p.batch, len(texts))
		select {
		case jobs <- chunk{lo: lo, hi: hi}:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

type lineJob struct {
	lines     *[]string
	firstLine int
	chunkID   int
}

type jobResult struct {
	results []Result
	chunkID int
}

// ProcessStream parses r line by line and writes one encoded result per
// input line to w, in input order.
func (p *Processor) ProcessStream(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	startTime := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan lineJob, MaxJobQueueSize)
	results := make(chan jobResult, p.workers)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go p.worker(ctx, jobs, results, &wg)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	readErr := make(chan error, 1)
	go func() {
		readErr <- p.readLines(ctx, r, jobs)
	}()

	var stats Stats
	var writeErr error
	pending := make(map[int]jobResult)
	nextChunkID := 0

	// Drain every result even after a write error so workers can exit
	for res := range results {
		if writeErr != nil {
			continue
		}
		pending[res.chunkID] = res
		for {
			cur, ok := pending[nextChunkID]
			if !ok {
				break
			}
			delete(pending, nextChunkID)
			nextChunkID++
			if err := p.write(w, cur.results, &stats); err != nil {
				writeErr = err
				cancel()
				break
			}
		}
	}

	err := <-readErr
	stats.Duration = time.Since(startTime)
	if writeErr != nil {
		return stats, writeErr
	}
	if err == nil {
		// Workers skip jobs once the caller cancels
		err = ctx.Err()
	}
	if err != nil {
		return stats, err
	}

	p.logger.Debug("Batch stream processing completed",
		"lines", stats.Lines,
		"parsed", stats.Parsed,
		"workers", p.workers,
		"duration", stats.Duration,
	)
	return stats, nil
}

func (p *Processor) readLines(ctx context.Context, r io.Reader, jobs chan<- lineJob) error {
	defer close(jobs)

	buffer := p.scanBuffers.Get()
	defer p.scanBuffers.Put(buffer)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(*buffer, p.scanBuffers.Size())

	chunkID, lineNo := 0, 0
	batch := p.batches.Get()
	first := 1

	send := func() error {
		if len(*batch) == 0 {
			return nil
		}
		select {
		case jobs <- lineJob{lines: batch, firstLine: first, chunkID: chunkID}:
			chunkID++
			first = lineNo + 1
			batch = p.batches.Get()
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	for scanner.Scan() {
		lineNo++
		*batch = append(*batch, strings.TrimSuffix(scanner.Text(), "\r"))
		if len(*batch) >= p.batch {
			if err := send(); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if err := send(); err != nil {
		return err
	}
	p.batches.Put(batch)
	return nil
}

func (p *Processor) worker(ctx context.Context, jobs <-chan lineJob, results chan<- jobResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for job := range jobs {
		if ctx.Err() != nil {
			p.batches.Put(job.lines)
			continue
		}
		out := make([]Result, len(*job.lines))
		for i, text := range *job.lines {
			out[i] = p.parseLine(job.firstLine+i, text)
		}
		p.batches.Put(job.lines)
		results <- jobResult{results: out, chunkID: job.chunkID}
	}
}

func (p *Processor) write(w io.Writer, results []Result, stats *Stats) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, res := range results {
		if err := p.encoder(buf, res); err != nil {
			return err
		}
		stats.Lines++
		if res.OK {
			stats.Parsed++
		}
	}
	_, err := w.Write(buf.B)
	return err
}
