package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_word2num/internal/ports"
)

// WarmupConfig defines configuration for warming up parsers
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of passes over the sample phrases per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  100,
		Duration:    2 * time.Second,
		ForceGC:     true,
	}
}

type registeredParser struct {
	parser  ports.NumberParser
	samples []string
}

// Manager handles parser warmup operations
type Manager struct {
	logger     ports.Logger
	parsers    []registeredParser
	tokenizers []ports.Tokenizer
	config     WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterParser adds a parser to be warmed up with the given phrases.
// Misspelled variants of each phrase are generated so fuzzy paths run too.
func (wm *Manager) RegisterParser(parser ports.NumberParser, samples []string) {
	phrases := make([]string, 0, 2*len(samples))
	for _, s := range samples {
		phrases = append(phrases, s, misspell(s))
	}
	wm.parsers = append(wm.parsers, registeredParser{parser: parser, samples: phrases})
}

// RegisterTokenizer adds a tokenizer to be warmed up
func (wm *Manager) RegisterTokenizer(tokenizer ports.Tokenizer) {
	wm.tokenizers = append(wm.tokenizers, tokenizer)
}

// WarmUp runs the warmup process for all registered components and
// returns the number of phrases parsed.
func (wm *Manager) WarmUp(ctx context.Context) int {
	startTime := time.Now()
	wm.logger.Info("Starting parser warmup",
		"components", len(wm.parsers)+len(wm.tokenizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	wm.warmUpTokenizers(warmupCtx)
	parsed := wm.warmUpParsers(warmupCtx)

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("Parser warmup completed",
		"phrases", parsed,
		"duration", time.Since(startTime),
	)
	return parsed
}

// warmUpTokenizers runs warmup for all registered tokenizers
func (wm *Manager) warmUpTokenizers(ctx context.Context) {
	if len(wm.tokenizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up tokenizers", "count", len(wm.tokenizers))

	var samples []string
	for _, p := range wm.parsers {
		samples = append(samples, p.samples...)
	}
	if len(samples) == 0 {
		samples = []string{"Twenty-three, point five!"}
	}

	wm.run(ctx, func() int {
		for _, tokenizer := range wm.tokenizers {
			for _, s := range samples {
				_ = tokenizer.Tokenize(s)
			}
		}
		return 0
	})
}

// warmUpParsers runs warmup for all registered parsers
func (wm *Manager) warmUpParsers(ctx context.Context) int {
	if len(wm.parsers) == 0 {
		return 0
	}

	wm.logger.Debug("Warming up parsers", "count", len(wm.parsers))

	return wm.run(ctx, func() int {
		n := 0
		for _, p := range wm.parsers {
			for _, s := range p.samples {
				_, _ = p.parser.Parse(s)
				n++
			}
		}
		return n
	})
}

// run executes pass Iterations times on each of Concurrency goroutines,
// stopping early when ctx is done.
func (wm *Manager) run(ctx context.Context, pass func() int) int {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int
	)
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			n := 0
		loop:
			for j := 0; j < wm.config.Iterations; j++ {
				// Check for context cancellation
				select {
				case <-ctx.Done():
					break loop
				default:
				}
				n += pass()
			}

			mu.Lock()
			total += n
			mu.Unlock()
		}()
	}

	wg.Wait()
	return total
}

// misspell doubles the last letter of every word longer than two letters,
// turning "five hundred" into "fivee hundredd".
func misspell(phrase string) string {
	words := strings.Fields(phrase)
	for i, w := range words {
		r := []rune(w)
		if len(r) > 2 {
			words[i] = w + string(r[len(r)-1])
		}
	}
	return strings.Join(words, " ")
}
