package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (empty = environment only)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := createLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting word2num HTTP server",
		"address", cfg.Address,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"concurrency", cfg.Concurrency,
		"language", cfg.Language,
		"fuzzy_threshold", cfg.FuzzyThreshold,
	)

	srv := newServer(cfg, logger)
	if _, err := srv.converter(cfg.Language, cfg.FuzzyThreshold); err != nil {
		logger.Error("Failed to initialize default converter", "error", err)
		os.Exit(1)
	}
	logger.Info("Default converter initialized",
		"warm_up", cfg.WarmUp,
		"cpus", runtime.NumCPU(),
	)

	server := &fasthttp.Server{
		Handler:               srv.handle,
		Name:                  "Word2NumServer",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		MaxRequestBodySize:    cfg.MaxRequestSize,
		Concurrency:           cfg.Concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	logger.Info("Server listening", "address", cfg.Address)
	if err := server.ListenAndServe(cfg.Address); err != nil {
		logger.Error("Server error", "error", err)
		return
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// createLogger creates a JSON logger writing to logFile, or to stdout
// when logFile is empty.
func createLogger(logFile string) (l.Logger, error) {
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
