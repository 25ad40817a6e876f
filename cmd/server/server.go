package main

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	word2num "github.com/baditaflorin/go_word2num"
	"github.com/baditaflorin/go_word2num/internal/adapters/batch"
	"github.com/baditaflorin/go_word2num/internal/adapters/logger"
)

// ParseRequest is the body of POST /parse.
type ParseRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
	// FuzzyThreshold overrides the configured threshold when set.
	FuzzyThreshold *int `json:"fuzzy_threshold,omitempty"`
}

// BatchRequest is the body of POST /batch.
type BatchRequest struct {
	Texts          []string `json:"texts"`
	Language       string   `json:"language,omitempty"`
	FuzzyThreshold *int     `json:"fuzzy_threshold,omitempty"`
}

// ParseResponse is the outcome of one phrase. Value is null when the
// phrase did not parse.
type ParseResponse struct {
	Text           string   `json:"text"`
	Value          *float64 `json:"value"`
	OK             bool     `json:"ok"`
	Language       string   `json:"language"`
	FuzzyThreshold int      `json:"fuzzy_threshold"`
}

// BatchResponse holds one result per input text, in input order.
type BatchResponse struct {
	Results        []ParseResponse `json:"results"`
	Parsed         int             `json:"parsed"`
	ProcessingTime string          `json:"processing_time"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type converterKey struct {
	language  string
	threshold int
}

type converterEntry struct {
	converter *word2num.Word2Num
	processor *batch.Processor
}

type server struct {
	config Config
	logger l.Logger

	mu         sync.RWMutex
	converters map[converterKey]converterEntry
}

func newServer(config Config, logger l.Logger) *server {
	return &server{
		config:     config,
		logger:     logger,
		converters: make(map[converterKey]converterEntry),
	}
}

// converter returns the shared converter for a language and threshold,
// building it on first use.
func (s *server) converter(language string, threshold int) (converterEntry, error) {
	key := converterKey{language: language, threshold: threshold}

	s.mu.RLock()
	entry, ok := s.converters[key]
	s.mu.RUnlock()
	if ok {
		return entry, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.converters[key]; ok {
		return entry, nil
	}

	w, err := word2num.New(language,
		word2num.WithFuzzyThreshold(threshold),
		word2num.WithLogger(s.logger),
		word2num.WithMatchCache(s.config.MatchCacheSize),
		word2num.WithWarmUp(s.config.WarmUp),
	)
	if err != nil {
		return converterEntry{}, err
	}
	processor, err := batch.NewProcessor(w, logger.FromExisting(s.logger), batch.ProcessingConfig{
		Workers: s.config.Workers,
	})
	if err != nil {
		return converterEntry{}, err
	}

	entry = converterEntry{converter: w, processor: processor}
	s.converters[key] = entry
	s.logger.Info("Converter created", "language", language, "fuzzy_threshold", threshold)
	return entry, nil
}

// resolve applies the configured defaults to a request's language and
// threshold.
func (s *server) resolve(language string, threshold *int) (converterEntry, error) {
	if language == "" {
		language = s.config.Language
	}
	t := s.config.FuzzyThreshold
	if threshold != nil {
		t = *threshold
	}
	return s.converter(language, t)
}

// handle is the main fasthttp request handler
func (s *server) handle(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/languages":
		s.handleLanguages(ctx)
	case "/parse":
		s.handleParse(ctx)
	case "/batch":
		s.handleBatch(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeJSONError(ctx, "Not found")
	}

	s.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func (s *server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *server) handleLanguages(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, map[string]interface{}{
		"languages": word2num.SupportedLanguages(),
		"default":   s.config.Language,
	})
}

func (s *server) handleParse(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req ParseRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	entry, ok := s.resolveOrFail(ctx, req.Language, req.FuzzyThreshold)
	if !ok {
		return
	}

	value, parsed := entry.converter.Parse(req.Text)
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, newParseResponse(entry.converter, req.Text, value, parsed))
}

func (s *server) handleBatch(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req BatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}
	if len(req.Texts) > s.config.MaxBatchSize {
		ctx.SetStatusCode(fasthttp.StatusRequestEntityTooLarge)
		s.writeJSONError(ctx, "Too many texts: limit is "+strconv.Itoa(s.config.MaxBatchSize))
		return
	}

	entry, ok := s.resolveOrFail(ctx, req.Language, req.FuzzyThreshold)
	if !ok {
		return
	}

	startTime := time.Now()
	c, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	results, err := entry.processor.ParseAll(c, req.Texts)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
		s.writeJSONError(ctx, "Batch aborted: "+err.Error())
		return
	}

	response := BatchResponse{Results: make([]ParseResponse, len(results))}
	for i, res := range results {
		response.Results[i] = newParseResponse(entry.converter, res.Text, res.Value, res.OK)
		if res.OK {
			response.Parsed++
		}
	}
	response.ProcessingTime = time.Since(startTime).String()

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, response)
}

// resolveOrFail writes a 400 response when the language or threshold is
// rejected.
func (s *server) resolveOrFail(ctx *fasthttp.RequestCtx, language string, threshold *int) (converterEntry, bool) {
	entry, err := s.resolve(language, threshold)
	if err == nil {
		return entry, true
	}
	if errors.Is(err, word2num.ErrUnsupportedLanguage) || errors.Is(err, word2num.ErrInvalidThreshold) {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, err.Error())
		return converterEntry{}, false
	}
	s.logger.Error("Failed to create converter", "error", err)
	ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	s.writeJSONError(ctx, "Internal server error")
	return converterEntry{}, false
}

func newParseResponse(w *word2num.Word2Num, text string, value float64, ok bool) ParseResponse {
	resp := ParseResponse{
		Text:           text,
		OK:             ok,
		Language:       w.Language(),
		FuzzyThreshold: w.FuzzyThreshold(),
	}
	if ok {
		resp.Value = &value
	}
	return resp
}

// writeJSONResponse writes a JSON response to the context
func (s *server) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeJSONError(ctx, "Internal server error")
		return
	}
	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (s *server) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		s.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(response)
}
