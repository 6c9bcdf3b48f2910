/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sniffer.go
Description: Detection orchestrator for the Tablesniff detector. Drives the
candidate generator, parser, and consistency scorer across the full candidate
space, selects the best-scoring dialect with the documented tie-break, and
reports a typed failure when no dialect yields a non-degenerate table.
Supports optional parallel candidate evaluation across workers.
*/

package sniffer

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kleascm/tablesniff/pkg/dialect"
	"github.com/kleascm/tablesniff/pkg/parser"
	"github.com/kleascm/tablesniff/pkg/score"
	"github.com/kleascm/tablesniff/pkg/typing"
)

// NoDetectionError reports that no candidate dialect scored above the
// degenerate threshold. Library callers branch on this type; the CLI maps it
// to exit code 1.
type NoDetectionError struct {
	Reason string
}

// Error implements the error interface.
func (e *NoDetectionError) Error() string {
	return "no dialect detected: " + e.Reason
}

// DetectionResult is the winning dialect plus its score, produced once per
// Sniff invocation and owned by the caller.
type DetectionResult struct {
	// ID correlates this detection run across log lines and reports.
	ID string

	Dialect dialect.Dialect
	Score   score.Result

	// Candidates is the number of dialects evaluated.
	Candidates int
	Elapsed    time.Duration
}

// Config holds the sniffer configuration.
type Config struct {
	// Workers is the number of parallel evaluation goroutines. Zero or one
	// evaluates candidates serially. Parallel evaluation is bit-identical
	// to serial: results are collected per candidate index and reduced
	// sequentially.
	Workers int

	// MaxCandidates bounds the candidate set as a wall-clock budget knob.
	// Zero means no bound. In-flight parses are never interrupted.
	// Truncation keeps the head of the deterministic enumeration order, so
	// common delimiters (comma, semicolon, tab, pipe) survive the cut before
	// exotic delimiters observed in the text.
	MaxCandidates int

	Logger *logrus.Logger
}

// Sniffer detects the dialect of raw delimited text.
type Sniffer struct {
	workers       int
	maxCandidates int
	logger        *logrus.Logger
	registry      *typing.Registry
}

// New creates a Sniffer. A nil config uses serial evaluation, an unbounded
// candidate set, and the standard logger.
func New(config *Config) *Sniffer {
	s := &Sniffer{
		workers:  1,
		registry: typing.Default(),
		logger:   logrus.StandardLogger(),
	}
	if config == nil {
		return s
	}
	if config.Workers > 1 {
		s.workers = config.Workers
	}
	if config.MaxCandidates > 0 {
		s.maxCandidates = config.MaxCandidates
	}
	if config.Logger != nil {
		s.logger = config.Logger
	}
	return s
}

// Sniff is shorthand for New(nil).Sniff.
func Sniff(text string) (*DetectionResult, error) {
	return New(nil).Sniff(text)
}

// Sniff detects the dialect of text. All candidates are evaluated
// exhaustively; correctness matters more than latency for this workload, so
// there is no early termination. Detection is deterministic: identical input
// always yields the identical winning dialect.
func (s *Sniffer) Sniff(text string) (*DetectionResult, error) {
	start := time.Now()

	if strings.TrimSpace(text) == "" {
		return nil, &NoDetectionError{Reason: "input text is empty"}
	}

	candidates := dialect.Candidates(text)
	if s.maxCandidates > 0 && len(candidates) > s.maxCandidates {
		candidates = candidates[:s.maxCandidates]
	}
	if len(candidates) == 0 {
		return nil, &NoDetectionError{Reason: "no candidate delimiters in input"}
	}

	s.logger.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"text_bytes": len(text),
		"workers":    s.workers,
	}).Debug("Evaluating candidate dialects")

	results := s.evaluate(text, candidates)

	// Sequential max-reduction keeps the tie-break deterministic regardless
	// of how evaluation was scheduled.
	bestIdx := 0
	for i := 1; i < len(candidates); i++ {
		if score.Better(results[i], candidates[i], results[bestIdx], candidates[bestIdx]) {
			bestIdx = i
		}
	}

	best := results[bestIdx]
	if best.Degenerate || best.Combined <= score.DegenerateThreshold {
		return nil, &NoDetectionError{Reason: "every candidate dialect scored degenerate"}
	}

	result := &DetectionResult{
		ID:         uuid.New().String(),
		Dialect:    candidates[bestIdx],
		Score:      best,
		Candidates: len(candidates),
		Elapsed:    time.Since(start),
	}

	s.logger.WithFields(logrus.Fields{
		"detection_id": result.ID,
		"dialect":      result.Dialect.String(),
		"pattern":      best.PatternScore,
		"type":         best.TypeScore,
		"combined":     best.Combined,
		"duration":     result.Elapsed,
	}).Info("Dialect detected")

	return result, nil
}

// evaluate scores every candidate. Each evaluation is a pure computation
// over immutable inputs, so workers share nothing but the results slice,
// written at disjoint indices.
func (s *Sniffer) evaluate(text string, candidates []dialect.Dialect) []score.Result {
	results := make([]score.Result, len(candidates))

	if s.workers <= 1 || len(candidates) == 1 {
		for i, cand := range candidates {
			results[i] = score.Score(parser.Parse(text, cand), s.registry)
		}
		return results
	}

	var wg sync.WaitGroup
	indexes := make(chan int)
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = score.Score(parser.Parse(text, candidates[i]), s.registry)
			}
		}()
	}
	for i := range candidates {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}
