package pipeline

import (
	"context"
	"fmt"

	"github.com/example/rv-stats/internal/document"
	"github.com/example/rv-stats/internal/logger"
	"github.com/example/rv-stats/internal/metrics"
	"github.com/example/rv-stats/internal/parser"
	"github.com/example/rv-stats/pkg/transaction"
)

// Step represents a single step of a statistics run.
type Step interface {
	Name() string
	Execute(ctx context.Context, state *State) error
}

// State holds the shared state across all pipeline steps.
type State struct {
	RunID    string
	Path     string
	Options  Options
	Document *document.Document
	Log      *transaction.Log
	Tables   metrics.Tables
}

// ReadDocumentStep extracts the title and log lines from the HTML file.
type ReadDocumentStep struct{}

func (s *ReadDocumentStep) Name() string { return "read-document" }

func (s *ReadDocumentStep) Execute(ctx context.Context, state *State) error {
	doc, err := document.ExtractFile(state.Path, state.Options.Selector, state.Options.SkipTrailing)
	if err != nil {
		return err
	}
	state.Document = doc

	log := logger.FromContext(ctx)
	log.Info().
		Str("title", doc.Title).
		Int("lines", len(doc.Lines)).
		Msg("Found log lines")
	return nil
}

// ParseEventsStep turns every log line into a deposit or purchase.
type ParseEventsStep struct{}

func (s *ParseEventsStep) Name() string { return "parse-events" }

func (s *ParseEventsStep) Execute(ctx context.Context, state *State) error {
	if state.Document == nil {
		return fmt.Errorf("no document loaded")
	}
	events, err := parser.ParseLines(state.Document.Lines)
	if err != nil {
		return err
	}
	events.Source = state.Document.Title
	state.Log = events

	log := logger.FromContext(ctx)
	log.Debug().
		Int("purchases", len(events.Purchases())).
		Int("deposits", len(events.Deposits())).
		Msg("Parsed events")
	return nil
}

// ComputeTablesStep derives the purchase, deposit and balance tables.
type ComputeTablesStep struct{}

func (s *ComputeTablesStep) Name() string { return "compute-tables" }

func (s *ComputeTablesStep) Execute(ctx context.Context, state *State) error {
	if state.Log == nil {
		return fmt.Errorf("no events parsed")
	}
	state.Tables = metrics.ComputeLog(state.Log)
	return nil
}
