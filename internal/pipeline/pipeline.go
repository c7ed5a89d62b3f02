package pipeline

import (
	"context"
	"fmt"

	"github.com/example/rv-stats/internal/config"
	"github.com/example/rv-stats/internal/logger"
	"github.com/example/rv-stats/internal/metrics"
	"github.com/google/uuid"
)

// Options controls how a document is read.
type Options struct {
	Selector     string
	SkipTrailing int
}

// OptionsFromConfig copies the document settings out of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Selector:     cfg.Document.Selector,
		SkipTrailing: cfg.Document.SkipTrailing,
	}
}

// Pipeline executes a sequence of steps in order.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a new pipeline with the given steps.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// NewStatsPipeline creates the standard read, parse and compute pipeline.
func NewStatsPipeline() *Pipeline {
	return NewPipeline(
		&ReadDocumentStep{},
		&ParseEventsStep{},
		&ComputeTablesStep{},
	)
}

// Execute runs all steps sequentially, stopping at the first failure.
func (p *Pipeline) Execute(ctx context.Context, state *State) error {
	for i, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step.Execute(ctx, state); err != nil {
			return fmt.Errorf("pipeline step %d (%s) failed: %w", i+1, step.Name(), err)
		}
	}
	return nil
}

// Result is the output of a successful run.
type Result struct {
	RunID  string
	Title  string
	Tables metrics.Tables
}

// Run reads the document at path and computes its tables. Nothing is
// returned on failure, so callers never see partial tables.
func Run(ctx context.Context, path string, opts Options) (*Result, error) {
	state := &State{
		RunID:   uuid.NewString(),
		Path:    path,
		Options: opts,
	}

	log := logger.WithFields(logger.FromContext(ctx), map[string]interface{}{
		"run_id": state.RunID,
		"path":   path,
	})
	ctx = logger.WithContext(ctx, log)

	log.Info().Msg("Starting run")
	if err := NewStatsPipeline().Execute(ctx, state); err != nil {
		log.Error().Err(err).Msg("Run failed")
		return nil, err
	}
	log.Info().
		Int("purchases", len(state.Tables.Purchases)).
		Int("deposits", len(state.Tables.Deposits)).
		Msg("Run completed")

	return &Result{
		RunID:  state.RunID,
		Title:  state.Document.Title,
		Tables: state.Tables,
	}, nil
}
