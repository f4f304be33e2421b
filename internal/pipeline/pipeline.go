package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/dgallion1/calloutmd/internal/mdtree"
	"github.com/dgallion1/calloutmd/internal/restore"
)

// Stage is one tree-rewriting step. A stage claims a directive by giving it
// a render hint; it must never alter a node another stage already claimed.
type Stage interface {
	Name() string
	Transform(doc *mdtree.Document) error
}

// StageError reports the stage that aborted a document.
type StageError struct {
	Stage string
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("stage %s: %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Pipeline runs an ordered list of stages over one document at a time:
// the core stages, then injected stages in the order given, then directive
// restoration. Restoration always runs last so every other stage gets a
// chance to claim directive syntax first.
type Pipeline struct {
	stages []Stage
	log    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithStages injects stages that run after the core stages and before
// restoration.
func WithStages(stages ...Stage) Option {
	return func(p *Pipeline) {
		p.stages = append(p.stages, stages...)
	}
}

// WithLogger sets the logger used for stage diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		p.log = log
	}
}

func New(core []Stage, opts ...Option) *Pipeline {
	p := &Pipeline{
		stages: append([]Stage(nil), core...),
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.stages = append(p.stages, restore.Stage{Logger: p.log})
	return p
}

// Stages returns the stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// Process runs every stage over a copy of doc.Tree and returns the result.
// The caller's tree is never modified. When a stage fails no tree is
// returned; the failure only concerns this document.
func (p *Pipeline) Process(doc mdtree.Document) (*mdtree.Node, error) {
	work := &mdtree.Document{Path: doc.Path, Tree: doc.Tree.Clone()}
	if work.Tree == nil {
		work.Tree = &mdtree.Node{Kind: mdtree.KindRoot}
	}
	log := p.log.With("path", doc.Path)
	for _, s := range p.stages {
		if err := s.Transform(work); err != nil {
			log.Warn("stage failed", "stage", s.Name(), "error", err)
			return nil, &StageError{Stage: s.Name(), Path: doc.Path, Err: err}
		}
	}
	return work.Tree, nil
}
