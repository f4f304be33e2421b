package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/dgallion1/calloutmd/internal/parser"
	"github.com/dgallion1/calloutmd/internal/render"
)

// Source is one Markdown document to render. Path may be empty for content
// with no backing file.
type Source struct {
	Path     string `json:"path"`
	Markdown string `json:"markdown"`
}

// Result is the outcome of rendering one Source. Err is set instead of HTML
// when any step failed.
type Result struct {
	Path string
	HTML string
	Hash string
	Err  error
}

// Worker renders documents: parse, run the stages, serialize.
type Worker struct {
	pipeline *Pipeline
	log      *slog.Logger
	stats    *RenderStats

	maxConcurrentRender int
}

func NewWorker(p *Pipeline, log *slog.Logger, maxRender int) *Worker {
	if maxRender <= 0 {
		maxRender = 1
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Worker{pipeline: p, log: log, stats: NewRenderStats(time.Hour), maxConcurrentRender: maxRender}
}

// Stats returns the latencies of recent renders.
func (w *Worker) Stats() *RenderStats {
	return w.stats
}

// Render renders a single document.
func (w *Worker) Render(ctx context.Context, src Source) Result {
	res := Result{Path: src.Path, Hash: ContentHashHex([]byte(src.Markdown))}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	start := time.Now()
	defer func() { w.stats.Record(time.Since(start), res.Err != nil) }()

	doc := parser.Parse([]byte(src.Markdown), src.Path)
	tree, err := w.pipeline.Process(*doc)
	if err != nil {
		res.Err = err
		return res
	}
	res.HTML, res.Err = render.HTML(tree)
	return res
}

// RenderAll renders every source with bounded concurrency. Results keep
// the order of sources; a failing document never affects the others.
func (w *Worker) RenderAll(ctx context.Context, sources []Source) []Result {
	results := make([]Result, len(sources))
	w.each(ctx, sources, func(i int, r Result) { results[i] = r })
	return results
}

// Process renders every source of job and records progress on it.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID)
	job.SetStatus(StatusRendering)
	sources := job.Sources()
	log.Info("rendering batch", "documents", len(sources))

	w.each(ctx, sources, func(i int, r Result) {
		if r.Err != nil {
			log.Warn("document failed", "path", r.Path, "error", r.Err)
		}
		job.SetResult(i, r)
	})
	job.Finish()
	snap := job.Snapshot()
	log.Info("batch complete", "status", snap.Status, "rendered", snap.Progress.Rendered, "failed", snap.Progress.Failed)
}

func (w *Worker) each(ctx context.Context, sources []Source, done func(int, Result)) {
	type indexed struct {
		idx int
		res Result
	}
	results := make(chan indexed, len(sources))
	sem := make(chan struct{}, w.maxConcurrentRender)

	for i, src := range sources {
		sem <- struct{}{}
		go func(i int, src Source) {
			defer func() { <-sem }()
			results <- indexed{idx: i, res: w.Render(ctx, src)}
		}(i, src)
	}
	for range sources {
		r := <-results
		done(r.idx, r.res)
	}
}
