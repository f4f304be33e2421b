package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"
)

// JobStatus represents the state of a batch render job.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusRendering JobStatus = "rendering"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
	StatusPartial   JobStatus = "partial"
)

// Job tracks the state of one asynchronous batch of documents.
type Job struct {
	mu sync.Mutex

	ID string `json:"job_id"`

	Status JobStatus `json:"status"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	sources []Source
	results []Result
}

// Progress tracks processing progress.
type Progress struct {
	Total    int      `json:"total"`
	Rendered int      `json:"rendered"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}

// NewJob creates a queued job for sources.
func NewJob(sources []Source) *Job {
	now := time.Now()
	return &Job{
		ID:        newJobID(),
		Status:    StatusQueued,
		Progress:  Progress{Total: len(sources)},
		CreatedAt: now,
		UpdatedAt: now,
		sources:   sources,
		results:   make([]Result, len(sources)),
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		expired := now.Sub(job.UpdatedAt) > s.ttl
		job.mu.Unlock()
		if expired {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.UpdatedAt = time.Now()
}

// Sources returns the documents the job renders.
func (j *Job) Sources() []Source {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.sources
}

// SetResult records the outcome for the i-th source.
func (j *Job) SetResult(i int, r Result) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.results[i] = r
	if r.Err != nil {
		j.Progress.Failed++
		j.Progress.Errors = append(j.Progress.Errors, fmt.Sprintf("%s: %s", r.Path, r.Err))
	} else {
		j.Progress.Rendered++
	}
	j.UpdatedAt = time.Now()
}

// Finish sets the final status from the recorded results.
func (j *Job) Finish() {
	j.mu.Lock()
	defer j.mu.Unlock()
	switch {
	case j.Progress.Failed == 0:
		j.Status = StatusCompleted
	case j.Progress.Rendered == 0:
		j.Status = StatusFailed
	default:
		j.Status = StatusPartial
	}
	j.UpdatedAt = time.Now()
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID        string         `json:"job_id"`
	Status    JobStatus      `json:"status"`
	Progress  Progress       `json:"progress"`
	Documents []ResultRecord `json:"documents,omitempty"`
}

// ResultRecord is the JSON form of a Result.
type ResultRecord struct {
	Path  string `json:"path"`
	HTML  string `json:"html,omitempty"`
	Hash  string `json:"hash,omitempty"`
	Error string `json:"error,omitempty"`
}

// Record converts r for JSON output.
func (r Result) Record() ResultRecord {
	rec := ResultRecord{Path: r.Path, HTML: r.HTML, Hash: r.Hash}
	if r.Err != nil {
		rec.Error = r.Err.Error()
	}
	return rec
}

// Snapshot returns a JSON-safe copy of the job state. Documents are only
// included once the job is done.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	snap := JobSnapshot{
		ID:     j.ID,
		Status: j.Status,
		Progress: Progress{
			Total:    j.Progress.Total,
			Rendered: j.Progress.Rendered,
			Failed:   j.Progress.Failed,
			Errors:   append([]string{}, errs...),
		},
	}
	switch j.Status {
	case StatusCompleted, StatusPartial, StatusFailed:
		snap.Documents = make([]ResultRecord, len(j.results))
		for i, r := range j.results {
			snap.Documents[i] = r.Record()
		}
	}
	return snap
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
