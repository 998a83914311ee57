package matching

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrIndexNotReady is returned when a query arrives before any corpus
// snapshot could be loaded. The condition clears once a build succeeds.
var ErrIndexNotReady = errors.New("matching index not ready")

// LoaderFunc supplies a fresh snapshot of the active knowledge corpus.
type LoaderFunc func(ctx context.Context) (Corpus, error)

// Result is the outcome of one similarity query. Answer is empty when
// Escalate is set; the caller supplies its own handoff message.
type Result struct {
	Answer     string
	Question   string
	Similarity float64
	Matched    bool
	Escalate   bool
}

// Engine answers similarity queries against the currently installed Index
// and rebuilds it on demand. The index reference is the only shared
// mutable state: readers copy it under RLock, Rebuild installs a fully
// built replacement while holding the write lock only for the swap.
type Engine struct {
	opts   Options
	loader LoaderFunc

	mu      sync.RWMutex
	current *Index

	initMu sync.Mutex
}

func NewEngine(loader LoaderFunc, opts Options) *Engine {
	if opts.NgramMin < 1 {
		opts.NgramMin = 1
	}
	if opts.NgramMax < opts.NgramMin {
		opts.NgramMax = opts.NgramMin
	}
	if opts.Stopwords == nil {
		opts.Stopwords = DefaultStopwords()
	}
	return &Engine{opts: opts, loader: loader}
}

// Ready reports whether an index has been installed.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current != nil
}

// EnsureReady performs the lazy first build. Concurrent first callers
// serialize on initMu so exactly one build runs; waiters observe the
// installed index and return without duplicating work. A failed first
// build is retryable on the next call.
func (e *Engine) EnsureReady(ctx context.Context) error {
	if e.Ready() {
		return nil
	}
	e.initMu.Lock()
	defer e.initMu.Unlock()
	if e.Ready() {
		return nil
	}
	if err := e.Rebuild(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrIndexNotReady, err)
	}
	return nil
}

// Rebuild loads a fresh corpus snapshot, builds a new Index off to the
// side and atomically installs it. On any error the previously installed
// index keeps serving.
func (e *Engine) Rebuild(ctx context.Context) error {
	corpus, err := e.loader(ctx)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	if len(corpus.Documents) == 0 {
		corpus = FallbackCorpus()
	}
	ix := BuildIndex(corpus, e.opts)

	e.mu.Lock()
	e.current = ix
	e.mu.Unlock()
	return nil
}

// Query scores text against the current index. Below-threshold maxima and
// empty indexes escalate; the similarity reported is always in [0,1].
func (e *Engine) Query(ctx context.Context, text string) (Result, error) {
	if err := e.EnsureReady(ctx); err != nil {
		return Result{Escalate: true}, err
	}

	e.mu.RLock()
	ix := e.current
	e.mu.RUnlock()

	idx, score := ix.BestMatch(text)
	if idx < 0 {
		return Result{Escalate: true}, nil
	}
	if score >= e.opts.Threshold {
		return Result{
			Answer:     ix.Answer(idx),
			Question:   ix.Question(idx),
			Similarity: score,
			Matched:    true,
		}, nil
	}
	return Result{Similarity: score, Escalate: true}, nil
}
