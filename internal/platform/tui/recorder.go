package tui

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cubehop/internal/core"
	"github.com/vovakirdan/cubehop/internal/games/hopper"
	"github.com/vovakirdan/cubehop/internal/logging"
	"github.com/vovakirdan/cubehop/internal/storage"
)

// Recorder follows runs through step outcomes and writes them to the journal.
// A run lasts from a reset to the next hit. Journal writes are best-effort:
// failures are logged and play continues. A nil store keeps only the best score.
//
// Close may be called from another goroutine (an SSH session ending), so
// every method takes the lock.
type Recorder struct {
	mu     sync.Mutex
	store  *storage.Store
	logger *log.Logger
	runID  string
	score  int    // Score of the open run
	best   int    // Best finished run in this process
	digest uint64 // Game digest after the last observed step
	closed bool
}

// NewRecorder creates a recorder. store may be nil.
func NewRecorder(store *storage.Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Recorder{store: store, logger: logger}
}

// Begin opens a new run.
func (r *Recorder) Begin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.begin()
}

func (r *Recorder) begin() {
	r.score = 0
	r.runID = ""
	if r.store == nil || r.closed {
		return
	}

	id, err := r.store.StartRun()
	if err != nil {
		r.logger.Warn("journal: cannot start run", "error", err)
		return
	}
	r.runID = id
	r.logger.Debug("run started", "run", id)
}

// Observe records the outcomes of one step. A hit closes the current run
// with the game's digest and opens the next one. Nothing is recorded after Close.
func (r *Recorder) Observe(res core.StepResult, game *hopper.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	for _, o := range res.Outcomes {
		r.logger.Debug("outcome",
			"kind", o.Kind,
			"tick", o.Tick,
			"score", o.Score,
			"obstacle_x", o.Obstacle.X,
			"obstacle_y", o.Obstacle.Y,
		)

		if r.runID != "" {
			if err := r.store.RecordOutcome(r.runID, o); err != nil {
				r.logger.Warn("journal: cannot record outcome", "error", err)
			}
		}

		switch o.Kind {
		case core.OutcomeLanding:
			r.score = o.Score
		case core.OutcomeHit:
			r.finish(storage.EndReasonHit, game.Snapshot().Digest())
			r.begin()
		}
	}

	r.digest = game.Snapshot().Digest()
}

// Sync refreshes the digest used when the run is closed.
// It must run on the goroutine that drives the game.
func (r *Recorder) Sync(game *hopper.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.digest = game.Snapshot().Digest()
}

// Close ends the open run with the given reason and the last synced digest.
// Only the first call has an effect.
func (r *Recorder) Close(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.finish(reason, r.digest)
}

func (r *Recorder) finish(reason string, digest uint64) {
	if r.score > r.best {
		r.best = r.score
	}
	r.logger.Info("run ended", "run", r.runID, "score", r.score, "reason", reason)

	if r.runID == "" {
		return
	}
	if err := r.store.EndRun(r.runID, r.score, reason, digest); err != nil {
		r.logger.Warn("journal: cannot end run", "error", err)
	}
	r.runID = ""
}

// Best returns the highest finished run score seen by this recorder.
func (r *Recorder) Best() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.best
}

// RunID returns the open run's journal ID, empty without a journal.
func (r *Recorder) RunID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runID
}
