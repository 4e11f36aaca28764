package tui

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/cubehop/internal/config"
	"github.com/vovakirdan/cubehop/internal/core"
	"github.com/vovakirdan/cubehop/internal/games/hopper"
	"github.com/vovakirdan/cubehop/internal/storage"
)

func newRecorderFixture(t *testing.T) (*Recorder, *storage.Store, *hopper.Game) {
	t.Helper()
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	game := hopper.New(config.DefaultHopperConfig(), nil)
	game.Reset(core.RuntimeConfig{Seed: 1})

	return NewRecorder(store, nil), store, game
}

func outcome(kind core.OutcomeKind, tick uint64, score int) core.Outcome {
	return core.Outcome{Kind: kind, Tick: tick, Score: score}
}

func TestRecorderHitEndsRun(t *testing.T) {
	r, store, game := newRecorderFixture(t)
	r.Begin()
	first := r.RunID()
	if first == "" {
		t.Fatal("Begin should open a journal run")
	}

	r.Observe(core.StepResult{Outcomes: []core.Outcome{
		outcome(core.OutcomeLanding, 10, 1),
		outcome(core.OutcomeLanding, 40, 2),
	}}, game)
	r.Observe(core.StepResult{Outcomes: []core.Outcome{
		outcome(core.OutcomeHit, 90, 0),
	}}, game)

	if r.Best() != 2 {
		t.Errorf("Best = %d, expected 2", r.Best())
	}
	if r.RunID() == "" || r.RunID() == first {
		t.Error("a hit should open a new run")
	}

	run, err := store.RunByID(first)
	if err != nil {
		t.Fatalf("RunByID error = %v", err)
	}
	if run.Score != 2 || run.EndReason != storage.EndReasonHit || run.Outcomes != 3 {
		t.Errorf("run = %+v, expected score 2, reason hit, 3 outcomes", run)
	}
	if run.Digest != game.Snapshot().Digest() {
		t.Errorf("Digest = %x, expected %x", run.Digest, game.Snapshot().Digest())
	}
}

func TestRecorderCloseEndsAsQuit(t *testing.T) {
	r, store, game := newRecorderFixture(t)
	r.Begin()
	id := r.RunID()

	r.Observe(core.StepResult{Outcomes: []core.Outcome{outcome(core.OutcomeLanding, 5, 1)}}, game)
	r.Sync(game)
	r.Close(storage.EndReasonQuit)

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID error = %v", err)
	}
	if run.EndReason != storage.EndReasonQuit || run.Score != 1 {
		t.Errorf("run = %+v, expected score 1, reason quit", run)
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	game := hopper.New(config.DefaultHopperConfig(), nil)
	r := NewRecorder(nil, nil)
	r.Begin()

	r.Observe(core.StepResult{Outcomes: []core.Outcome{
		outcome(core.OutcomeLanding, 1, 1),
		outcome(core.OutcomeHit, 2, 0),
		outcome(core.OutcomeLanding, 3, 1),
	}}, game)

	if r.Best() != 1 {
		t.Errorf("Best = %d, expected 1", r.Best())
	}
	if r.RunID() != "" {
		t.Error("RunID should stay empty without a journal")
	}
}

func TestRecorderCloseOnDisconnect(t *testing.T) {
	r, store, game := newRecorderFixture(t)
	r.Begin()
	id := r.RunID()

	r.Observe(core.StepResult{Outcomes: []core.Outcome{outcome(core.OutcomeLanding, 5, 3)}}, game)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		closeOnDisconnect(ctx, r)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("closeOnDisconnect did not return after the context ended")
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID error = %v", err)
	}
	if run.Open() || run.EndReason != storage.EndReasonDisconnect || run.Score != 3 {
		t.Errorf("run = %+v, expected score 3, reason disconnect", run)
	}
	if run.Digest != game.Snapshot().Digest() {
		t.Errorf("Digest = %x, expected %x", run.Digest, game.Snapshot().Digest())
	}
}

func TestRecorderCloseOnce(t *testing.T) {
	r, store, game := newRecorderFixture(t)
	r.Begin()
	id := r.RunID()

	r.Close(storage.EndReasonQuit)
	r.Close(storage.EndReasonDisconnect)

	// Steps after close are ignored, a hit must not open a new run
	r.Observe(core.StepResult{Outcomes: []core.Outcome{outcome(core.OutcomeHit, 9, 0)}}, game)
	r.Begin()

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID error = %v", err)
	}
	if run.EndReason != storage.EndReasonQuit {
		t.Errorf("EndReason = %q, expected %q", run.EndReason, storage.EndReasonQuit)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns error = %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("len(runs) = %d, expected 1", len(runs))
	}
}
