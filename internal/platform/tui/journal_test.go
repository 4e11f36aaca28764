package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cubehop/internal/core"
	"github.com/vovakirdan/cubehop/internal/storage"
)

func TestRunRows(t *testing.T) {
	runs := []storage.Run{
		{ID: "0123456789abcdef", Score: 4, EndReason: storage.EndReasonHit, Outcomes: 5},
		{ID: "short", Score: 0},
	}

	rows := RunRows(runs)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, expected 2", len(rows))
	}
	if rows[0][0] != "1" || rows[0][2] != "4" || rows[0][3] != "5" || rows[0][4] != "hit" || rows[0][5] != "01234567" {
		t.Errorf("rows[0] = %v", rows[0])
	}
	if rows[1][4] != "-" || rows[1][5] != "short" {
		t.Errorf("open run row = %v, expected end '-' and full short id", rows[1])
	}
}

func TestJournalModelSortToggle(t *testing.T) {
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	defer store.Close()

	for _, score := range []int{2, 7} {
		id, err := store.StartRun()
		if err != nil {
			t.Fatalf("StartRun error = %v", err)
		}
		if err := store.RecordOutcome(id, core.Outcome{Kind: core.OutcomeLanding, Tick: 3, Score: score}); err != nil {
			t.Fatalf("RecordOutcome error = %v", err)
		}
		if err := store.EndRun(id, score, storage.EndReasonHit, 0); err != nil {
			t.Fatalf("EndRun error = %v", err)
		}
	}

	m := NewJournalModel(store, 10, 120, 30)
	if len(m.runs) != 2 {
		t.Fatalf("len(runs) = %d, expected 2", len(m.runs))
	}
	if len(m.outcomes) != 1 {
		t.Errorf("selected run outcomes = %d, expected 1", len(m.outcomes))
	}

	next, _ := m.Update(runeKey('s'))
	m = next.(JournalModel)
	if !m.top || m.runs[0].Score != 7 {
		t.Errorf("top view first score = %d, expected 7", m.runs[0].Score)
	}
	if !strings.Contains(m.View(), "top scores") {
		t.Error("title should name the top scores view")
	}
}

func TestJournalModelEmpty(t *testing.T) {
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("Open error = %v", err)
	}
	defer store.Close()

	m := NewJournalModel(store, 10, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty journal should say so")
	}
}
