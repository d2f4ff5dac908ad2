package database

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
)

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func startSyncer(t *testing.T, store Bridge) (*board.Board, *Syncer) {
	t.Helper()
	bus := events.NewBus()
	b := board.New(models.Snapshot{}, board.WithPublisher(bus))
	syncer := NewSyncer(store, b)
	syncer.baseDelay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	changes := bus.Subscribe(ctx)
	done := make(chan struct{})
	go func() {
		syncer.Run(ctx, changes)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
		bus.Close()
	})
	return b, syncer
}

func TestSyncer_SavesAfterBoardChanges(t *testing.T) {
	store := NewMemoryStore(models.Snapshot{})
	b, _ := startSyncer(t, store)

	col := b.CreateColumn()
	if _, err := b.CreateTask(col.ID); err != nil {
		t.Fatalf("CreateTask() failed: %v", err)
	}

	waitFor(t, func() bool {
		snap, _ := store.Load(context.Background())
		return reflect.DeepEqual(snap, b.Snapshot())
	})
}

func TestSyncer_CascadeDeleteIsPersisted(t *testing.T) {
	store := NewMemoryStore(models.Snapshot{})
	b, _ := startSyncer(t, store)

	col := b.CreateColumn()
	keep := b.CreateColumn()
	b.CreateTask(col.ID)
	b.CreateTask(keep.ID)
	b.DeleteColumn(col.ID)

	waitFor(t, func() bool {
		snap, _ := store.Load(context.Background())
		return len(snap.Columns) == 1 && len(snap.Tasks) == 1 && snap.Tasks[0].ColumnID == keep.ID
	})
}

func TestSyncer_RetriesFailedSaves(t *testing.T) {
	store := NewMemoryStore(models.Snapshot{})
	store.SetSaveErr(errors.New("busy"))
	syncer := NewSyncer(store, board.New(models.Snapshot{}))
	syncer.baseDelay = time.Millisecond

	err := syncer.withRetry(context.Background(), "tasks", func() error {
		return store.SaveTasks(context.Background(), nil)
	})

	if err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if store.Saves() != 3 {
		t.Errorf("Expected 3 attempts, got %d", store.Saves())
	}
}

func TestSyncer_RetrySucceedsAfterTransientFailure(t *testing.T) {
	syncer := NewSyncer(NewMemoryStore(models.Snapshot{}), board.New(models.Snapshot{}))
	syncer.baseDelay = time.Millisecond

	attempts := 0
	err := syncer.withRetry(context.Background(), "columns", func() error {
		attempts++
		if attempts < 2 {
			return errors.New("transient")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if attempts != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts)
	}
}

func TestSyncer_Flush(t *testing.T) {
	store := NewMemoryStore(models.Snapshot{})
	b := board.New(models.Snapshot{})
	syncer := NewSyncer(store, b)

	if err := b.Replace(sampleSnapshot()); err != nil {
		t.Fatalf("Replace() failed: %v", err)
	}
	if err := syncer.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	snap, _ := store.Load(context.Background())
	if !reflect.DeepEqual(snap, sampleSnapshot()) {
		t.Errorf("Flush() stored %+v, want %+v", snap, sampleSnapshot())
	}
}

func TestSyncer_FlushWithoutChangesWritesNothing(t *testing.T) {
	store := NewMemoryStore(sampleSnapshot())
	b := board.New(LoadOrEmpty(context.Background(), store))

	if err := NewSyncer(store, b).Flush(context.Background()); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if store.Saves() != 0 {
		t.Errorf("Flush() made %d saves on an unchanged board, want 0", store.Saves())
	}
}

func TestSyncer_FlushAfterFailedLoadKeepsStoredData(t *testing.T) {
	store := NewMemoryStore(sampleSnapshot())
	store.SetLoadErr(errors.New("corrupt"))
	b := board.New(LoadOrEmpty(context.Background(), store))
	syncer := NewSyncer(store, b)
	store.SetLoadErr(nil)

	if err := syncer.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	snap, _ := store.Load(context.Background())
	if !reflect.DeepEqual(snap, sampleSnapshot()) {
		t.Errorf("Flush() overwrote stored data: got %+v", snap)
	}
}

func TestSyncer_FlushWritesOnlyChangedSequence(t *testing.T) {
	store := NewMemoryStore(sampleSnapshot())
	b := board.New(LoadOrEmpty(context.Background(), store))
	syncer := NewSyncer(store, b)

	b.RenameColumn("c1", "Backlog")
	if err := syncer.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	if store.Saves() != 1 {
		t.Errorf("Flush() made %d saves, want 1 (columns only)", store.Saves())
	}
	snap, _ := store.Load(context.Background())
	if snap.Columns[0].Title != "Backlog" {
		t.Errorf("Flush() stored column title %q, want Backlog", snap.Columns[0].Title)
	}
}

func TestSyncer_FlushSkipsSequencesAlreadySaved(t *testing.T) {
	store := NewMemoryStore(models.Snapshot{})
	b, syncer := startSyncer(t, store)

	b.CreateColumn()
	waitFor(t, func() bool {
		return syncer.columnsStored(b.Columns())
	})
	saves := store.Saves()

	if err := syncer.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if store.Saves() != saves {
		t.Errorf("Flush() saved again after the syncer caught up: %d -> %d", saves, store.Saves())
	}
}
