package board

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/kanban/internal/events"
	"github.com/thenoetrevino/kanban/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// recordingPublisher captures published event types in order
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.EventType
}

func (r *recordingPublisher) Publish(eventType events.EventType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, eventType)
	return nil
}

func (r *recordingPublisher) Events() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.EventType(nil), r.events...)
}

// sequentialIDs returns an ID generator yielding prefix1, prefix2, ...
func sequentialIDs(prefix string) func() models.ID {
	n := 0
	return func() models.ID {
		n++
		return models.ID(fmt.Sprintf("%s%d", prefix, n))
	}
}

func seededBoard(t *testing.T) (*Board, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	b := New(models.Snapshot{
		Columns: []models.Column{{ID: "A", Title: "Todo"}, {ID: "B", Title: "Done"}},
		Tasks: []models.Task{
			{ID: "T1", ColumnID: "A", Content: "one"},
			{ID: "T2", ColumnID: "B", Content: "two"},
			{ID: "T3", ColumnID: "A", Content: "three"},
		},
	}, WithPublisher(pub), WithIDGenerator(sequentialIDs("id")))
	return b, pub
}

// ============================================================================
// COLUMN CRUD
// ============================================================================

func TestCreateColumn_AppendsWithNumberedTitle(t *testing.T) {
	b, pub := seededBoard(t)

	col := b.CreateColumn()

	assert.Equal(t, models.Column{ID: "id1", Title: "Column 3"}, col)
	cols := b.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, col, cols[2])
	assert.Equal(t, []events.EventType{events.EventColumnsChanged}, pub.Events())
}

func TestCreateColumn_CustomDefaults(t *testing.T) {
	b := New(models.Snapshot{}, WithDefaults("Lane", "Card"), WithIDGenerator(sequentialIDs("c")))

	col := b.CreateColumn()
	task, err := b.CreateTask(col.ID)

	require.NoError(t, err)
	assert.Equal(t, "Lane 1", col.Title)
	assert.Equal(t, "Card 1", task.Content)
}

func TestCreateColumn_UsesUUIDByDefault(t *testing.T) {
	b := New(models.Snapshot{})

	first := b.CreateColumn()
	second := b.CreateColumn()

	assert.Len(t, string(first.ID), 36)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRenameColumn(t *testing.T) {
	b, pub := seededBoard(t)

	assert.True(t, b.RenameColumn("B", "Shipped"))
	col, ok := b.Column("B")
	require.True(t, ok)
	assert.Equal(t, "Shipped", col.Title)

	assert.False(t, b.RenameColumn("missing", "x"))
	assert.Equal(t, []events.EventType{events.EventColumnsChanged}, pub.Events())
}

func TestRenameColumn_SameTitleDoesNotPublish(t *testing.T) {
	b, pub := seededBoard(t)

	assert.True(t, b.RenameColumn("A", "Todo"))
	assert.Empty(t, pub.Events())
}

func TestDeleteColumn_CascadesToTasks(t *testing.T) {
	b, pub := seededBoard(t)

	require.True(t, b.DeleteColumn("A"))

	assert.Equal(t, []models.Column{{ID: "B", Title: "Done"}}, b.Columns())
	assert.Equal(t, []models.Task{{ID: "T2", ColumnID: "B", Content: "two"}}, b.Tasks())
	assert.Equal(t, []events.EventType{events.EventColumnsChanged, events.EventTasksChanged}, pub.Events())
}

func TestDeleteColumn_WithoutTasksOnlyTouchesColumns(t *testing.T) {
	b, pub := seededBoard(t)
	col := b.CreateColumn()

	require.True(t, b.DeleteColumn(col.ID))

	assert.Len(t, b.Tasks(), 3)
	assert.Equal(t, []events.EventType{events.EventColumnsChanged, events.EventColumnsChanged}, pub.Events())
}

func TestDeleteColumn_Missing(t *testing.T) {
	b, pub := seededBoard(t)

	assert.False(t, b.DeleteColumn("nope"))
	assert.Len(t, b.Columns(), 2)
	assert.Empty(t, pub.Events())
}

// ============================================================================
// TASK CRUD
// ============================================================================

func TestCreateTask_AppendsToFlatSequence(t *testing.T) {
	b, _ := seededBoard(t)

	task, err := b.CreateTask("B")

	require.NoError(t, err)
	assert.Equal(t, models.Task{ID: "id1", ColumnID: "B", Content: "Task 4"}, task)
	tasks := b.Tasks()
	assert.Equal(t, task, tasks[len(tasks)-1])
	assert.Equal(t, []models.ID{"T2", "id1"}, taskIDs(b.TasksInColumn("B")))
}

func TestCreateTask_WithContentPublishesOnce(t *testing.T) {
	b, pub := seededBoard(t)

	task, err := b.CreateTask("A", WithContent("ship it"))

	require.NoError(t, err)
	assert.Equal(t, "ship it", task.Content)
	stored, _ := b.Task(task.ID)
	assert.Equal(t, "ship it", stored.Content)
	assert.Equal(t, []events.EventType{events.EventTasksChanged}, pub.Events())
}

func TestCreateTask_BlankContentKeepsDefault(t *testing.T) {
	b, _ := seededBoard(t)

	task, err := b.CreateTask("A", WithContent("   "))

	require.NoError(t, err)
	assert.Equal(t, "Task 4", task.Content)
}

func TestCreateTask_MissingColumn(t *testing.T) {
	b, pub := seededBoard(t)

	_, err := b.CreateTask("ghost")

	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.Len(t, b.Tasks(), 3)
	assert.Empty(t, pub.Events())
}

func TestEditTask(t *testing.T) {
	b, _ := seededBoard(t)

	assert.True(t, b.EditTask("T2", "rewritten"))
	task, ok := b.Task("T2")
	require.True(t, ok)
	assert.Equal(t, "rewritten", task.Content)

	assert.False(t, b.EditTask("nope", "x"))
}

func TestDeleteTask(t *testing.T) {
	b, _ := seededBoard(t)

	assert.True(t, b.DeleteTask("T1"))
	assert.Equal(t, []models.ID{"T2", "T3"}, taskIDs(b.Tasks()))
	assert.False(t, b.DeleteTask("T1"))
}

// ============================================================================
// PUBLISH STEP
// ============================================================================

func TestApplyTasks_UnchangedDoesNotPublish(t *testing.T) {
	b, pub := seededBoard(t)

	changed := b.ApplyTasks(func(tasks []models.Task) []models.Task { return tasks })

	assert.False(t, changed)
	assert.Empty(t, pub.Events())
}

func TestApplyTasks_RejectsMissingColumn(t *testing.T) {
	b, pub := seededBoard(t)
	before := b.Snapshot()

	changed := b.ApplyTasks(func(tasks []models.Task) []models.Task {
		tasks[0].ColumnID = "gone"
		return tasks
	})

	assert.False(t, changed)
	assert.Equal(t, before, b.Snapshot())
	assert.Empty(t, pub.Events())
	assert.NoError(t, Validate(b.Snapshot()))
}

func TestApplyColumns_ReceivesACopy(t *testing.T) {
	b, _ := seededBoard(t)

	b.ApplyColumns(func(cols []models.Column) []models.Column {
		cols[0].Title = "mutated"
		return []models.Column{{ID: "Z"}}
	})

	assert.Equal(t, []models.Column{{ID: "Z"}}, b.Columns())
}

func TestReadsReturnCopies(t *testing.T) {
	b, _ := seededBoard(t)

	tasks := b.Tasks()
	tasks[0].Content = "mutated"
	snap := b.Snapshot()
	snap.Columns[0].Title = "mutated"

	task, _ := b.Task("T1")
	col, _ := b.Column("A")
	assert.Equal(t, "one", task.Content)
	assert.Equal(t, "Todo", col.Title)
}

func TestReplace(t *testing.T) {
	b, pub := seededBoard(t)

	err := b.Replace(models.Snapshot{
		Columns: []models.Column{{ID: "X", Title: "Only"}},
		Tasks:   []models.Task{{ID: "t", ColumnID: "X"}},
	})

	require.NoError(t, err)
	assert.Equal(t, []models.Column{{ID: "X", Title: "Only"}}, b.Columns())
	assert.Len(t, pub.Events(), 2)
}

func TestReplace_RejectsInvalidSnapshot(t *testing.T) {
	b, pub := seededBoard(t)

	err := b.Replace(models.Snapshot{
		Tasks: []models.Task{{ID: "t", ColumnID: "gone"}},
	})

	assert.ErrorIs(t, err, ErrOrphanTask)
	assert.Len(t, b.Columns(), 2)
	assert.Empty(t, pub.Events())
}

func TestConcurrentCreatesKeepUniqueIDs(t *testing.T) {
	b := New(models.Snapshot{})
	col := b.CreateColumn()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = b.CreateTask(col.ID)
		}()
	}
	wg.Wait()

	assert.NoError(t, Validate(b.Snapshot()))
	assert.Len(t, b.Tasks(), 50)
}

func taskIDs(tasks []models.Task) []models.ID {
	out := make([]models.ID, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
