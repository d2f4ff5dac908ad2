package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTasksInColumn_PreservesFlatOrder(t *testing.T) {
	tasks := []Task{
		{ID: "t1", ColumnID: "a", Content: "one"},
		{ID: "t2", ColumnID: "b", Content: "two"},
		{ID: "t3", ColumnID: "a", Content: "three"},
		{ID: "t4", ColumnID: "a", Content: "four"},
	}

	got := TasksInColumn(tasks, "a")

	assert.Equal(t, []ID{"t1", "t3", "t4"}, ids(got))
	assert.Empty(t, TasksInColumn(tasks, "missing"))
	assert.NotNil(t, TasksInColumn(nil, "a"))
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"Column", KindColumn, true},
		{"column", KindColumn, true},
		{"Task", KindTask, true},
		{"task", KindTask, true},
		{"card", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseKind(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseKind(%q)", tt.in)
	}
}

func TestSnapshot_CloneDoesNotAlias(t *testing.T) {
	orig := Snapshot{
		Columns: []Column{{ID: "c1", Title: "Todo"}},
		Tasks:   []Task{{ID: "t1", ColumnID: "c1", Content: "x"}},
	}

	clone := orig.Clone()
	clone.Columns[0].Title = "changed"
	clone.Tasks[0].Content = "changed"

	assert.Equal(t, "Todo", orig.Columns[0].Title)
	assert.Equal(t, "x", orig.Tasks[0].Content)
}

func TestSnapshot_CloneOfNilIsEmptyNotNil(t *testing.T) {
	clone := Snapshot{}.Clone()

	assert.NotNil(t, clone.Columns)
	assert.NotNil(t, clone.Tasks)
	assert.True(t, clone.Empty())
}

func ids(tasks []Task) []ID {
	out := make([]ID, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
