package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/kanban/internal/board"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/drag"
	"github.com/thenoetrevino/kanban/internal/models"
)

// setupTestModel builds a model over a three-column board:
//
//	C1 Todo  [T1 one, T2 two]
//	C2 Doing [T3 three]
//	C3 Done  []
func setupTestModel(t *testing.T) Model {
	t.Helper()

	b := board.New(models.Snapshot{
		Columns: []models.Column{
			{ID: "C1", Title: "Todo"},
			{ID: "C2", Title: "Doing"},
			{ID: "C3", Title: "Done"},
		},
		Tasks: []models.Task{
			{ID: "T1", ColumnID: "C1", Content: "one"},
			{ID: "T2", ColumnID: "C1", Content: "two"},
			{ID: "T3", ColumnID: "C2", Content: "three"},
		},
	})
	ctrl := drag.NewController(b, drag.Options{})
	return New(context.Background(), b, ctrl, config.Default(), nil)
}

// key builds a key press the way the terminal reports it
func key(s string) tea.KeyPressMsg {
	switch s {
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Code: r, Text: s})
}

// press feeds keys through Update and returns the resulting model and last command
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

func columnIDs(b *board.Board) []models.ID {
	var out []models.ID
	for _, c := range b.Columns() {
		out = append(out, c.ID)
	}
	return out
}

func taskIDs(tasks []models.Task) []models.ID {
	var out []models.ID
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
