package drag

import (
	"maps"

	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/ordering"
)

// kindPair keys the transition tables: (dragged kind, target kind)
type kindPair struct {
	active models.Kind
	over   models.Kind
}

// rule applies one ordering transformation through the store and reports whether
// anything changed
type rule func(store Store, activeID, overID models.ID) bool

// hoverRules run on every OverEvent. Tasks reorder live as the pointer passes siblings.
// Columns never move on hover.
var hoverRules = map[kindPair]rule{
	{models.KindTask, models.KindTask}:   moveTask,
	{models.KindTask, models.KindColumn}: moveTaskToColumn,
}

// dropRules run on the EndEvent. Task rules are absent because hover already applied them.
var dropRules = map[kindPair]rule{
	{models.KindColumn, models.KindColumn}: moveColumn,
}

// dropRulesWithTasks re-applies the task rules at drop time for presentation layers that
// never raise hover events
func dropRulesWithTasks() map[kindPair]rule {
	rules := maps.Clone(dropRules)
	maps.Copy(rules, hoverRules)
	return rules
}

func moveTask(store Store, activeID, overID models.ID) bool {
	return store.ApplyTasks(func(tasks []models.Task) []models.Task {
		return ordering.MoveTask(tasks, activeID, overID)
	})
}

func moveTaskToColumn(store Store, taskID, columnID models.ID) bool {
	if _, ok := store.Column(columnID); !ok {
		return false
	}
	return store.ApplyTasks(func(tasks []models.Task) []models.Task {
		return ordering.MoveTaskToColumn(tasks, taskID, columnID)
	})
}

func moveColumn(store Store, activeID, overID models.ID) bool {
	return store.ApplyColumns(func(columns []models.Column) []models.Column {
		return ordering.MoveColumn(columns, activeID, overID)
	})
}
