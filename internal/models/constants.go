package models

import "strings"

// ID identifies a column or a task. IDs are unique within their own kind and only
// compared for equality.
type ID string

// String implements fmt.Stringer
func (id ID) String() string {
	return string(id)
}

// ============================================================================
// ENTITY KIND CONSTANTS
// ============================================================================

// Kind tells which entity a drag endpoint refers to
type Kind string

const (
	KindColumn Kind = "Column"
	KindTask   Kind = "Task"
)

// ParseKind converts user or wire input into a Kind.
// Matching is case-insensitive; ok is false for anything else.
func ParseKind(s string) (Kind, bool) {
	switch {
	case strings.EqualFold(s, string(KindColumn)):
		return KindColumn, true
	case strings.EqualFold(s, string(KindTask)):
		return KindTask, true
	}
	return "", false
}

// ============================================================================
// DEFAULT TITLE CONSTANTS
// ============================================================================

// DefaultColumnTitle is the prefix for a newly created column's title ("Column 3")
const DefaultColumnTitle = "Column"

// DefaultTaskContent is the prefix for a newly created task's content ("Task 7")
const DefaultTaskContent = "Task"
