package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/drag"
	"github.com/thenoetrevino/kanban/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task> --over <target>",
		Short: "Drag a task onto another task or a column",
		Long: `Move a task exactly as dragging it there and dropping it would.

Over a task, the moved task takes that task's place (and column).
Over a column, the task joins that column, keeping its position in the board order.

Examples:
  # Put a task where another one is
  kanban task move 9c1e --over 4d2b

  # Move a task into the Done column
  kanban task move 9c1e --over Done --over-kind column
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("over", "", "Task or column to drop onto (required)")
	_ = cmd.MarkFlagRequired("over")
	cmd.Flags().String("over-kind", "task", "Kind of the --over target: task or column")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	overRef, _ := cmd.Flags().GetString("over")
	overKindFlag, _ := cmd.Flags().GetString("over-kind")
	formatter := cli.NewFormatter(cmd)

	overKind, ok := models.ParseKind(overKindFlag)
	if !ok {
		return formatter.Fail(cli.ExitValidation, "INVALID_KIND",
			fmt.Errorf("invalid --over-kind %q (must be: task, column)", overKindFlag))
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer closeCLI(cliInstance)

	a := cliInstance.App
	task, err := cli.ResolveTask(a.Board, args[0])
	if err != nil {
		return formatter.FailLookup(err)
	}

	var target drag.Endpoint
	switch overKind {
	case models.KindColumn:
		col, err := cli.ResolveColumn(a.Board, overRef)
		if err != nil {
			return formatter.FailLookup(err)
		}
		target = drag.ColumnEndpoint(col.ID)
	default:
		over, err := cli.ResolveTask(a.Board, overRef)
		if err != nil {
			return formatter.FailLookup(err)
		}
		target = drag.TaskEndpoint(over.ID)
	}

	moved := a.Drag.Move(a.Board, drag.TaskEndpoint(task.ID), target)
	task, _ = a.Board.Task(task.ID)
	col, _ := a.Board.Column(task.ColumnID)

	return formatter.Success(task, func(w io.Writer) {
		if !moved {
			fmt.Fprintf(w, "Task '%s' is already there\n", firstLine(task.Content))
			return
		}
		fmt.Fprintf(w, "%s Task '%s' moved to '%s'\n", styles.Check(), firstLine(task.Content), col.Title)
		for _, t := range a.Board.TasksInColumn(col.ID) {
			marker := " "
			if t.ID == task.ID {
				marker = "›"
			}
			fmt.Fprintf(w, "  %s %s\n", marker, strings.TrimSpace(firstLine(t.Content)))
		}
	})
}
