package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/cli/styles"
	"github.com/thenoetrevino/kanban/internal/models"
	"github.com/thenoetrevino/kanban/internal/tui/components"
)

// taskDetail is what `task show --json` returns
type taskDetail struct {
	models.Task
	Column   models.Column `json:"column"`
	Position int           `json:"position"` // 1-based position inside the column
}

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <task>",
		Short: "Show a task with its content rendered as markdown",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err)
	}
	defer closeCLI(cliInstance)

	b := cliInstance.App.Board
	task, err := cli.ResolveTask(b, args[0])
	if err != nil {
		return formatter.FailLookup(err)
	}
	col, _ := b.Column(task.ColumnID)

	detail := taskDetail{Task: task, Column: col}
	for i, t := range b.TasksInColumn(col.ID) {
		if t.ID == task.ID {
			detail.Position = i + 1
			break
		}
	}

	return formatter.Success(detail, func(w io.Writer) {
		var sb strings.Builder
		sb.WriteString(styles.RenderField("ID", string(task.ID)) + "\n")
		sb.WriteString(styles.RenderField("Column", fmt.Sprintf("%s (#%d)", col.Title, detail.Position)) + "\n\n")
		sb.WriteString(components.RenderMarkdown(task.Content, styles.CardWidth-6))
		fmt.Fprintln(w, styles.RenderCard(sb.String()))
	})
}
