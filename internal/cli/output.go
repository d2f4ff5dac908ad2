package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

// AddOutputFlags registers --json and --quiet as persistent flags on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().Bool("quiet", false, "Minimal output (IDs only)")
}

// NewFormatter builds a formatter from the command's output flags and writers
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs a successful operation result. human renders the human-readable form;
// when nil the data is printed with %+v.
func (f *OutputFormatter) Success(data any, human func(w io.Writer)) error {
	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if f.Quiet {
		f.printIDs(data)
		return nil
	}

	if human != nil {
		human(f.out())
		return nil
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// printIDs writes the IDs found in data, one per line. Data without IDs prints nothing.
func (f *OutputFormatter) printIDs(data any) {
	w := f.out()
	switch v := data.(type) {
	case interface{ GetID() models.ID }:
		fmt.Fprintln(w, v.GetID())
	case []models.Column:
		for _, c := range v {
			fmt.Fprintln(w, c.ID)
		}
	case []models.Task:
		for _, t := range v {
			fmt.Fprintln(w, t.ID)
		}
	}
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err under code and returns it wrapped with the matching exit code
func (f *OutputFormatter) Fail(exitCode int, code string, err error) error {
	_ = f.Error(code, err.Error())
	return Exit(exitCode, err)
}
