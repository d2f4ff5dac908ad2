package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/kanban/internal/models"
)

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	require.NoError(t, f.Success(models.Column{ID: "c1", Title: "Todo"}, nil))

	var result struct {
		Success bool          `json:"success"`
		Data    models.Column `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, models.Column{ID: "c1", Title: "Todo"}, result.Data)
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"single column", models.Column{ID: "c1"}, "c1\n"},
		{"single task", models.Task{ID: "t1"}, "t1\n"},
		{"column list", []models.Column{{ID: "c1"}, {ID: "c2"}}, "c1\nc2\n"},
		{"task list", []models.Task{{ID: "t1"}, {ID: "t2"}}, "t1\nt2\n"},
		{"no ids", map[string]string{"status": "ok"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(false, true)
			require.NoError(t, f.Success(tt.data, nil))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newTestFormatter(false, false)

	require.NoError(t, f.Success(models.Column{ID: "c1"}, func(w io.Writer) {
		_, _ = io.WriteString(w, "created Todo\n")
	}))
	assert.Equal(t, "created Todo\n", out.String())

	out.Reset()
	require.NoError(t, f.Success("plain", nil))
	assert.Equal(t, "plain\n", out.String())
}

func TestOutputFormatter_Error(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)
	require.NoError(t, f.ErrorWithSuggestion("TASK_NOT_FOUND", "task x not found", "run kanban task list"))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "task x not found")
	assert.Contains(t, errOut.String(), "run kanban task list")

	f, out, _ = newTestFormatter(true, false)
	require.NoError(t, f.Error("TASK_NOT_FOUND", "task x not found"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "TASK_NOT_FOUND", errData["code"])
	_, hasSuggestion := errData["suggestion"]
	assert.False(t, hasSuggestion)
}

func TestOutputFormatter_Fail(t *testing.T) {
	f, _, errOut := newTestFormatter(false, false)
	cause := errors.New("boom")

	err := f.Fail(ExitDataErr, "BAD_FILE", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ExitDataErr, ExitCode(err))
	assert.True(t, strings.HasPrefix(errOut.String(), "Error: boom"))
}
