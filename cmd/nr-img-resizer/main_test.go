package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/zlog"

	"github.com/adrianodias8/nr-img-resizer/internal/processor"
	"github.com/adrianodias8/nr-img-resizer/internal/service/resizer"
	"github.com/adrianodias8/nr-img-resizer/internal/storage/file"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success or nothing to do", nil, 0},
		{"aborted", resizer.ErrAborted, 0},
		{"wrapped abort", fmt.Errorf("run: %w", resizer.ErrAborted), 0},
		{"interrupted", context.Canceled, 1},
		{"decode failure", fmt.Errorf("resize a.png at 50%%: %w", processor.ErrDecode), 1},
		{"filesystem failure", fmt.Errorf("%w: failed to create directory dist", file.ErrFilesystem), 1},
		{"confirm failure", fmt.Errorf("confirm: %w", errors.New("failed to read answer")), 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, exitCode(c.err))
		})
	}
}

func TestInitLogger_KeepsLogsOffStdout(t *testing.T) {
	saved := zlog.Logger
	t.Cleanup(func() { zlog.Logger = saved })

	var buf bytes.Buffer
	initLogger(&buf)
	zlog.Logger.Info().Str("run_id", "abc").Msg("image resized")

	assert.Contains(t, buf.String(), `"message":"image resized"`)
	assert.Contains(t, buf.String(), `"run_id":"abc"`)
}

func TestMain(m *testing.M) {
	zlog.Init()
	zlog.Logger = zlog.Logger.Output(os.Stderr)
	os.Exit(m.Run())
}
