package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/zlog"

	"github.com/adrianodias8/nr-img-resizer/internal/config"
	"github.com/adrianodias8/nr-img-resizer/internal/display"
	"github.com/adrianodias8/nr-img-resizer/internal/processor"
	"github.com/adrianodias8/nr-img-resizer/internal/prompt"
	"github.com/adrianodias8/nr-img-resizer/internal/service/resizer"
	"github.com/adrianodias8/nr-img-resizer/internal/storage/file"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Context & signals: an interrupt stops the run between files.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize logger and load application configuration.
	initLogger(os.Stderr)
	cfg := config.MustLoad(config.DefaultPath)

	display.PrintBanner(os.Stdout)

	// Source images are read from the scanned directory, resized copies go to the output directory.
	source := file.NewStorage(cfg.Source.Dir)
	output := file.NewStorage(cfg.Resize.OutputDir)
	imageProcessor := processor.New(source, output, cfg.Resize.MaxHeight)

	var confirmer prompt.Confirmer = prompt.NewTerminal(os.Stdin, os.Stdout)
	if cfg.Prompt.AssumeYes {
		confirmer = prompt.Always{}
	}

	service := resizer.NewService(cfg.Resize, source, output, imageProcessor, confirmer, os.Stdout)

	summary, err := service.Run(ctx)
	switch {
	case err == nil:
		zlog.Logger.Info().
			Str("run_id", summary.RunID.String()).
			Int("written", len(summary.Written)).
			Msg("run finished")
	case errors.Is(err, resizer.ErrAborted):
		zlog.Logger.Info().Str("run_id", summary.RunID.String()).Msg("run aborted by operator")
	case errors.Is(err, context.Canceled):
		zlog.Logger.Warn().
			Str("run_id", summary.RunID.String()).
			Int("written", len(summary.Written)).
			Msg("run interrupted")
	default:
		zlog.Logger.Error().
			Err(err).
			Str("run_id", summary.RunID.String()).
			Int("written", len(summary.Written)).
			Msg("run failed")
	}

	return exitCode(err)
}

// initLogger sets up zlog and sends log events to w, keeping stdout for operator messages.
func initLogger(w io.Writer) {
	zlog.Init()
	zlog.Logger = zlog.Logger.Output(w)
}

// exitCode maps the result of a run to the process exit status.
// Nothing to do and an operator abort are clean exits.
func exitCode(err error) int {
	if err == nil || errors.Is(err, resizer.ErrAborted) {
		return 0
	}

	return 1
}
