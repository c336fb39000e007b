package resizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/adrianodias8/nr-img-resizer/internal/config"
	"github.com/adrianodias8/nr-img-resizer/internal/discovery"
	"github.com/adrianodias8/nr-img-resizer/internal/display"
	"github.com/adrianodias8/nr-img-resizer/internal/model"
	"github.com/adrianodias8/nr-img-resizer/internal/processor"
)

// ErrAborted is returned when the operator declines the confirmation.
var ErrAborted = errors.New("operation aborted by the user")

// sourceDir lists the directory scanned for images.
type sourceDir interface {
	List(ctx context.Context) ([]fs.DirEntry, error)
}

// outputDir is the directory resized images are written to.
type outputDir interface {
	EnsureDir() error
	List(ctx context.Context) ([]fs.DirEntry, error)
}

// imageProcessor produces one resized copy per task.
type imageProcessor interface {
	Process(ctx context.Context, task model.ResizeTask) (processor.Result, error)
}

// confirmer asks the operator whether to proceed.
type confirmer interface {
	Confirm(ctx context.Context) (bool, error)
}

// Summary describes what a run found and wrote.
type Summary struct {
	RunID      uuid.UUID
	Discovered int      // images matching the allowed extensions
	Skipped    int      // images excluded because a resized copy exists
	Pending    []string // work set shown to the operator
	Written    []string // output paths, in write order
}

// Service runs the discover, skip, confirm and resize phases in order.
type Service struct {
	cfg       config.Resize
	source    sourceDir
	output    outputDir
	processor imageProcessor
	confirmer confirmer
	out       io.Writer
}

// NewService creates a new Service. Operator messages are written to out.
func NewService(cfg config.Resize, src sourceDir, dst outputDir, p imageProcessor, c confirmer, out io.Writer) *Service {
	return &Service{
		cfg:       cfg,
		source:    src,
		output:    dst,
		processor: p,
		confirmer: c,
		out:       out,
	}
}

// Run executes one pass over the source directory.
//
// It returns ErrAborted if the operator declines, and stops at the first
// failing resize; files written before the failure stay on disk.
func (s *Service) Run(ctx context.Context) (Summary, error) {
	summary := Summary{RunID: uuid.New()}
	runID := summary.RunID.String()

	if err := s.output.EnsureDir(); err != nil {
		return summary, err
	}

	pending, err := s.workSet(ctx, &summary)
	if err != nil {
		return summary, err
	}

	zlog.Logger.Info().
		Str("run_id", runID).
		Int("discovered", summary.Discovered).
		Int("skipped", summary.Skipped).
		Int("pending", len(pending)).
		Msg("work set ready")

	if len(pending) == 0 {
		fmt.Fprintln(s.out, display.MsgNothingToDo)
		return summary, nil
	}

	display.PrintWorkSet(s.out, pending)

	ok, err := s.confirmer.Confirm(ctx)
	if err != nil {
		return summary, fmt.Errorf("confirm: %w", err)
	}
	if !ok {
		fmt.Fprintln(s.out, display.MsgAborted)
		return summary, ErrAborted
	}

	for _, img := range pending {
		for _, pct := range s.cfg.Percentages {
			if err := ctx.Err(); err != nil {
				return summary, err
			}

			task := model.ResizeTask{Source: img, Percentage: pct}
			res, err := s.processor.Process(ctx, task)
			if err != nil {
				return summary, fmt.Errorf("resize %s at %d%%: %w", img.Name, pct, err)
			}

			summary.Written = append(summary.Written, res.Path)
			display.PrintCreated(s.out, res.Path)

			zlog.Logger.Info().
				Str("run_id", runID).
				Str("path", res.Path).
				Int("width", res.Width).
				Int("height", res.Height).
				Msg("image resized")
		}
	}

	fmt.Fprintln(s.out, display.MsgDone)

	return summary, nil
}

// workSet discovers source images and drops the already resized ones.
func (s *Service) workSet(ctx context.Context, summary *Summary) ([]model.SourceImage, error) {
	outputEntries, err := s.output.List(ctx)
	if err != nil {
		return nil, err
	}

	sourceEntries, err := s.source.List(ctx)
	if err != nil {
		return nil, err
	}

	images := discovery.Discover(sourceEntries, s.cfg.Extensions)

	outputNames := make([]string, 0, len(outputEntries))
	for _, e := range outputEntries {
		outputNames = append(outputNames, e.Name())
	}
	resized := discovery.AlreadyResized(outputNames, s.cfg.Percentages)
	pending := discovery.Pending(images, resized)

	summary.Discovered = len(images)
	summary.Skipped = len(images) - len(pending)
	for _, img := range pending {
		summary.Pending = append(summary.Pending, img.Name)
	}

	return pending, nil
}
