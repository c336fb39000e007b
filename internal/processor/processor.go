package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/disintegration/imaging"

	"github.com/adrianodias8/nr-img-resizer/internal/model"
)

var (
	// ErrDecode is returned when a source file is not a readable, supported image.
	ErrDecode = errors.New("failed to decode image")
	// ErrInvalidDimensions is returned when the computed output size is empty.
	ErrInvalidDimensions = errors.New("invalid output dimensions")
)

// filter is the resampling filter used for every resize (bicubic).
var filter = imaging.CatmullRom

// sourceStorage reads original images.
type sourceStorage interface {
	Load(ctx context.Context, filename string) (io.ReadCloser, error)
}

// outputStorage stores resized images.
type outputStorage interface {
	Save(ctx context.Context, filename string, src io.Reader) (string, error)
}

// Result describes one written output artifact.
type Result struct {
	Path   string
	Width  int
	Height int
}

// Processor resizes source images into the output storage.
type Processor struct {
	source    sourceStorage
	output    outputStorage
	maxHeight int
}

// New creates a new Processor reading from src and writing to dst.
func New(src sourceStorage, dst outputStorage, maxHeight int) *Processor {
	return &Processor{
		source:    src,
		output:    dst,
		maxHeight: maxHeight,
	}
}

// Process decodes the task's source image, resizes it for the task's
// percentage and saves it as {basename}_{percentage}{extension}.
func (p *Processor) Process(ctx context.Context, task model.ResizeTask) (Result, error) {
	format, err := imaging.FormatFromFilename(task.Source.Name)
	if err != nil {
		return Result{}, fmt.Errorf("%w %s: %w", ErrDecode, task.Source.Name, err)
	}

	// Load the original image from storage.
	srcReader, err := p.source.Load(ctx, task.Source.Name)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load original image: %w", err)
	}
	defer srcReader.Close()

	// Decode into an image object.
	img, err := imaging.Decode(srcReader)
	if err != nil {
		return Result{}, fmt.Errorf("%w %s: %w", ErrDecode, task.Source.Name, err)
	}

	bounds := img.Bounds()
	width, height := TargetSize(bounds.Dx(), bounds.Dy(), task.Percentage, p.maxHeight)
	if width < 1 || height < 1 {
		return Result{}, fmt.Errorf("%w: %s at %d%% gives %dx%d",
			ErrInvalidDimensions, task.Source.Name, task.Percentage, width, height)
	}

	// Perform resizing.
	resized := imaging.Resize(img, width, height, filter)

	// Encode resized image into buffer for storage.
	buf := bytes.NewBuffer(nil)
	if err := imaging.Encode(buf, resized, format); err != nil {
		return Result{}, fmt.Errorf("failed to encode resized image: %w", err)
	}

	dst, err := p.output.Save(ctx, task.ArtifactName(), buf)
	if err != nil {
		return Result{}, fmt.Errorf("failed to save resized image: %w", err)
	}

	return Result{Path: dst, Width: width, Height: height}, nil
}
