package model

import (
	"fmt"
	"strings"
)

// SourceImage is an image file found in the working directory.
type SourceImage struct {
	Name      string `json:"name"`      // file name as listed, e.g. "photo.png"
	Basename  string `json:"basename"`  // name without extension, e.g. "photo"
	Extension string `json:"extension"` // extension with its original case, e.g. ".png"
}

// ResizeTask pairs a source image with one target width percentage.
type ResizeTask struct {
	Source     SourceImage `json:"source"`
	Percentage int         `json:"percentage"`
}

// NewSourceImage splits name into basename and extension.
func NewSourceImage(name string) SourceImage {
	stem, ext := SplitExt(name)

	return SourceImage{
		Name:      name,
		Basename:  stem,
		Extension: ext,
	}
}

// ArtifactName returns the output file name for the task: {basename}_{percentage}{extension}.
func (t ResizeTask) ArtifactName() string {
	return fmt.Sprintf("%s_%d%s", t.Source.Basename, t.Percentage, t.Source.Extension)
}

// SplitExt splits name into stem and extension at the last dot.
// Leading dots never start an extension, so ".png" has no extension.
func SplitExt(name string) (stem, ext string) {
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || strings.Trim(name[:dot], ".") == "" {
		return name, ""
	}

	return name[:dot], name[dot:]
}
