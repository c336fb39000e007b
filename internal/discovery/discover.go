// Package discovery finds source images in the working directory and drops
// the ones whose resized copies already exist in the output directory.
package discovery

import (
	"io/fs"
	"strings"

	"github.com/adrianodias8/nr-img-resizer/internal/model"
)

// Discover returns the image files among entries whose name ends with one of
// the allowed extensions, compared case-insensitively. Directories are ignored
// and entry order is preserved.
func Discover(entries []fs.DirEntry, extensions []string) []model.SourceImage {
	allowed := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		allowed = append(allowed, strings.ToLower(ext))
	}

	images := make([]model.SourceImage, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		name := strings.ToLower(e.Name())
		for _, ext := range allowed {
			if strings.HasSuffix(name, ext) {
				images = append(images, model.NewSourceImage(e.Name()))
				break
			}
		}
	}

	return images
}
