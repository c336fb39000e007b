package discovery

import (
	"strconv"
	"strings"

	"github.com/adrianodias8/nr-img-resizer/internal/model"
)

// AlreadyResized derives the set of original basenames that have at least one
// resized copy among outputNames.
//
// A name counts when it contains "_{p}" for any configured percentage p; the
// basename is everything before the last underscore. One matching percentage
// is enough, the other percentages are not checked.
func AlreadyResized(outputNames []string, percentages []int) map[string]struct{} {
	markers := make([]string, 0, len(percentages))
	for _, p := range percentages {
		markers = append(markers, "_"+strconv.Itoa(p))
	}

	resized := make(map[string]struct{})
	for _, name := range outputNames {
		for _, marker := range markers {
			if !strings.Contains(name, marker) {
				continue
			}

			// The marker guarantees an underscore is present.
			base := name[:strings.LastIndexByte(name, '_')]
			resized[base] = struct{}{}
		}
	}

	return resized
}

// Pending filters images down to those whose basename is not in resized.
func Pending(images []model.SourceImage, resized map[string]struct{}) []model.SourceImage {
	pending := make([]model.SourceImage, 0, len(images))
	for _, img := range images {
		if _, ok := resized[img.Basename]; ok {
			continue
		}
		pending = append(pending, img)
	}

	return pending
}
