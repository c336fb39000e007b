package display

import (
	"fmt"
	"io"

	"github.com/adrianodias8/nr-img-resizer/internal/model"
)

// Operator-facing messages.
const (
	MsgNothingToDo = "No new image files found to process in the current directory."
	MsgAborted     = "Operation aborted by the user."
	MsgDone        = "All images have been resized successfully!"
)

// PrintWorkSet lists the images that are about to be resized.
func PrintWorkSet(w io.Writer, images []model.SourceImage) {
	fmt.Fprintln(w, "The following images will be processed:")
	for _, img := range images {
		fmt.Fprintf(w, "  - %s\n", img.Name)
	}
}

// PrintCreated reports one written output file.
func PrintCreated(w io.Writer, path string) {
	fmt.Fprintf(w, "Successfully created %s\n", path)
}
