package processor

// Layout constants behind the candidate width: a percentage of a 600px
// column minus 40px of gutter.
const (
	columnWidth = 600
	gutterWidth = 40
)

// CandidateWidth returns the width for percentage before the height cap is applied.
func CandidateWidth(percentage int) int {
	// Each conversion rounds to float64 so the steps are never fused.
	share := float64(float64(percentage) / 100)
	scaled := float64(columnWidth * share)

	return int(scaled - gutterWidth)
}

// TargetSize computes the output dimensions for an image of width x height
// resized to percentage, never taller than maxHeight.
//
// Every step truncates toward zero in the order written; simplifying the
// expressions changes results for non-exact ratios.
func TargetSize(width, height, percentage, maxHeight int) (int, int) {
	candidate := CandidateWidth(percentage)

	ratio := float64(candidate) / float64(width)
	heightFromWidth := int(float64(float64(height) * ratio))

	if heightFromWidth > maxHeight {
		heightRatio := float64(maxHeight) / float64(height)
		return int(float64(float64(width) * heightRatio)), maxHeight
	}

	return candidate, heightFromWidth
}
