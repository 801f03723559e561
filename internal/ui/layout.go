package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which the header drops the
	// endpoint and cards drop the movie id.
	LayoutCompactWidth = 60

	// LayoutMinCardWidth keeps cards readable on very narrow terminals.
	LayoutMinCardWidth = 20
)

// Log display limits.
const (
	// LogLineLimit is the number of trailing log lines the overlay reads.
	LogLineLimit = 500
)

func (m Model) compact() bool {
	return m.width < LayoutCompactWidth
}
