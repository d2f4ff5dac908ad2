package components

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CreateCornerLayer pins content to the bottom-right corner, margin cells in.
func CreateCornerLayer(content string, screenWidth int, screenHeight int, margin int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max(screenWidth-lipgloss.Width(content)-margin, 0)
	y := max(screenHeight-lipgloss.Height(content)-margin, 0)

	return lipgloss.NewLayer(content).X(x).Y(y).Z(1)
}
