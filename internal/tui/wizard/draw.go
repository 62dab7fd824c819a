package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// DrawText renders plain text at a position.
func DrawText(scr uv.Screen, area uv.Rectangle, text string) {
	uv.NewStyledString(text).Draw(scr, area)
}

// DrawStyled renders lipgloss-styled content sized to the area.
func DrawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, text string) {
	content := style.Width(area.Dx()).Height(area.Dy()).Render(text)
	uv.NewStyledString(content).Draw(scr, area)
}

// FillArea clears an area with a styled background.
func FillArea(scr uv.Screen, area uv.Rectangle, style lipgloss.Style) {
	fill := style.Width(area.Dx()).Height(area.Dy()).Render("")
	uv.NewStyledString(fill).Draw(scr, area)
}

// DrawPanel renders a "Title ────" header and returns the content area
// below it. An empty title draws nothing and returns the area intact.
func DrawPanel(scr uv.Screen, area uv.Rectangle, title string, titleStyle, ruleStyle lipgloss.Style) uv.Rectangle {
	if title == "" {
		return area
	}

	styledTitle := titleStyle.Render(title)
	ruleWidth := area.Dx() - lipgloss.Width(styledTitle) - 1 // -1 for space
	if ruleWidth < 0 {
		ruleWidth = 0
	}
	header := styledTitle + " " + ruleStyle.Render(strings.Repeat("─", ruleWidth))

	titleArea := uv.Rectangle{
		Min: uv.Position{X: area.Min.X, Y: area.Min.Y},
		Max: uv.Position{X: area.Max.X, Y: area.Min.Y + 1},
	}
	uv.NewStyledString(header).Draw(scr, titleArea)

	inner := uv.Rectangle{
		Min: uv.Position{X: area.Min.X, Y: area.Min.Y + 1},
		Max: area.Max,
	}
	if inner.Min.Y > inner.Max.Y {
		inner.Min.Y = inner.Max.Y
	}
	return inner
}

// DrawHorizontalRule renders a full-width dividing line.
func DrawHorizontalRule(scr uv.Screen, area uv.Rectangle, style lipgloss.Style) {
	if area.Dx() <= 0 {
		return
	}
	rule := style.Render(strings.Repeat("─", area.Dx()))
	uv.NewStyledString(rule).Draw(scr, area)
}
