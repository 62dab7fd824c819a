// Package testfixtures provides shared fixtures and render helpers for
// TUI tests: canned plans, the canonical test terminal size, and a
// buffer-backed render harness.
package testfixtures

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	uv "github.com/charmbracelet/ultraviolet"
)

// Initialize test environment
func init() {
	// Set Ascii profile to disable color output so rendered-text
	// assertions are stable across CI/platforms
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 40
)

// Render draws into a canonical-size screen buffer and returns the
// rendered text. This consolidates the common pattern of:
//
//	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
//	content.Draw(canvas, canvas.Bounds())
//	out := canvas.Render()
func Render(renderFn func(canvas uv.ScreenBuffer)) string {
	canvas := uv.NewScreenBuffer(TestTermWidth, TestTermHeight)
	renderFn(canvas)
	return canvas.Render()
}

// RenderSized is Render with an explicit buffer size, for tests that
// exercise cramped or oversized terminals.
func RenderSized(width, height int, renderFn func(canvas uv.ScreenBuffer)) string {
	canvas := uv.NewScreenBuffer(width, height)
	renderFn(canvas)
	return canvas.Render()
}
