package output

import (
	"fmt"

	"github.com/fatih/color"
)

// ColorHelper colors terminal output
type ColorHelper struct {
	enabled bool
}

// NewColorHelper creates a new color helper
// Colors are enabled only when outputting to a terminal
func NewColorHelper() *ColorHelper {
	return &ColorHelper{
		enabled: !color.NoColor,
	}
}

// Success returns green colored text
func (c *ColorHelper) Success(text string) string {
	if !c.enabled {
		return text
	}
	return color.GreenString(text)
}

// Warning returns yellow colored text
func (c *ColorHelper) Warning(text string) string {
	if !c.enabled {
		return text
	}
	return color.YellowString(text)
}

// Header returns bold cyan text for section headers
func (c *ColorHelper) Header(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgCyan, color.Bold).Sprint(text)
}

// FormatMatched colors a matched/scanned line count: green when something
// matched, yellow when nothing did.
func (c *ColorHelper) FormatMatched(matched, scanned int) string {
	text := fmt.Sprintf("%d/%d", matched, scanned)
	if matched == 0 {
		return c.Warning(text)
	}
	return c.Success(text)
}
