// Package style provides shared UI styling primitives including colors and
// level labels for consistent terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Grey   = lipgloss.Color("#C0C4CC")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Level labels prefixed to log lines.
const (
	LabelDebug = "DEBUG:"
	LabelInfo  = "INFO:"
	LabelWarn  = "WARN:"
	LabelError = "ERR:"
)
