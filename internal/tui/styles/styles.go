package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Violet     = lipgloss.Color("#8B5CF6")
	SlateDark  = lipgloss.Color("#1F2937")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Orange     = lipgloss.Color("#F97316")
	Blue       = lipgloss.Color("#3B82F6")
	Gold       = lipgloss.Color("#F59E0B")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Violet)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Violet)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Violet).
			Padding(0, 1)

	FavoriteStyle = lipgloss.NewStyle().
			Foreground(Red)

	UnlockedStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true)
)

// StatusColor returns the accent color for a reading status string.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "reading":
		return Orange
	case "completed":
		return Green
	default:
		return Blue
	}
}

// SpinnerFrames are the loading indicator animation frames.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
