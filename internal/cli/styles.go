// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"strings"

	"github.com/Veraticus/fancy-numbers/internal/model"
	"github.com/Veraticus/fancy-numbers/internal/pattern"
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color (gold).
	PrimaryColor = lipgloss.Color("#F4C542")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// NumberStyle renders a phone number.
	NumberStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// BadgeStyle is the base for pattern badges.
	BadgeStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#1A1A1A"))

	// familyColors tints badges by matcher family.
	familyColors = map[pattern.Family]lipgloss.Color{
		pattern.FamilyBlock:     lipgloss.Color("#95E1D3"),
		pattern.FamilyRun:       lipgloss.Color("#F4C542"),
		pattern.FamilySequence:  lipgloss.Color("#4ECDC4"),
		pattern.FamilySymmetry:  lipgloss.Color("#C3A6FF"),
		pattern.FamilyLiteral:   lipgloss.Color("#FFB4A2"),
		pattern.FamilyYear:      lipgloss.Color("#B5E48C"),
		pattern.FamilyComposite: lipgloss.Color("#FF6B6B"),
		pattern.FamilyDigitMix:  lipgloss.Color("#FFE66D"),
	}
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	StarIcon    = "✨"
	ChartIcon   = "📊"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatTitle formats a title with the star icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(StarIcon + " " + title)
}

// FormatNumber renders n as XXX-XXX-XXXX.
func FormatNumber(n model.PhoneNumber) string {
	return NumberStyle.Render(n.Format())
}

// FormatBadge renders one pattern name tinted by its family.
func FormatBadge(name model.PatternName, family pattern.Family) string {
	style := BadgeStyle
	if c, ok := familyColors[family]; ok {
		style = style.Background(c)
	}
	return style.Render(string(name))
}

// FormatBadges renders every matched pattern of n, or a subtle placeholder.
func FormatBadges(d *pattern.Detector, names []model.PatternName) string {
	if len(names) == 0 {
		return SubtleStyle.Render("no patterns")
	}
	badges := make([]string, 0, len(names))
	for _, name := range names {
		var family pattern.Family
		if m, ok := d.Lookup(name); ok {
			family = m.Family
		}
		badges = append(badges, FormatBadge(name, family))
	}
	return strings.Join(badges, " ")
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	return BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, boxTitle, content))
}
