package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Accent color for the FITCOACH branding.
const accentGreen = "#34A853"

// FITCOACH ASCII art banner (filled block style).
var bannerArt = []string{
	"  ███████╗██╗████████╗ ██████╗ ██████╗  █████╗  ██████╗██╗  ██╗",
	"  ██╔════╝██║╚══██╔══╝██╔════╝██╔═══██╗██╔══██╗██╔════╝██║  ██║",
	"  █████╗  ██║   ██║   ██║     ██║   ██║███████║██║     ███████║",
	"  ██╔══╝  ██║   ██║   ██║     ██║   ██║██╔══██║██║     ██╔══██║",
	"  ██║     ██║   ██║   ╚██████╗╚██████╔╝██║  ██║╚██████╗██║  ██║",
	"  ╚═╝     ╚═╝   ╚═╝    ╚═════╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝",
}

// Styles contains all lipgloss styles for the TUI.
type Styles struct {
	Banner       lipgloss.Style
	User         lipgloss.Style
	Coach        lipgloss.Style
	System       lipgloss.Style
	Tips         lipgloss.Style
	Error        lipgloss.Style
	Success      lipgloss.Style
	Prompt       lipgloss.Style
	Timestamp    lipgloss.Style
	Separator    lipgloss.Style
	StatusBar    lipgloss.Style
	PanelTitle   lipgloss.Style
	PanelItem    lipgloss.Style
	PanelCurrent lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Banner:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentGreen)),
		User:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Coach:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		System:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("240")),
		Tips:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		Prompt:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		Timestamp:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StatusBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		PanelTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentGreen)),
		PanelItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		PanelCurrent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
	}
}

// RenderBanner returns the ASCII art banner as a styled string.
func (s Styles) RenderBanner() string {
	var b strings.Builder
	for _, line := range bannerArt {
		_, _ = b.WriteString(s.Banner.Render(line))
		_, _ = b.WriteString("\n")
	}
	return b.String()
}

// welcomeTips contains getting started tips displayed under the banner.
var welcomeTips = []string{
	"Tips for getting started:",
	"  • Ask for a workout, a meal plan, or general training advice",
	"  • Press Tab to explore topics, /new to start a fresh chat",
	"  • Use /help to see available commands",
	"  • Press Ctrl+C to clear input, Ctrl+D to exit",
}

// RenderWelcomeTips returns the styled welcome tips.
func (s Styles) RenderWelcomeTips() string {
	var b strings.Builder
	for _, tip := range welcomeTips {
		_, _ = b.WriteString(s.Tips.Render(tip))
		_, _ = b.WriteString("\n")
	}
	return b.String()
}
