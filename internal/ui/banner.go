package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#00ffff")
	colorMuted   = lipgloss.Color("#666666")

	bannerBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 3).
			Margin(1, 0)
	bannerTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	bannerVersion = lipgloss.NewStyle().Foreground(colorMuted)
	bannerTagline = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
)

// Banner renders the startup box
func Banner(version string) string {
	content := bannerTitle.Render("AI Commit Wizard") + " " + bannerVersion.Render("v"+version) +
		"\n" + bannerTagline.Render("conventional commits, suggested from your staged changes")
	return bannerBox.Render(content)
}

// ShowBanner writes the startup box to w
func ShowBanner(w io.Writer, version string) error {
	_, err := fmt.Fprintln(w, Banner(version))
	return err
}
