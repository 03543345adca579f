// Package ui renders run results for the terminal.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csiro-mentor/mentorctl/internal/orchestration"
	"github.com/csiro-mentor/mentorctl/internal/provisioning"
)

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen)

	failedStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	existsStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	urlStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)
)

const (
	checkMark = "[OK]"
	crossMark = "[!!]"
	skipMark  = "[  ]"
	existMark = "[==]"
)

// RenderSummary formats a deployment run as a step-by-step report.
func RenderSummary(result *orchestration.RunResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Deployment summary"))
	b.WriteString("\n\n")

	for _, step := range result.Steps {
		b.WriteString("  ")
		b.WriteString(renderStep(step))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if result.Success {
		b.WriteString(okStyle.Render("Deployment succeeded"))
		if result.URL != "" {
			b.WriteString("\n")
			b.WriteString(dimStyle.Render("App URL: "))
			b.WriteString(urlStyle.Render(result.URL))
		}
	} else {
		b.WriteString(failedStyle.Render("Deployment failed"))
	}
	b.WriteString("\n")

	return b.String()
}

func renderStep(step provisioning.StepResult) string {
	switch step.Outcome {
	case provisioning.OutcomeCompleted:
		return okStyle.Render(checkMark) + " " + step.Step
	case provisioning.OutcomeAlreadyExists:
		return existsStyle.Render(existMark) + " " + step.Step + dimStyle.Render(" (already exists)")
	case provisioning.OutcomeFailed:
		line := failedStyle.Render(crossMark) + " " + step.Step
		if step.Err != nil {
			line += "\n      " + failedStyle.Render(step.Err.Error())
		}
		return line
	case provisioning.OutcomeSkipped:
		return dimStyle.Render(skipMark + " " + step.Step + " (skipped)")
	default:
		return dimStyle.Render(skipMark) + " " + step.Step
	}
}
