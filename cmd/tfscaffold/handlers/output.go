package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/imamik/tfscaffold/internal/config"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorRed   = lipgloss.Color("#ef4444")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen)

	failStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// isInteractiveTTY reports whether stdout is a terminal. Replaced in tests.
var isInteractiveTTY = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// style renders s with st when stdout is a terminal.
func style(st lipgloss.Style, s string) string {
	if !isInteractiveTTY() {
		return s
	}
	return st.Render(s)
}

// printViolations lists every problem found in the environment file.
func printViolations(path string, violations []string) {
	fmt.Println(style(failStyle, fmt.Sprintf("✗ %s is invalid", path)))
	fmt.Println()
	for _, v := range violations {
		fmt.Printf("  - %s\n", v)
	}
	fmt.Println()
	fmt.Println(style(dimStyle, fmt.Sprintf("%d problem(s) found", len(violations))))
}

// printEnvironmentSummary prints the identity and service selection of spec.
func printEnvironmentSummary(spec *config.EnvironmentSpec) {
	fmt.Println(style(sectionStyle, "Environment"))
	fmt.Printf("  Name:      %s\n", spec.Name)
	fmt.Printf("  Region:    %s\n", spec.Region)
	fmt.Printf("  VPC CIDR:  %s\n", spec.VPCCIDR)
	fmt.Printf("  Services:  %s\n", serviceList(spec.Services))
}

func serviceList(s *config.Services) string {
	var names []string
	if s.ObjectStorageEnabled() {
		names = append(names, "s3")
	}
	if s.RelationalDatabaseEnabled() {
		names = append(names, "rds")
	}
	if s.ContainerClusterEnabled() {
		names = append(names, "ecs")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
