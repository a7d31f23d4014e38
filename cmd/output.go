package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/mozzart/interval"
	"github.com/jsphweid/mozzart/model"
	"github.com/jsphweid/mozzart/pitch"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Faint(true).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

func joinInts[A ~int | ~uint8](values []A) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return strings.Join(parts, " ")
}

func printRow(w io.Writer, label string, value string) {
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value)))
}

func printPitches(w io.Writer, title string, pitches []model.Pitch) {
	fmt.Fprintln(w, titleStyle.Render(title))
	printRow(w, "pitches", joinInts(pitches))
	printRow(w, "names", strings.Join(pitch.Names(pitches), " "))
}

func printIntervals(w io.Writer, title string, intervals []model.Interval) {
	fmt.Fprintln(w, titleStyle.Render(title))
	printRow(w, "semitones", joinInts(intervals))
	printRow(w, "names", strings.Join(interval.Names(intervals), ", "))
}
