package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
	"github.com/cwbudde/algo-compdemo/dsp/core"
	"github.com/cwbudde/algo-compdemo/dsp/effects/dynamics"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#0077CC")
	accentColor  = lipgloss.Color("#FFA500")
	mutedColor   = lipgloss.Color("#888888")
	textColor    = lipgloss.Color("#FFFFFF")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A40000"))

	keyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(22)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	flagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00AA00")).
			Bold(true)

	defaultStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)

// Report is everything printed after a processing run.
type Report struct {
	Source  string
	Mode    string
	Input   *buffer.AudioBuffer
	Params  dynamics.Params
	Metrics dynamics.Metrics
	Vis     dynamics.Visualization
}

// PrintReport writes a styled summary of r to w.
func PrintReport(w io.Writer, r Report) {
	fmt.Fprintln(w, titleStyle.Render("Compressor demo"))

	fmt.Fprintln(w, sectionStyle.Render("Input"))
	printKV(w, "Source", r.Source)
	printKV(w, "Format", fmt.Sprintf("%d ch, %.0f Hz, %.3f s",
		r.Input.Channels(), r.Input.SampleRate(), r.Input.Duration()))

	fmt.Fprintln(w, sectionStyle.Render("Settings"))
	printKV(w, "Mode", r.Mode)
	printKV(w, "Threshold", fmt.Sprintf("%.1f dB", r.Params.ThresholdDB))
	printKV(w, "Knee", fmt.Sprintf("%.1f dB", r.Params.KneeDB))
	printKV(w, "Ratio", fmt.Sprintf("%.2f:1", r.Params.Ratio))
	printKV(w, "Attack", fmt.Sprintf("%.1f ms", r.Params.Attack*1000))
	printKV(w, "Release", fmt.Sprintf("%.1f ms", r.Params.Release*1000))
	if r.Mode == "reference" {
		printKV(w, "Makeup", fmt.Sprintf("%.2f dB", dynamics.ReferenceMakeupDB(r.Params)))
	}

	fmt.Fprintln(w, sectionStyle.Render("Result"))
	printKV(w, "Input peak", formatPeak(r.Metrics.InputPeak))
	printKV(w, "Output peak", formatPeak(r.Metrics.OutputPeak))
	printKV(w, "Input RMS", fmt.Sprintf("%.2f dBFS (crest %.2f dB)",
		r.Metrics.Input.RMSDB, r.Metrics.Input.CrestFactorDB))
	printKV(w, "Output RMS", fmt.Sprintf("%.2f dBFS (crest %.2f dB)",
		r.Metrics.Output.RMSDB, r.Metrics.Output.CrestFactorDB))
	printKV(w, "Max gain reduction", fmt.Sprintf("%.2f dB", r.Metrics.MaxGainReductionDB))
	printKV(w, "Display reduction", fmt.Sprintf("%.2f dB peak over %d points",
		maxOf(r.Vis.GainReduction), r.Vis.Len()))
	fmt.Fprintln(w)
}

// PrintWrote reports a written output file.
func PrintWrote(w io.Writer, kind, path string) {
	printKV(w, "Wrote "+kind, path)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer, version string) {
	fmt.Fprintln(w, titleStyle.Render("compdemo"))
	fmt.Fprintf(w, "%s %s\n", keyStyle.Render("Version:"), valueStyle.Render(version))
}

// PrintError prints an error message.
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", errorStyle.Render("Error:"), message)
}

// StyledHelpPrinter renders kong help with the compdemo styles.
func StyledHelpPrinter(options kong.HelpOptions) func(options kong.HelpOptions, ctx *kong.Context) error {
	return func(options kong.HelpOptions, ctx *kong.Context) error {
		var sb strings.Builder

		sb.WriteString(titleStyle.Render("compdemo"))
		sb.WriteString("\n")
		sb.WriteString(sectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(fmt.Sprintf("%s [flags] [input]", ctx.Model.Name))
		sb.WriteString("\n\n")

		sb.WriteString(sectionStyle.Render("Flags:"))
		sb.WriteString("\n")
		sb.WriteString("  ")
		sb.WriteString(flagStyle.Render("-h, --help"))
		sb.WriteString("  Show context-sensitive help.\n")
		for _, f := range ctx.Model.Node.Flags {
			if f.Name == "help" {
				continue
			}
			name := "--" + f.Name
			if f.Short != 0 {
				name = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
			}
			sb.WriteString("  ")
			sb.WriteString(flagStyle.Render(name))
			if f.Help != "" {
				sb.WriteString("  ")
				sb.WriteString(f.Help)
			}
			if f.HasDefault {
				sb.WriteString(" ")
				sb.WriteString(defaultStyle.Render("(default: " + f.Default + ")"))
			}
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	}
}

func printKV(w io.Writer, key, value string) {
	fmt.Fprintf(w, "  %s%s\n", keyStyle.Render(key), valueStyle.Render(value))
}

func formatPeak(peak float64) string {
	return fmt.Sprintf("%.4f (%.2f dBFS)", peak, core.LinearToDB(peak))
}

func maxOf(s dynamics.Series) float64 {
	m := 0.0
	for _, v := range s {
		m = max(m, v)
	}
	return m
}
