// Command compdemo runs the compressor over a WAV file or a generated test
// signal and reports what it did.
//
// Usage:
//
//	compdemo [flags] [input.wav]
//
// Without an input file it processes the signal named by --signal.
//
// Examples:
//
//	compdemo --threshold=-20 --ratio 4 --knee 6
//	compdemo --threshold=-30 -r 8 --signal sine --series traces.csv
//	compdemo --threshold=-18 -r 3 --reference -o out.wav voice.wav
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
	"github.com/cwbudde/algo-compdemo/dsp/effects/dynamics"
	"github.com/cwbudde/algo-compdemo/internal/audiofile"
	"github.com/cwbudde/algo-compdemo/internal/webdemo"
)

var version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Version bool   `short:"v" help:"Show version information"`
	Input   string `arg:"" name:"input" optional:"" type:"existingfile" help:"WAV file to compress"`

	Signal     string  `short:"s" enum:"burst,sine,noise" default:"burst" help:"Test signal used when no input file is given"`
	SampleRate float64 `name:"sample-rate" default:"44100" help:"Sample rate of the generated test signal in Hz"`

	Threshold float64 `short:"t" default:"0" help:"Threshold in dBFS"`
	Knee      float64 `short:"k" default:"0" help:"Knee width in dB"`
	Ratio     float64 `short:"r" default:"1" help:"Compression ratio"`
	Attack    float64 `short:"a" default:"0.003" help:"Attack time in seconds"`
	Release   float64 `default:"0.01" help:"Release time in seconds"`

	Reference bool   `help:"Render with the reference compressor and peak-normalize"`
	Out       string `short:"o" type:"path" help:"Write the processed audio to this WAV file"`
	Series    string `type:"path" help:"Write the visualization traces to this CSV file"`
	Width     int    `short:"w" default:"800" help:"Number of visualization points"`
}

// Params maps the flags onto compressor parameters.
func (c *CLI) Params() dynamics.Params {
	return dynamics.Params{
		ThresholdDB: c.Threshold,
		KneeDB:      c.Knee,
		Ratio:       c.Ratio,
		Attack:      c.Attack,
		Release:     c.Release,
	}
}

func main() {
	cliArgs := &CLI{}
	kong.Parse(cliArgs,
		kong.Name("compdemo"),
		kong.Description("Feed-forward compressor demonstration"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Version {
		PrintVersion(os.Stdout, version)
		os.Exit(0)
	}

	if err := run(cliArgs, os.Stdout); err != nil {
		PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(c *CLI, stdout io.Writer) error {
	p := c.Params()
	if err := p.Validate(); err != nil {
		return err
	}

	session, err := webdemo.NewSession(c.Width)
	if err != nil {
		return err
	}
	in, source, err := loadInput(c)
	if err != nil {
		return err
	}
	if err := session.Load(in); err != nil {
		return err
	}
	if err := session.SetParams(p); err != nil {
		return err
	}

	out := session.Processed()
	mode := "sample-accurate"
	if c.Reference {
		if out, err = session.Reference(); err != nil {
			return err
		}
		mode = "reference"
	}

	PrintReport(stdout, Report{
		Source:  source,
		Mode:    mode,
		Input:   in,
		Params:  session.Params(),
		Metrics: dynamics.Measure(in, out),
		Vis:     session.Visualization(),
	})

	if c.Out != "" {
		if err := audiofile.Save(c.Out, out); err != nil {
			return err
		}
		PrintWrote(stdout, "audio", c.Out)
	}
	if c.Series != "" {
		if err := writeSeriesFile(c.Series, session.Visualization()); err != nil {
			return err
		}
		PrintWrote(stdout, "series", c.Series)
	}
	return nil
}

// loadInput returns the buffer to process and a label describing it.
func loadInput(c *CLI) (*buffer.AudioBuffer, string, error) {
	if c.Input != "" {
		buf, err := audiofile.Load(c.Input)
		if err != nil {
			return nil, "", err
		}
		return buf, c.Input, nil
	}
	buf, err := webdemo.DemoSignal(c.Signal, c.SampleRate)
	if err != nil {
		return nil, "", err
	}
	return buf, fmt.Sprintf("%s (generated)", c.Signal), nil
}
