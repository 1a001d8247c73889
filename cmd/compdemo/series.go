package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cwbudde/algo-compdemo/dsp/effects/dynamics"
)

var seriesHeader = []string{"index", "envelope", "gain_reduction_db"}

// writeSeries emits one CSV row per visualization point.
func writeSeries(w io.Writer, vis dynamics.Visualization) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(seriesHeader); err != nil {
		return err
	}
	for i := 0; i < vis.Len(); i++ {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(vis.Envelope[i], 'g', -1, 64),
			strconv.FormatFloat(vis.GainReduction[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeSeriesFile(path string, vis dynamics.Visualization) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create series file: %w", err)
	}
	if err := writeSeries(f, vis); err != nil {
		f.Close()
		return fmt.Errorf("write series %s: %w", path, err)
	}
	return f.Close()
}
