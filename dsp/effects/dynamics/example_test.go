package dynamics_test

import (
	"fmt"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
	"github.com/cwbudde/algo-compdemo/dsp/effects/dynamics"
)

func ExampleGainReductionDB() {
	// 4:1 above -20 dB with a 10 dB soft knee.
	for _, level := range []float64{-30, -20, -10, 0} {
		fmt.Printf("%.0f dB in -> %.4f dB reduction\n", level, dynamics.GainReductionDB(level, -20, 10, 4))
	}

	// Output:
	// -30 dB in -> 0.0000 dB reduction
	// -20 dB in -> 0.9375 dB reduction
	// -10 dB in -> 7.5000 dB reduction
	// 0 dB in -> 15.0000 dB reduction
}

func ExampleCompress() {
	const sampleRate = 44100
	dc := make([]float64, sampleRate)
	for i := range dc {
		dc[i] = 0.5
	}
	in, err := buffer.FromChannels(sampleRate, dc)
	if err != nil {
		panic(err)
	}

	p := dynamics.Params{ThresholdDB: -20, Ratio: 4, Attack: 0.003, Release: 0.01}
	out := dynamics.Compress(in, p)
	m := dynamics.Measure(in, out)

	fmt.Printf("settled %.4f (%.2f dBFS), reduction %.2f dB\n",
		out.Channel(0)[sampleRate-1], dynamics.LevelToDB(out.Channel(0)[sampleRate-1]), m.MaxGainReductionDB)

	// Output:
	// settled 0.1495 (-16.51 dBFS), reduction 10.48 dB
}

func ExampleVisualize() {
	// 800 points divide 44000 samples evenly, so the last point still
	// covers signal.
	in := buffer.New(2, 44000, 44100)
	for i := range in.Channel(0) {
		in.Channel(0)[i] = 0.5
	}

	v := dynamics.Visualize(in, dynamics.Params{ThresholdDB: -20, Ratio: 4, Attack: 0.003, Release: 0.01}, 800)
	fmt.Println(len(v.Envelope), len(v.GainReduction))
	fmt.Printf("envelope %.2f, reduction %.2f dB\n", v.Envelope[799], v.GainReduction[799])

	// Output:
	// 800 800
	// envelope 0.50, reduction 10.48 dB
}

func ExampleNormalize() {
	b, err := buffer.FromChannels(44100, []float64{2, -1}, []float64{0.5, -4})
	if err != nil {
		panic(err)
	}

	dynamics.Normalize(b)
	fmt.Println(b.Channel(0), b.Channel(1))

	// Output:
	// [0.5 -0.25] [0.125 -1]
}
