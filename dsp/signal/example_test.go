package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-compdemo/dsp/core"
	"github.com/cwbudde/algo-compdemo/dsp/signal"
)

func ExampleGenerator_Sine() {
	g := signal.NewGenerator(core.WithSampleRate(1000))
	b, err := g.Sine(250, 1, 0.005)
	if err != nil {
		panic(err)
	}
	x := b.Channel(0)
	if math.Abs(x[4]) < 1e-12 {
		x[4] = 0
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}
