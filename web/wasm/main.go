//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-compdemo/dsp/buffer"
	"github.com/cwbudde/algo-compdemo/dsp/effects/dynamics"
	"github.com/cwbudde/algo-compdemo/internal/webdemo"
)

var (
	session *webdemo.Session
	funcs   []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		width := webdemo.DefaultWidth
		if len(args) > 0 {
			width = args[0].Int()
		}
		s, err := webdemo.NewSession(width)
		if err != nil {
			return err.Error()
		}
		session = s
		return js.Null()
	}))

	// load(sampleRate, Float32Array...) or load(sampleRate, "burst").
	api.Set("load", export(func(args []js.Value) any {
		if session == nil || len(args) < 2 {
			return js.Null()
		}
		sr := args[0].Float()
		if args[1].Type() == js.TypeString {
			if err := session.LoadDemo(args[1].String(), sr); err != nil {
				return err.Error()
			}
			return js.Null()
		}
		channels := make([][]float64, len(args)-1)
		for c, arr := range args[1:] {
			channels[c] = toFloat64s(arr)
		}
		buf, err := buffer.FromChannels(sr, channels...)
		if err != nil {
			return err.Error()
		}
		if err := session.Load(buf); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setWidth", export(func(args []js.Value) any {
		if session == nil || len(args) < 1 {
			return js.Null()
		}
		if err := session.SetWidth(args[0].Int()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setParams", export(func(args []js.Value) any {
		if session == nil || len(args) < 1 {
			return js.Null()
		}
		p := args[0]
		err := session.SetParams(dynamics.Params{
			ThresholdDB: p.Get("threshold").Float(),
			KneeDB:      p.Get("knee").Float(),
			Ratio:       p.Get("ratio").Float(),
			Attack:      p.Get("attack").Float(),
			Release:     p.Get("release").Float(),
		})
		if err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("params", export(func(args []js.Value) any {
		if session == nil {
			return js.Null()
		}
		p := session.Params()
		return map[string]any{
			"threshold": p.ThresholdDB,
			"knee":      p.KneeDB,
			"ratio":     p.Ratio,
			"attack":    p.Attack,
			"release":   p.Release,
		}
	}))

	api.Set("processed", export(func(args []js.Value) any {
		if session == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		return channelArray(session.Processed(), args[0].Int())
	}))

	api.Set("reference", export(func(args []js.Value) any {
		if session == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		ref, err := session.Reference()
		if err != nil {
			return js.Global().Get("Float32Array").New(0)
		}
		return channelArray(ref, args[0].Int())
	}))

	api.Set("visualize", export(func(args []js.Value) any {
		if session == nil {
			return js.Null()
		}
		vis := session.Visualization()
		return map[string]any{
			"envelope":      toFloat32Array(vis.Envelope),
			"gainReduction": toFloat32Array(vis.GainReduction),
		}
	}))

	api.Set("metrics", export(func(args []js.Value) any {
		if session == nil {
			return js.Null()
		}
		m, err := session.Metrics()
		if err != nil {
			return js.Null()
		}
		return map[string]any{
			"inputPeak":          m.InputPeak,
			"outputPeak":         m.OutputPeak,
			"maxGainReductionDB": m.MaxGainReductionDB,
			"inputRMSDB":         m.Input.RMSDB,
			"outputRMSDB":        m.Output.RMSDB,
			"outputCrestDB":      m.Output.CrestFactorDB,
		}
	}))

	api.Set("gainCurve", export(func(args []js.Value) any {
		if session == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		return toFloat32Array(session.GainCurve(toFloat64s(args[0])))
	}))

	js.Global().Set("AlgoCompressorDemo", api)
	select {}
}

func channelArray(buf *buffer.AudioBuffer, channel int) js.Value {
	if buf == nil || channel < 0 || channel >= buf.Channels() {
		return js.Global().Get("Float32Array").New(0)
	}
	return toFloat32Array(buf.Channel(channel))
}

func toFloat64s(arr js.Value) []float64 {
	out := make([]float64, arr.Length())
	for i := range out {
		out[i] = arr.Index(i).Float()
	}
	return out
}

func toFloat32Array(data []float64) js.Value {
	arr := js.Global().Get("Float32Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
