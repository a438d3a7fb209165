//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-dynamics/internal/webdemo"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("create", export(func(args []js.Value) any {
		rate := 60.0
		if len(args) > 0 {
			rate = args[0].Float()
		}
		e, err := webdemo.NewEngine(rate)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("seed", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Null()
		}
		engine.Seed(args[0].Float(), args[1].Float())
		return js.Null()
	}))

	api.Set("setTarget", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Null()
		}
		engine.SetTarget(args[0].Float(), args[1].Float())
		return js.Null()
	}))

	api.Set("setRunning", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		engine.SetRunning(args[0].Bool())
		return js.Null()
	}))

	api.Set("setPeriod", setter(func(v float64) error { return engine.SetPeriod(v) }))
	api.Set("setDamping", setter(func(v float64) error { return engine.SetDamping(v) }))
	api.Set("setResponse", setter(func(v float64) error { return engine.SetResponse(v) }))

	api.Set("update", export(func(args []js.Value) any {
		if engine == nil {
			return js.Global().Get("Float32Array").New(0)
		}
		n := 1
		if len(args) > 0 {
			n = args[0].Int()
		}
		return float32Array(engine.Render(n))
	}))

	api.Set("responseCurve", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		input := args[0]
		freqs := make([]float64, input.Length())
		for i := 0; i < input.Length(); i++ {
			freqs[i] = input.Index(i).Float()
		}
		return float32Array(engine.ResponseCurveDB(freqs))
	}))

	api.Set("stepCurve", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Global().Get("Float32Array").New(0)
		}
		curve, err := engine.StepCurve(args[0].Int())
		if err != nil {
			return err.Error()
		}
		return float32Array(curve)
	}))

	js.Global().Set("AlgoDynamicsDemo", api)
	select {}
}

func setter(fn func(float64) error) js.Func {
	return export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		if err := fn(args[0].Float()); err != nil {
			return err.Error()
		}
		return js.Null()
	})
}

func float32Array(buf []float32) js.Value {
	arr := js.Global().Get("Float32Array").New(len(buf))
	for i := range buf {
		arr.SetIndex(i, buf[i])
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
