//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-gmath/internal/webdemo"
	"github.com/cwbudde/algo-gmath/mat"
	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		var w, h scalar.Float = 800, 600
		if len(args) > 1 {
			w, h = num(args[0]), num(args[1])
		}
		e, err := webdemo.NewEngine(w, h)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("setViewport", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Null()
		}
		if err := engine.SetViewport(num(args[0]), num(args[1])); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setCamera", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		p := args[0]
		err := engine.SetCamera(webdemo.CameraParams{
			Eye:         vec3(p.Get("eye")),
			Center:      vec3(p.Get("center")),
			Up:          vec3(p.Get("up")),
			FovYDeg:     num(p.Get("fov")),
			Near:        num(p.Get("near")),
			Far:         num(p.Get("far")),
			OrthoHeight: num(p.Get("orthoHeight")),
		})
		if err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setProjection", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		if err := engine.SetProjectionMode(args[0].String()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setSpin", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Null()
		}
		if err := engine.SetSpin(vec3(args[0]), num(args[1])); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("setRunning", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		engine.SetRunning(args[0].Truthy())
		return js.Null()
	}))

	api.Set("advance", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		engine.Advance(num(args[0]))
		return js.Null()
	}))

	// mvp returns the flat column-major matrix, ready for uniformMatrix4fv.
	api.Set("mvp", export(func(args []js.Value) any {
		if engine == nil {
			return js.Global().Get("Float32Array").New(0)
		}
		return mat4Array(engine.MVP())
	}))

	api.Set("wireframe", export(func(args []js.Value) any {
		if engine == nil {
			return js.Global().Get("Float32Array").New(0)
		}
		return float32Array(engine.Wireframe(nil))
	}))

	api.Set("perspective", export(func(args []js.Value) any {
		if len(args) < 4 {
			return js.Null()
		}
		m, err := mat.Perspective(scalar.DegToRad(num(args[0])), num(args[1]), num(args[2]), num(args[3]))
		if err != nil {
			return err.Error()
		}
		return mat4Array(m)
	}))

	api.Set("ortho", export(func(args []js.Value) any {
		if len(args) < 6 {
			return js.Null()
		}
		m, err := mat.Orthographic(num(args[0]), num(args[1]), num(args[2]), num(args[3]), num(args[4]), num(args[5]))
		if err != nil {
			return err.Error()
		}
		return mat4Array(m)
	}))

	api.Set("lookAt", export(func(args []js.Value) any {
		if len(args) < 3 {
			return js.Null()
		}
		m, err := mat.LookAt(vec3(args[0]), vec3(args[1]), vec3(args[2]))
		if err != nil {
			return err.Error()
		}
		return mat4Array(m)
	}))

	js.Global().Set("AlgoGMathDemo", api)
	select {}
}

// num reads a JS number. Any other type counts as missing and yields 0,
// since js.Value.Float panics on non-numbers.
func num(v js.Value) scalar.Float {
	if v.Type() != js.TypeNumber {
		return 0
	}
	return scalar.Float(v.Float())
}

// vec3 reads a JS array [x, y, z]. Non-arrays yield the zero vector.
func vec3(v js.Value) vec.Vec3 {
	if v.Type() != js.TypeObject {
		return vec.Vec3{}
	}
	if n := v.Get("length"); n.Type() != js.TypeNumber || n.Int() < 3 {
		return vec.Vec3{}
	}
	return vec.New3(num(v.Index(0)), num(v.Index(1)), num(v.Index(2)))
}

func mat4Array(m mat.Mat4) js.Value {
	arr := js.Global().Get("Float32Array").New(len(m))
	for i := range m {
		arr.SetIndex(i, float32(m[i]))
	}
	return arr
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
