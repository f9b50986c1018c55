//go:build js && wasm
// +build js,wasm

package main

import (
	"fmt"
	"syscall/js"

	marmoset "github.com/marmoset-lang/marmoset"
)

// wasmBridge holds the sessions created from JS, keyed by the handle
// returned from marmoset_attach.
type wasmBridge struct {
	sessions map[int]*attachedSession
	nextID   int
}

type attachedSession struct {
	session *marmoset.Session
	onData  js.Func
}

// xtermWriter routes renderer output to an xterm.js Terminal instance.
type xtermWriter struct {
	term js.Value
}

func (w *xtermWriter) WriteString(s string) {
	w.term.Call("write", s)
}

// wasmAttach is called from JS: marmoset_attach(term, options) -> handle.
// term is an xterm.js Terminal; options is an optional object with
// engine ("marmoset" or "js"), banner, color, and debug fields. The
// bridge subscribes term.onData itself, so after attach the terminal is
// live; the handle is only needed for marmoset_execute and
// marmoset_detach.
func (b *wasmBridge) wasmAttach(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return -1
	}
	term := args[0]

	cfg := marmoset.DefaultConfig()
	engine := "marmoset"
	if len(args) > 1 && args[1].Type() == js.TypeObject {
		opts := args[1]
		if v := opts.Get("engine"); v.Type() == js.TypeString {
			engine = v.String()
		}
		if v := opts.Get("banner"); v.Type() == js.TypeString {
			cfg.Banner = v.String()
		}
		if v := opts.Get("color"); v.Type() == js.TypeBoolean {
			cfg.Color = v.Bool()
		}
		if v := opts.Get("debug"); v.Type() == js.TypeBoolean {
			cfg.Debug = v.Bool()
		}
	}

	var eval marmoset.Evaluator
	if engine == "js" {
		eval = marmoset.NewJSEvaluator()
	} else {
		eval = marmoset.NewMarmosetEvaluator()
	}

	session := marmoset.Attach(&xtermWriter{term: term}, eval, cfg)

	onData := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			session.HandleData([]byte(args[0].String()))
		}
		return nil
	})
	term.Call("onData", onData)

	b.nextID++
	id := b.nextID
	b.sessions[id] = &attachedSession{session: session, onData: onData}
	return id
}

// wasmExecute is called from JS: marmoset_execute(handle, source). It
// injects source as if the user typed it and pressed Enter.
func (b *wasmBridge) wasmExecute(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return false
	}
	att, ok := b.sessions[args[0].Int()]
	if !ok {
		return false
	}
	att.session.HandleData([]byte(args[1].String() + "\r"))
	return true
}

// wasmDetach is called from JS: marmoset_detach(handle). The session stops
// consuming input; the terminal itself is left untouched.
func (b *wasmBridge) wasmDetach(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return false
	}
	id := args[0].Int()
	att, ok := b.sessions[id]
	if !ok {
		return false
	}
	att.session.Detach()
	att.onData.Release()
	delete(b.sessions, id)
	return true
}

func main() {
	bridge := &wasmBridge{sessions: make(map[int]*attachedSession)}

	js.Global().Set("marmoset_attach", js.FuncOf(bridge.wasmAttach))
	js.Global().Set("marmoset_execute", js.FuncOf(bridge.wasmExecute))
	js.Global().Set("marmoset_detach", js.FuncOf(bridge.wasmDetach))

	fmt.Println("Marmoset WASM ready!")

	// Keep the WASM runtime alive
	select {}
}
