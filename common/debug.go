package common

import (
	"log"

	"github.com/gopherjs/gopherjs/js"
)

var EnableDebug = true

// console returns the browser console, or nil when not running under GopherJS.
func console() *js.Object {
	if js.Global == nil {
		return nil
	}
	c := js.Global.Get("console")
	if c == nil || c == js.Undefined {
		return nil
	}
	return c
}

func emit(method string, args []interface{}) {
	if c := console(); c != nil {
		c.Call(method, args...)
		return
	}
	log.Println(append([]interface{}{method + ":"}, args...)...)
}

// Debug logs a message to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		emit("log", args)
	}
}

// DebugWarn logs a warning if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		emit("warn", args)
	}
}

// DebugError logs an error. Errors are always logged.
func DebugError(args ...interface{}) {
	emit("error", args)
}
