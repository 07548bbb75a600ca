//go:build windows

package main

import "os"

// Windows has no SIGWINCH; tcell delivers resizes purely through
// tcell.EventResize, so this channel is just never signaled.
var sigWinch os.Signal = sigWinchNone{}

type sigWinchNone struct{}

func (sigWinchNone) String() string { return "no-op" }
func (sigWinchNone) Signal()        {}
