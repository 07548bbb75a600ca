//go:build !windows

package main

import (
	"os"
	"syscall"
)

var sigWinch os.Signal = syscall.SIGWINCH
