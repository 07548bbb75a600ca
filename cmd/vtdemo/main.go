// Command vtdemo is a reference embedder for vterm: it spawns a shell behind
// a PTY, feeds the PTY's output through a vterm.Screen, and paints the
// resulting grid to the real host terminal with tcell. It exists to exercise
// the engine end to end, not as a full-featured terminal emulator.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/coldglass/vterm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	logFile, err := os.OpenFile("vtdemo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		defer logFile.Close()
	}
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	tscreen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell.NewScreen: %w", err)
	}
	if err := tscreen.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	defer tscreen.Fini()

	cols, rows := tscreen.Size()

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return fmt.Errorf("pty.StartWithSize: %w", err)
	}
	defer ptmx.Close()

	redraw := make(chan struct{}, 1)
	signalRedraw := func() {
		select {
		case redraw <- struct{}{}:
		default:
		}
	}

	vscreen, err := vterm.NewScreenFromConfig(vterm.Config{
		Cols: cols, Rows: rows,
		TermType:       "xterm-256color",
		AmbiguousWidth: vterm.AmbiguousWidthNarrow,
		MaxScrollback:  10000,
	}, vterm.Callbacks{
		OnDirty: signalRedraw,
		OnBell:  func() { _ = tscreen.Beep() },
		OnTitleChange: func(title string) {
			_ = title
		},
		OnReply: func(data []byte) {
			_, _ = ptmx.Write(data)
		},
	})
	if err != nil {
		return fmt.Errorf("vterm.NewScreenFromConfig: %w", err)
	}
	vscreen.SetLogger(func(msg string, args ...any) { logger.Debug(msg, args...) })

	childDone := make(chan error, 1)
	go func() { childDone <- cmd.Wait() }()

	go pumpPTYOutput(ptmx, vscreen, logger)

	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, sigWinch)
	defer signal.Stop(sigwinch)

	tcellEvents := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := tscreen.PollEvent()
			if ev == nil {
				return
			}
			tcellEvents <- ev
		}
	}()

	render(tscreen, vscreen)

	for {
		select {
		case err := <-childDone:
			_ = err
			return nil
		case <-sigwinch:
			resize(tscreen, vscreen, ptmx)
		case ev := <-tcellEvents:
			switch e := ev.(type) {
			case *tcell.EventResize:
				resize(tscreen, vscreen, ptmx)
				_ = e
			case *tcell.EventKey:
				if data := encodeKey(e, vscreen); data != nil {
					_, _ = ptmx.Write(data)
				}
			}
		case <-redraw:
			render(tscreen, vscreen)
		}
	}
}

func pumpPTYOutput(ptmx *os.File, vscreen *vterm.Screen, logger *slog.Logger) {
	buf := make([]byte, 65536)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			if _, werr := vscreen.Write(buf[:n]); werr != nil {
				logger.Error("screen write failed", "err", werr)
				return
			}
		}
		if err != nil {
			return
		}
	}
}

func resize(tscreen tcell.Screen, vscreen *vterm.Screen, ptmx *os.File) {
	tscreen.Sync()
	cols, rows := tscreen.Size()
	if err := vscreen.Resize(cols, rows); err != nil {
		return
	}
	_ = pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

// render performs a full repaint of the active buffer. vterm fires OnDirty
// once per changing command; the demo's one-slot redraw channel coalesces
// those, so a burst of output leads to few repaints.
func render(tscreen tcell.Screen, vscreen *vterm.Screen) {
	buf := vscreen.Active()
	cols, rows := buf.Size()
	for y := 0; y < rows; y++ {
		line := buf.Line(y)
		for x := 0; x < cols && x < len(line); x++ {
			cell := line[x]
			if cell.IsContinuation() {
				continue
			}
			style := cellStyle(cell)
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			tscreen.SetContent(x, y, r, []rune(cell.Combining), style)
		}
	}
	if vscreen.CursorVisible() {
		x, y := buf.GetCursor()
		tscreen.ShowCursor(x, y)
	} else {
		tscreen.HideCursor()
	}
	tscreen.Show()
}

func cellStyle(c vterm.Cell) tcell.Style {
	style := tcell.StyleDefault
	if !c.Foreground.IsDefault() {
		style = style.Foreground(tcell.NewRGBColor(int32(c.Foreground.R), int32(c.Foreground.G), int32(c.Foreground.B)))
	}
	if !c.Background.IsDefault() {
		style = style.Background(tcell.NewRGBColor(int32(c.Background.R), int32(c.Background.G), int32(c.Background.B)))
	}
	style = style.Bold(c.Bold).Italic(c.Italic).Underline(c.Underline).
		Blink(c.Blink || c.RapidBlink).Reverse(c.Reverse).StrikeThrough(c.Strikethrough)
	return style
}

// encodeKey translates a host keystroke into the bytes the shell expects,
// honoring DECCKM (application cursor keys) for the arrow/Home/End cluster.
func encodeKey(ev *tcell.EventKey, vscreen *vterm.Screen) []byte {
	app := vscreen.AppCursorKeysMode()
	cursorPrefix := "\x1b["
	if app {
		cursorPrefix = "\x1bO"
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return []byte(cursorPrefix + "A")
	case tcell.KeyDown:
		return []byte(cursorPrefix + "B")
	case tcell.KeyRight:
		return []byte(cursorPrefix + "C")
	case tcell.KeyLeft:
		return []byte(cursorPrefix + "D")
	case tcell.KeyHome:
		return []byte(cursorPrefix + "H")
	case tcell.KeyEnd:
		return []byte(cursorPrefix + "F")
	case tcell.KeyEnter:
		return []byte{'\r'}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{0x7f}
	case tcell.KeyTab:
		return []byte{'\t'}
	case tcell.KeyEscape:
		return []byte{0x1b}
	case tcell.KeyCtrlC:
		return []byte{0x03}
	case tcell.KeyCtrlD:
		return []byte{0x04}
	case tcell.KeyDelete:
		return []byte("\x1b[3~")
	case tcell.KeyPgUp:
		return []byte("\x1b[5~")
	case tcell.KeyPgDn:
		return []byte("\x1b[6~")
	case tcell.KeyRune:
		return []byte(string(ev.Rune()))
	}
	return nil
}
