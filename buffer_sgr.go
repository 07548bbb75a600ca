package vterm

// ApplySGR applies a sequence of parsed SGR attributes to the current pen.
// The pen is additive: unrecognized codes are ignored, and only the fields a
// given code addresses are touched.
func (b *Buffer) ApplySGR(attrs []SGRAttribute) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range attrs {
		applySGRAttribute(&b.pen, a)
	}
}

func applySGRAttribute(pen *Pen, a SGRAttribute) {
	switch a.Code {
	case 0:
		*pen = DefaultPen()
	case 1:
		pen.Bold = true
	case 2:
		pen.Faint = true
	case 3:
		pen.Italic = true
	case 4:
		pen.Underline = true
		pen.UnderlineStyle = UnderlineSingle
	case 5:
		pen.Blink = true
	case 6:
		pen.RapidBlink = true
	case 7:
		pen.Reverse = true
	case 8:
		pen.Conceal = true
	case 9:
		pen.Strikethrough = true
	case 21:
		pen.UnderlineStyle = UnderlineDouble
		pen.Underline = true
	case 22:
		pen.Bold, pen.Faint = false, false
	case 23:
		pen.Italic = false
	case 24:
		pen.Underline = false
		pen.UnderlineStyle = UnderlineNone
	case 25:
		pen.Blink, pen.RapidBlink = false, false
	case 27:
		pen.Reverse = false
	case 28:
		pen.Conceal = false
	case 29:
		pen.Strikethrough = false
	case 38:
		pen.Foreground = a.Color
	case 39:
		pen.Foreground = DefaultForeground
	case 48:
		pen.Background = a.Color
	case 49:
		pen.Background = DefaultBackground
	case 58:
		pen.UnderlineColor = a.Color
		pen.HasUnderlineColor = true
	case 59:
		pen.HasUnderlineColor = false
	default:
		switch {
		case a.Code >= 30 && a.Code <= 37:
			pen.Foreground = StandardColor(a.Code - 30)
		case a.Code >= 40 && a.Code <= 47:
			pen.Background = StandardColor(a.Code - 40)
		case a.Code >= 90 && a.Code <= 97:
			pen.Foreground = StandardColor(a.Code - 90 + 8)
		case a.Code >= 100 && a.Code <= 107:
			pen.Background = StandardColor(a.Code - 100 + 8)
		}
	}
}
