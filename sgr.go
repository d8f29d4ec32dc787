package vtcore

import "strconv"

// applySGR interprets one fully-collected CSI ... m parameter list (Select
// Graphic Rendition) and feeds the resulting attribute changes to the
// terminal's character-attribute handler, one TerminalCharAttribute call per
// directive. An empty parameter list is treated as a single default (reset).
//
// Colon sub-parameters are accepted wherever the comma form is (e.g.
// "4:3" for curly underline, "38:2::R:G:B" for truecolor), matching the
// xterm/kitty convention of letting ':' stand in for ';' within a single
// color or underline-style directive.
func applySGR(t *Terminal, params []csiParam) {
	if len(params) == 0 {
		t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeReset})
		return
	}

	for i := 0; i < len(params); i++ {
		p := params[i]
		n := p.value
		if !p.hasValue {
			n = 0
		}

		switch {
		case n == 0:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeReset})
		case n == 1:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBold})
		case n == 2:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeDim})
		case n == 3:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeItalic})
		case n == 4:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: underlineAttrFor(p)})
		case n == 5:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBlinkSlow})
		case n == 6:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBlinkFast})
		case n == 7:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeReverse})
		case n == 8:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeHidden})
		case n == 9:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeStrike})
		case n == 10, n == 11, n == 12, n == 13, n == 14, n == 15, n == 16, n == 17, n == 18, n == 19:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeFont, FontIndex: n - 10})
		case n == 21:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeDoubleUnderline})
		case n == 22:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelBoldDim})
		case n == 23:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelItalic})
		case n == 24:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelUnderline})
		case n == 25:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelBlink})
		case n == 26:
			// Reserved (proportional spacing): ignored. CellFlagProportional
			// exists but nothing in this core sets it.
		case n == 27:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelReverse})
		case n == 28:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelHidden})
		case n == 29:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelStrike})
		case n >= 30 && n <= 37:
			idx := n - 30
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeForeground, NamedColor: &idx})
		case n == 38:
			attr, consumed := parseExtendedColor(CharAttributeForeground, p, params[i+1:])
			t.SetTerminalCharAttribute(attr)
			i += consumed
		case n == 39:
			def := NamedColorForeground
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeForeground, NamedColor: &def})
		case n >= 40 && n <= 47:
			idx := n - 40
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBackground, NamedColor: &idx})
		case n == 48:
			attr, consumed := parseExtendedColor(CharAttributeBackground, p, params[i+1:])
			t.SetTerminalCharAttribute(attr)
			i += consumed
		case n == 49:
			def := NamedColorBackground
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBackground, NamedColor: &def})
		case n == 50:
			// Cancel proportional spacing (26/50 pair); recorded but not acted upon.
		case n == 51:
			// Framed: unsupported, no-op.
		case n == 52:
			// Encircled: unsupported, no-op.
		case n == 53:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeOverline})
		case n == 54:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelOverline})
		case n == 55:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeCancelOverline})
		case n == 58:
			attr, consumed := parseExtendedColor(CharAttributeUnderlineColor, p, params[i+1:])
			t.SetTerminalCharAttribute(attr)
			i += consumed
		case n == 59:
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeUnderlineColor})
		case n >= 60 && n <= 65:
			// Ideogram attributes: recorded by no field in this core, no-op.
		case n >= 73 && n <= 75:
			// Superscript/subscript/neither: recorded by no field in this core, no-op.
		case n >= 90 && n <= 97:
			idx := n - 90 + 8
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeForeground, NamedColor: &idx})
		case n >= 100 && n <= 107:
			idx := n - 100 + 8
			t.SetTerminalCharAttribute(TerminalCharAttribute{Attr: CharAttributeBackground, NamedColor: &idx})
		default:
			// Unknown SGR parameter: consumed silently.
		}
	}
}

// underlineAttrFor resolves SGR 4, including its colon sub-parameter form
// (4:0 none, 4:1 single, 4:2 double, 4:3 curly, 4:4 dotted, 4:5 dashed).
func underlineAttrFor(p csiParam) CharAttribute {
	if len(p.subs) == 0 {
		return CharAttributeUnderline
	}
	switch p.subs[0] {
	case 0:
		return CharAttributeCancelUnderline
	case 2:
		return CharAttributeDoubleUnderline
	case 3:
		return CharAttributeCurlyUnderline
	case 4:
		return CharAttributeDottedUnderline
	case 5:
		return CharAttributeDashedUnderline
	default:
		return CharAttributeUnderline
	}
}

// parseExtendedColor resolves SGR 38/48/58, in both the standard comma form
// (38;5;N or 38;2;R;G;B, spread across following parameters) and the colon
// sub-parameter form (38:5:N or 38:2::R:G:B, with an empty colorspace ID
// field before R/G/B as commonly emitted by kitty/xterm). Returns the
// resulting attribute plus the count of following top-level parameters it
// consumed from the comma form (0 when the colon form supplied everything).
func parseExtendedColor(kind CharAttribute, p csiParam, rest []csiParam) (TerminalCharAttribute, int) {
	if len(p.subs) > 0 {
		switch p.subs[0] {
		case 5:
			if len(p.subs) >= 2 {
				idx := uint8(p.subs[1])
				return TerminalCharAttribute{Attr: kind, IndexedColor: &IndexedColorValue{Index: idx}}, 0
			}
		case 2:
			vals := p.subs[1:]
			// Some emitters insert an empty colorspace-ID sub-field before R/G/B.
			if len(vals) == 4 {
				vals = vals[1:]
			}
			if len(vals) >= 3 {
				rgb := &RGBColorValue{R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2])}
				return TerminalCharAttribute{Attr: kind, RGBColor: rgb}, 0
			}
		}
		return TerminalCharAttribute{Attr: kind}, 0
	}

	if len(rest) == 0 {
		return TerminalCharAttribute{Attr: kind}, 0
	}

	switch rest[0].value {
	case 5:
		if len(rest) >= 2 {
			idx := uint8(rest[1].value)
			return TerminalCharAttribute{Attr: kind, IndexedColor: &IndexedColorValue{Index: idx}}, 2
		}
		return TerminalCharAttribute{Attr: kind}, 1
	case 2:
		if len(rest) >= 4 {
			rgb := &RGBColorValue{R: uint8(rest[1].value), G: uint8(rest[2].value), B: uint8(rest[3].value)}
			return TerminalCharAttribute{Attr: kind, RGBColor: rgb}, 4
		}
		return TerminalCharAttribute{Attr: kind}, len(rest)
	default:
		return TerminalCharAttribute{Attr: kind}, 0
	}
}

// sgrStringFor renders a CellTemplate's current attributes back into an SGR
// parameter string, used by the DECRQSS "m" reply.
func sgrStringFor(template CellTemplate) string {
	parts := []int{0}

	if template.HasFlag(CellFlagBold) {
		parts = append(parts, 1)
	}
	if template.HasFlag(CellFlagDim) {
		parts = append(parts, 2)
	}
	if template.HasFlag(CellFlagItalic) {
		parts = append(parts, 3)
	}
	switch {
	case template.HasFlag(CellFlagDoubleUnderline):
		parts = append(parts, 21)
	case template.HasFlag(CellFlagUnderline), template.HasFlag(CellFlagCurlyUnderline),
		template.HasFlag(CellFlagDottedUnderline), template.HasFlag(CellFlagDashedUnderline):
		parts = append(parts, 4)
	}
	if template.HasFlag(CellFlagBlinkSlow) {
		parts = append(parts, 5)
	}
	if template.HasFlag(CellFlagBlinkFast) {
		parts = append(parts, 6)
	}
	if template.HasFlag(CellFlagReverse) {
		parts = append(parts, 7)
	}
	if template.HasFlag(CellFlagHidden) {
		parts = append(parts, 8)
	}
	if template.HasFlag(CellFlagStrike) {
		parts = append(parts, 9)
	}
	if template.HasFlag(CellFlagOverline) {
		parts = append(parts, 53)
	}

	out := ""
	for i, v := range parts {
		if i > 0 {
			out += ";"
		}
		out += strconv.Itoa(v)
	}
	return out
}
