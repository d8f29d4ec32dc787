package vtcore

// handleCSI dispatches one fully-collected CSI sequence. private is the
// marker byte captured between '[' and the parameters ('?', '>', '=', '<',
// or 0 for none); intermediate is the run of 0x20-0x2F bytes immediately
// before final, if any.
func (p *Parser) handleCSI(private byte, params []csiParam, intermediate []byte, final rune) {
	t := p.term

	if len(intermediate) == 1 {
		switch {
		case intermediate[0] == ' ' && final == 'q':
			t.SetCursorStyle(cursorStyleFromParam(paramDefault(params, 0, 0)))
			return
		case intermediate[0] == '!' && final == 'p':
			t.SoftReset()
			return
		case intermediate[0] == '"' && final == 'q':
			t.SetCharacterProtection(paramDefault(params, 0, 0) == 1)
			return
		case intermediate[0] == '$' && final == 'p':
			// DECRQM (request mode): not implemented, consumed without a reply.
			return
		}
		return
	}

	switch private {
	case '?':
		handleCSIPrivate(t, params, final)
	case '>':
		handleCSIGreater(t, params, final)
	case '=':
		handleCSIEquals(t, params, final)
	case '<':
		handleCSILess(t, params, final)
	default:
		handleCSIPlain(t, params, final)
	}
}

func handleCSIPlain(t *Terminal, params []csiParam, final rune) {
	switch final {
	case 'A':
		t.MoveUp(paramCount1(params, 0))
	case 'B':
		t.MoveDown(paramCount1(params, 0))
	case 'C':
		t.MoveForward(paramCount1(params, 0))
	case 'D':
		t.MoveBackward(paramCount1(params, 0))
	case 'E':
		t.MoveDownCr(paramCount1(params, 0))
	case 'F':
		t.MoveUpCr(paramCount1(params, 0))
	case 'G', '`':
		t.GotoCol(paramCount1(params, 0) - 1)
	case 'H', 'f':
		t.Goto(paramCount1(params, 0)-1, paramCount1(params, 1)-1)
	case 'I':
		t.MoveForwardTabs(paramCount1(params, 0))
	case 'J':
		t.ClearScreen(ClearMode(paramDefault(params, 0, 0)))
	case 'K':
		t.ClearLine(LineClearMode(paramDefault(params, 0, 0)))
	case 'L':
		t.InsertBlankLines(paramCount1(params, 0))
	case 'M':
		t.DeleteLines(paramCount1(params, 0))
	case 'P':
		t.DeleteChars(paramCount1(params, 0))
	case 'S':
		t.ScrollUp(paramCount1(params, 0))
	case 'T':
		t.ScrollDown(paramCount1(params, 0))
	case 'X':
		t.EraseChars(paramCount1(params, 0))
	case 'Z':
		t.MoveBackwardTabs(paramCount1(params, 0))
	case '@':
		t.InsertBlank(paramCount1(params, 0))
	case 'c':
		t.IdentifyTerminal(0)
	case 'd':
		t.GotoLine(paramCount1(params, 0) - 1)
	case 'e':
		t.MoveDown(paramCount1(params, 0))
	case 'g':
		t.ClearTabs(TabulationClearMode(paramDefault(params, 0, 0)))
	case 'h':
		setAnsiModes(t, params, true)
	case 'l':
		setAnsiModes(t, params, false)
	case 'm':
		applySGR(t, params)
	case 'n':
		t.DeviceStatus(paramDefault(params, 0, 0))
	case 'r':
		top := paramCount1(params, 0)
		bottom := paramDefault(params, 1, 0)
		t.SetScrollingRegion(top, bottom)
	case 's':
		t.SaveCursorCSI()
	case 't':
		handleWindowOp(t, params)
	case 'u':
		t.RestoreCursorCSI()
	}
}

// handleCSIPrivate dispatches CSI ? ... sequences: DECSET/DECRST, the
// DEC-private erase variants (DECSED/DECSEL), DEC-private DSR, and the
// Kitty keyboard-protocol query.
func handleCSIPrivate(t *Terminal, params []csiParam, final rune) {
	switch final {
	case 'h':
		for _, p := range params {
			t.SetMode(DecPrivateMode(paramRawValue(p)))
		}
	case 'l':
		for _, p := range params {
			t.UnsetMode(DecPrivateMode(paramRawValue(p)))
		}
	case 'J':
		t.SelectiveClearScreen(ClearMode(paramDefault(params, 0, 0)))
	case 'K':
		t.SelectiveClearLine(LineClearMode(paramDefault(params, 0, 0)))
	case 'n':
		switch paramDefault(params, 0, 0) {
		case 6:
			t.reportExtendedCursorPosition()
		case 26:
			t.reportCharsetQuery()
		}
	case 'u':
		t.ReportKeyboardMode()
	}
}

// handleCSIGreater dispatches CSI > ... sequences: DA2, xterm
// modifyOtherKeys, and the Kitty keyboard-protocol push.
func handleCSIGreater(t *Terminal, params []csiParam, final rune) {
	switch final {
	case 'c':
		t.IdentifyTerminal('>')
	case 'm':
		if paramDefault(params, 0, 0) == 4 {
			t.SetModifyOtherKeys(ModifyOtherKeys(paramDefault(params, 1, 0)))
		}
	case 'u':
		t.PushKeyboardMode(KeyboardMode(paramDefault(params, 0, 0)))
	}
}

// handleCSIEquals dispatches CSI = ... sequences: the Kitty
// keyboard-protocol set.
func handleCSIEquals(t *Terminal, params []csiParam, final rune) {
	if final != 'u' {
		return
	}
	mode := KeyboardMode(paramDefault(params, 0, 0))
	behavior := keyboardModeBehaviorFromParam(paramDefault(params, 1, 1))
	t.SetKeyboardMode(mode, behavior)
}

// handleCSILess dispatches CSI < ... sequences: the Kitty
// keyboard-protocol pop.
func handleCSILess(t *Terminal, params []csiParam, final rune) {
	if final == 'u' {
		t.PopKeyboardMode(paramCount1(params, 0))
	}
}

// handleWindowOp dispatches CSI Ps t (xterm window manipulation). Only the
// report operations this core has a meaningful answer for are implemented;
// operations that control an actual window (resize, iconify, raise, ...)
// have no effect on a headless core and are silently consumed.
func handleWindowOp(t *Terminal, params []csiParam) {
	switch paramDefault(params, 0, 0) {
	case 6:
		t.CellSizePixels()
	case 18:
		t.reportWindowTextAreaSize()
	}
}

// setAnsiModes handles CSI Pm h / CSI Pm l (no private marker), where the
// only modes with a defined effect in this core are IRM (4) and LNM (20).
func setAnsiModes(t *Terminal, params []csiParam, set bool) {
	for _, p := range params {
		var mode DecPrivateMode
		switch paramRawValue(p) {
		case 4:
			mode = DecModeInsert
		case 20:
			mode = DecModeLineFeedNewLine
		default:
			continue
		}
		if set {
			t.SetMode(mode)
		} else {
			t.UnsetMode(mode)
		}
	}
}

func cursorStyleFromParam(n int) CursorStyle {
	switch n {
	case 2:
		return CursorStyleSteadyBlock
	case 3:
		return CursorStyleBlinkingUnderline
	case 4:
		return CursorStyleSteadyUnderline
	case 5:
		return CursorStyleBlinkingBar
	case 6:
		return CursorStyleSteadyBar
	default:
		return CursorStyleBlinkingBlock
	}
}

func keyboardModeBehaviorFromParam(n int) KeyboardModeBehavior {
	switch n {
	case 2:
		return KeyboardModeBehaviorUnion
	case 3:
		return KeyboardModeBehaviorDifference
	default:
		return KeyboardModeBehaviorReplace
	}
}

// paramRawValue returns a CSI parameter's literal value, or 0 if it carried
// no digits (e.g. a bare ';' separator, or an entirely empty parameter
// list slot).
func paramRawValue(p csiParam) int {
	if !p.hasValue {
		return 0
	}
	return p.value
}

// paramDefault returns the parameter at idx, or def if idx is out of range
// or that parameter position carried no digits. Unlike paramCount1, an
// explicit 0 is returned as-is: ED/EL/DECSCA and friends all treat 0 as a
// meaningful, distinct mode rather than "use the default".
func paramDefault(params []csiParam, idx, def int) int {
	if idx >= len(params) || !params[idx].hasValue {
		return def
	}
	return params[idx].value
}

// paramCount1 returns the parameter at idx as a repeat count: missing or
// explicitly 0 both mean 1, per the VT100 convention for cursor movement
// and similar "do this N times" parameters.
func paramCount1(params []csiParam, idx int) int {
	v := paramDefault(params, idx, 1)
	if v < 1 {
		return 1
	}
	return v
}
