package vtcore

import "fmt"

// respond writes a formatted terminal response through the response provider.
// The window-report, extended-CPR, charset-query, title and DECRQSS replies
// below go through it; the DA, DSR/CPR and cell-size replies are written
// directly by their handlers in handler.go.
func (t *Terminal) respond(format string, args ...any) {
	t.writeResponseString(fmt.Sprintf(format, args...))
}

// reportWindowTextAreaSize replies to CSI 18 t with the text-area size in
// characters: ESC [ 8 ; rows ; cols t.
func (t *Terminal) reportWindowTextAreaSize() {
	t.mu.RLock()
	rows, cols := t.rows, t.cols
	t.mu.RUnlock()
	t.respond("\x1b[8;%d;%dt", rows, cols)
}

// reportExtendedCursorPosition replies to CSI ? 6 n with the DEC-private
// form of CPR, distinguishing it from the plain ANSI CSI 6 n reply.
func (t *Terminal) reportExtendedCursorPosition() {
	t.mu.RLock()
	row, col := t.cursor.Row, t.cursor.Col
	t.mu.RUnlock()
	t.respond("\x1b[?%d;%dR", row+1, col+1)
}

// reportCharsetQuery replies to CSI ? 26 n. This core only ever selects the
// ASCII or DEC special line-drawing set, so it always reports the
// multinational character set in use.
func (t *Terminal) reportCharsetQuery() {
	t.respond("\x1b[?27;1n")
}

// reportTitle replies to OSC 21 with the current window title, echoing the
// same command number the query used (matching the OSC 10/11/12 dynamic-color
// reply convention) and terminator, so "OSC 2;X ST" followed by "OSC 21 ST"
// round-trips to exactly X.
func (t *Terminal) reportTitle(term string) {
	t.respond("\x1b]21;%s%s", t.Title(), term)
}

// reportDECRQSS replies to a DCS $ q request with the terminal's current
// value for the requested setting (prefix "0$r", a valid request per
// ECMA-48), or the "invalid request" form "1$r" if the setting name is not
// recognized. pt is the raw bytes between "$q" and the string terminator,
// e.g. "m" for SGR or "r" for DECSTBM.
func (t *Terminal) reportDECRQSS(pt string) {
	switch pt {
	case "m":
		t.mu.RLock()
		template := t.template
		t.mu.RUnlock()
		t.respond("\x1bP0$r%sm\x1b\\", sgrStringFor(template))
	case "r":
		t.mu.RLock()
		top, bottom := t.scrollTop+1, t.scrollBottom
		t.mu.RUnlock()
		t.respond("\x1bP0$r%d;%dr\x1b\\", top, bottom)
	default:
		t.respond("\x1bP1$r\x1b\\")
	}
}
