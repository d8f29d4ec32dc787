package vtcore

import "unicode/utf8"

// parserState names the states of the ECMA-48 / DEC VT500-series
// escape-sequence parser, following the state machine popularized by Paul
// Williams's VT500 parser description, generalized here to keep CSI's and
// DCS's intermediate/ignore states distinct rather than collapsed.
type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateEscapeIntermediate
	stateCSIEntry
	stateCSIParam
	stateCSIIntermediate
	stateCSIIgnore
	stateOSCString
	stateDCSEntry
	stateDCSParam
	stateDCSIntermediate
	stateDCSPassthrough
	stateDCSIgnore
	stateSOSPMAPCString
)

// maxControlStringLen bounds OSC/DCS/SOS/PM/APC payload buffering. Bytes
// beyond the limit are still consumed (so the state machine stays in sync
// with the stream) but are not appended to the buffer.
const maxControlStringLen = 8 * 1024

// csiParam is one top-level CSI parameter, with any colon-separated
// sub-parameters it carried (used by SGR's "4:3" and "38:2:0:R:G:B" forms).
type csiParam struct {
	value    int
	hasValue bool
	subs     []int
}

// stringKind records which control string is being collected in
// stateSOSPMAPCString, since all three share one buffer and exit path.
type stringKind int

const (
	stringKindSOS stringKind = iota
	stringKindPM
	stringKindAPC
)

// Parser implements the ECMA-48 / DEC VT500 escape-sequence state machine,
// turning a stream of runes into calls on the bound Terminal's handler
// methods. Terminal.Write feeds it through Decoder, which handles UTF-8
// reassembly first since escape sequences themselves are always pure ASCII.
type Parser struct {
	term  *Terminal
	state parserState

	// CSI (and DCS entry, which shares the same parameter grammar) collection.
	// curVal/curHasDigits track whichever colon-separated field is currently
	// being typed. Once the first ':' is seen within a parameter, that field
	// is frozen off into curBaseVal/curBaseHasDigits (the param's base value,
	// e.g. the "4" in "4:3") and every later ':'-terminated field goes into
	// curSubs instead, so the base is never overwritten by a later sub-field.
	params           []csiParam
	curVal           int
	curHasDigits     bool
	curBaseSet       bool
	curBaseVal       int
	curBaseHasDigits bool
	curSubs          []int
	private          byte // '<', '=', '>', '?', or 0 for none
	intermediate     []byte

	// OSC / SOS / PM / APC string collection.
	strKind stringKind
	strBuf  []byte

	// DCS passthrough payload, once a final byte has selected a DCS function.
	dcsFinal rune
	dcsBuf   []byte

	// escSeen marks that, while collecting a string, an ESC was seen and we
	// are waiting to see whether the next rune is '\\' (confirming ST) or
	// something else (abandoning the string and starting a fresh sequence).
	escSeen bool
}

func newParser(t *Terminal) *Parser {
	return &Parser{term: t, state: stateGround}
}

// feed advances the state machine by one rune. Multi-byte runes only ever
// reach this as a single call (Decoder assembles them); every state inside
// an escape sequence deals exclusively with the ASCII subset, so non-ASCII
// runes are only meaningful in stateGround or inside a string payload.
func (p *Parser) feed(r rune) {
	if (r == 0x18 || r == 0x1A) && p.state != stateGround {
		p.abort()
		if r == 0x1A {
			p.term.Substitute()
		}
		return
	}

	switch p.state {
	case stateGround:
		p.feedGround(r)
	case stateEscape:
		p.feedEscape(r)
	case stateEscapeIntermediate:
		p.feedEscapeIntermediate(r)
	case stateCSIEntry:
		p.feedCSIEntry(r)
	case stateCSIParam:
		p.feedCSIParam(r)
	case stateCSIIntermediate:
		p.feedCSIIntermediate(r)
	case stateCSIIgnore:
		p.feedCSIIgnore(r)
	case stateOSCString:
		p.feedOSC(r)
	case stateDCSEntry:
		p.feedDCSEntry(r)
	case stateDCSParam:
		p.feedDCSParam(r)
	case stateDCSIntermediate:
		p.feedDCSIntermediate(r)
	case stateDCSPassthrough:
		p.feedDCSPassthrough(r)
	case stateDCSIgnore:
		p.feedDCSIgnore(r)
	case stateSOSPMAPCString:
		p.feedString(r)
	}
}

// abort discards any in-progress sequence and returns to stateGround. Used
// by CAN/SUB.
func (p *Parser) abort() {
	p.state = stateGround
	p.strBuf = nil
	p.dcsBuf = nil
	p.escSeen = false
}

// --- GROUND ---

func (p *Parser) feedGround(r rune) {
	switch {
	case r == 0x1B:
		p.beginEscape()
	case r < 0x20 || r == 0x7F:
		p.execute(r)
	default:
		p.term.Input(r)
	}
}

// execute runs the immediate effect of a C0 control code. Called from
// stateGround and, for codes other than ESC/CAN/SUB, from mid-sequence
// states too — ECMA-48 lets C0 controls interleave with an escape sequence
// in progress without disturbing it.
func (p *Parser) execute(r rune) {
	switch r {
	case 0x07:
		p.term.Bell()
	case 0x08:
		p.term.Backspace()
	case 0x09:
		p.term.Tab(1)
	case 0x0A, 0x0B, 0x0C:
		p.term.LineFeed()
	case 0x0D:
		p.term.CarriageReturn()
	case 0x0E:
		p.term.SetActiveCharset(int(CharsetIndexG1))
	case 0x0F:
		p.term.SetActiveCharset(int(CharsetIndexG0))
	case 0x1A:
		p.term.Substitute()
	default:
		// ENQ, NUL, DC1/DC3 (XON/XOFF), DEL, and other C0/C1 codes with no
		// terminal-visible effect in this core.
	}
}

// --- ESCAPE ---

func (p *Parser) beginEscape() {
	p.params = p.params[:0]
	p.curVal = 0
	p.curHasDigits = false
	p.curBaseSet = false
	p.curBaseVal = 0
	p.curBaseHasDigits = false
	p.curSubs = nil
	p.private = 0
	p.intermediate = p.intermediate[:0]
	p.state = stateEscape
}

func (p *Parser) feedEscape(r rune) {
	switch {
	case r < 0x20:
		p.execute(r)
	case r == '[':
		p.beginCSI()
	case r == ']':
		p.beginOSC()
	case r == 'P':
		p.beginDCS()
	case r == 'X':
		p.beginString(stringKindSOS)
	case r == '^':
		p.beginString(stringKindPM)
	case r == '_':
		p.beginString(stringKindAPC)
	case r >= 0x20 && r <= 0x2F:
		p.intermediate = append(p.intermediate, byte(r))
		p.state = stateEscapeIntermediate
	case r == 0x7F:
		// ignore
	default:
		p.dispatchEscape(r)
		p.state = stateGround
	}
}

func (p *Parser) feedEscapeIntermediate(r rune) {
	switch {
	case r < 0x20:
		p.execute(r)
	case r >= 0x20 && r <= 0x2F:
		p.intermediate = append(p.intermediate, byte(r))
	case r == 0x7F:
		// ignore
	default:
		p.dispatchEscape(r)
		p.state = stateGround
	}
}

func (p *Parser) dispatchEscape(final rune) {
	if len(p.intermediate) == 1 {
		switch p.intermediate[0] {
		case '(':
			p.term.ConfigureCharset(CharsetIndexG0, charsetForDesignator(final))
			return
		case ')':
			p.term.ConfigureCharset(CharsetIndexG1, charsetForDesignator(final))
			return
		case '*':
			p.term.ConfigureCharset(CharsetIndexG2, charsetForDesignator(final))
			return
		case '+':
			p.term.ConfigureCharset(CharsetIndexG3, charsetForDesignator(final))
			return
		case '#':
			if final == '8' {
				p.term.Decaln()
			}
			return
		}
	}

	t := p.term
	switch final {
	case '7':
		t.SaveCursorPosition()
	case '8':
		t.RestoreCursorPosition()
	case 'c':
		t.ResetState()
	case 'D':
		t.LineFeed()
	case 'E':
		t.CarriageReturn()
		t.LineFeed()
	case 'M':
		t.ReverseIndex()
	case 'H':
		t.HorizontalTabSet()
	case 'Z':
		t.IdentifyTerminal(0)
	case '=':
		t.SetKeypadApplicationMode()
	case '>':
		t.UnsetKeypadApplicationMode()
	}
}

// charsetForDesignator maps a G-set designation final byte to a Charset.
// Only ASCII and the DEC special line-drawing set are distinguished; every
// other national replacement set (UK, Dutch, Finnish, ...) renders as ASCII.
func charsetForDesignator(final rune) Charset {
	if final == '0' {
		return CharsetLineDrawing
	}
	return CharsetASCII
}

// --- CSI ---

func (p *Parser) beginCSI() {
	p.params = p.params[:0]
	p.curVal = 0
	p.curHasDigits = false
	p.curBaseSet = false
	p.curBaseVal = 0
	p.curBaseHasDigits = false
	p.curSubs = nil
	p.private = 0
	p.intermediate = p.intermediate[:0]
	p.state = stateCSIEntry
}

// pushParam finalizes the parameter currently being collected. If a colon
// was seen within it, curBaseVal/curBaseHasDigits hold the first field (the
// base value) and curVal holds the last field, which belongs in subs
// alongside whatever earlier colon fields landed in curSubs; otherwise
// curVal/curHasDigits are the whole (colon-free) parameter.
func (p *Parser) pushParam() {
	var param csiParam
	if p.curBaseSet {
		param.value = p.curBaseVal
		param.hasValue = p.curBaseHasDigits
		param.subs = append(p.curSubs, p.curVal)
	} else {
		param.value = p.curVal
		param.hasValue = p.curHasDigits
	}
	p.params = append(p.params, param)
	p.curVal = 0
	p.curHasDigits = false
	p.curBaseSet = false
	p.curBaseVal = 0
	p.curBaseHasDigits = false
	p.curSubs = nil
}

func (p *Parser) feedCSIEntry(r rune) {
	switch {
	case r < 0x20:
		p.execute(r)
	case r >= '0' && r <= '9':
		p.curVal = int(r - '0')
		p.curHasDigits = true
		p.state = stateCSIParam
	case r == ';':
		p.pushParam()
		p.state = stateCSIParam
	case r == ':':
		p.curBaseSet = true
		p.curBaseVal = p.curVal
		p.curBaseHasDigits = p.curHasDigits
		p.curVal = 0
		p.curHasDigits = false
		p.state = stateCSIParam
	case r >= '<' && r <= '?':
		p.private = byte(r)
		p.state = stateCSIParam
	case r >= 0x20 && r <= 0x2F:
		p.intermediate = append(p.intermediate, byte(r))
		p.state = stateCSIIntermediate
	case r >= 0x40 && r <= 0x7E:
		p.dispatchCSI(r)
	case r == 0x7F:
		// ignore
	default:
		p.state = stateCSIIgnore
	}
}

func (p *Parser) feedCSIParam(r rune) {
	switch {
	case r < 0x20:
		p.execute(r)
	case r >= '0' && r <= '9':
		p.curVal = p.curVal*10 + int(r-'0')
		p.curHasDigits = true
	case r == ';':
		p.pushParam()
	case r == ':':
		if p.curBaseSet {
			p.curSubs = append(p.curSubs, p.curVal)
		} else {
			p.curBaseSet = true
			p.curBaseVal = p.curVal
			p.curBaseHasDigits = p.curHasDigits
		}
		p.curVal = 0
		p.curHasDigits = false
	case r >= 0x20 && r <= 0x2F:
		p.intermediate = append(p.intermediate, byte(r))
		p.state = stateCSIIntermediate
	case r >= 0x40 && r <= 0x7E:
		p.dispatchCSI(r)
	case r == 0x7F:
		// ignore
	default:
		p.state = stateCSIIgnore
	}
}

func (p *Parser) feedCSIIntermediate(r rune) {
	switch {
	case r < 0x20:
		p.execute(r)
	case r >= 0x20 && r <= 0x2F:
		p.intermediate = append(p.intermediate, byte(r))
	case r >= 0x40 && r <= 0x7E:
		p.dispatchCSI(r)
	case r == 0x7F:
		// ignore
	default:
		p.state = stateCSIIgnore
	}
}

func (p *Parser) feedCSIIgnore(r rune) {
	switch {
	case r < 0x20:
		p.execute(r)
	case r >= 0x40 && r <= 0x7E:
		p.state = stateGround
	default:
		// keep ignoring until a final byte arrives
	}
}

func (p *Parser) dispatchCSI(final rune) {
	p.pushParam()
	params := p.params
	intermediate := p.intermediate
	private := p.private

	p.handleCSI(private, params, intermediate, final)
	p.state = stateGround
}

// --- OSC ---

func (p *Parser) beginOSC() {
	p.strBuf = p.strBuf[:0]
	p.escSeen = false
	p.state = stateOSCString
}

func (p *Parser) feedOSC(r rune) {
	if p.escSeen {
		p.escSeen = false
		if r == '\\' {
			handleOSC(p.term, string(p.strBuf), "\x1b\\")
			p.strBuf = nil
			p.state = stateGround
			return
		}
		p.strBuf = nil
		p.beginEscape()
		p.feed(r)
		return
	}

	switch {
	case r == 0x07:
		handleOSC(p.term, string(p.strBuf), "\x07")
		p.strBuf = nil
		p.state = stateGround
	case r == 0x1B:
		p.escSeen = true
	case r < 0x20:
		// dropped
	default:
		p.appendToBuf(&p.strBuf, r)
	}
}

// appendToBuf appends rune r, re-encoded as UTF-8 if non-ASCII, to *buf,
// subject to the shared control-string length cap.
func (p *Parser) appendToBuf(buf *[]byte, r rune) {
	if len(*buf) >= maxControlStringLen {
		return
	}
	if r < 0x80 {
		*buf = append(*buf, byte(r))
		return
	}
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	*buf = append(*buf, enc[:n]...)
}

// --- DCS ---

func (p *Parser) beginDCS() {
	p.params = p.params[:0]
	p.curVal = 0
	p.curHasDigits = false
	p.curBaseSet = false
	p.curBaseVal = 0
	p.curBaseHasDigits = false
	p.curSubs = nil
	p.private = 0
	p.intermediate = p.intermediate[:0]
	p.dcsBuf = p.dcsBuf[:0]
	p.escSeen = false
	p.state = stateDCSEntry
}

func (p *Parser) feedDCSEntry(r rune) {
	switch {
	case r < 0x20:
		// C0 controls have no defined effect while entering a DCS; dropped.
	case r >= '0' && r <= '9':
		p.curVal = int(r - '0')
		p.curHasDigits = true
		p.state = stateDCSParam
	case r == ';':
		p.pushParam()
		p.state = stateDCSParam
	case r >= '<' && r <= '?':
		p.private = byte(r)
		p.state = stateDCSParam
	case r >= 0x20 && r <= 0x2F:
		p.intermediate = append(p.intermediate, byte(r))
		p.state = stateDCSIntermediate
	case r >= 0x40 && r <= 0x7E:
		p.beginDCSPassthrough(r)
	default:
		p.state = stateDCSIgnore
	}
}

func (p *Parser) feedDCSParam(r rune) {
	switch {
	case r < 0x20:
		// dropped
	case r >= '0' && r <= '9':
		p.curVal = p.curVal*10 + int(r-'0')
		p.curHasDigits = true
	case r == ';':
		p.pushParam()
	case r >= 0x20 && r <= 0x2F:
		p.intermediate = append(p.intermediate, byte(r))
		p.state = stateDCSIntermediate
	case r >= 0x40 && r <= 0x7E:
		p.beginDCSPassthrough(r)
	default:
		p.state = stateDCSIgnore
	}
}

func (p *Parser) feedDCSIntermediate(r rune) {
	switch {
	case r < 0x20:
		// dropped
	case r >= 0x20 && r <= 0x2F:
		p.intermediate = append(p.intermediate, byte(r))
	case r >= 0x40 && r <= 0x7E:
		p.beginDCSPassthrough(r)
	default:
		p.state = stateDCSIgnore
	}
}

// beginDCSPassthrough records which DCS function was selected (currently
// only DECRQSS, "$ q", is acted on) and starts collecting its payload.
func (p *Parser) beginDCSPassthrough(final rune) {
	p.pushParam()
	p.dcsFinal = final
	p.dcsBuf = p.dcsBuf[:0]
	p.escSeen = false
	p.state = stateDCSPassthrough
}

func (p *Parser) feedDCSPassthrough(r rune) {
	if p.escSeen {
		p.escSeen = false
		if r == '\\' {
			p.dispatchDCS()
			return
		}
		p.dcsBuf = nil
		p.beginEscape()
		p.feed(r)
		return
	}

	switch {
	case r == 0x1B:
		p.escSeen = true
	case r < 0x20:
		// dropped
	default:
		p.appendToBuf(&p.dcsBuf, r)
	}
}

func (p *Parser) feedDCSIgnore(r rune) {
	if p.escSeen {
		p.escSeen = false
		if r == '\\' {
			p.state = stateGround
			return
		}
		p.beginEscape()
		p.feed(r)
		return
	}
	if r == 0x1B {
		p.escSeen = true
	}
}

func (p *Parser) dispatchDCS() {
	payload := string(p.dcsBuf)
	final := p.dcsFinal
	intermediate := string(p.intermediate)
	p.dcsBuf = nil
	p.state = stateGround

	if intermediate == "$" && final == 'q' {
		p.term.reportDECRQSS(payload)
	}
	// Other DCS functions (Sixel, ReGIS, tmux passthrough, ...) are outside
	// this core's scope: their payload is safely consumed above and dropped.
}

// --- SOS / PM / APC ---

func (p *Parser) beginString(kind stringKind) {
	p.strKind = kind
	p.strBuf = p.strBuf[:0]
	p.escSeen = false
	p.state = stateSOSPMAPCString
}

func (p *Parser) feedString(r rune) {
	if p.escSeen {
		p.escSeen = false
		if r == '\\' {
			p.dispatchString()
			return
		}
		p.strBuf = nil
		p.beginEscape()
		p.feed(r)
		return
	}

	switch {
	case r == 0x1B:
		p.escSeen = true
	case r < 0x20:
		// dropped
	default:
		p.appendToBuf(&p.strBuf, r)
	}
}

func (p *Parser) dispatchString() {
	payload := p.strBuf
	kind := p.strKind
	p.strBuf = nil
	p.state = stateGround

	switch kind {
	case stringKindSOS:
		p.term.StartOfStringReceived(payload)
	case stringKindPM:
		p.term.PrivacyMessageReceived(payload)
	case stringKindAPC:
		p.term.ApplicationCommandReceived(payload)
	}
}
