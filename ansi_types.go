package vtcore

// This file collects the small first-party enums and value types that stand in
// for the dropped go-ansicode dependency. The teacher delegated these to an
// external package; here the escape-sequence parser is part of this module
// (see parser.go), so its vocabulary lives alongside it.

// DecPrivateMode identifies a DEC private mode number as it appears in
// CSI ? Pm h / CSI ? Pm l (DECSET/DECRST). Naming follows the constant
// list conventions used by lab47/vterm's parser/dec.go.
type DecPrivateMode int

const (
	DecModeApplicationCursorKeys DecPrivateMode = 1
	DecModeColumn132             DecPrivateMode = 3
	DecModeSmoothScroll          DecPrivateMode = 4
	DecModeReverseVideo          DecPrivateMode = 5
	DecModeOrigin                DecPrivateMode = 6
	DecModeAutowrap              DecPrivateMode = 7
	DecModeBlinkingCursor        DecPrivateMode = 12
	DecModeShowCursor            DecPrivateMode = 25
	DecModeReportMouseClicks     DecPrivateMode = 1000
	DecModeReportCellMotion      DecPrivateMode = 1002
	DecModeReportAllMotion       DecPrivateMode = 1003
	DecModeReportFocusInOut      DecPrivateMode = 1004
	DecModeUTF8Mouse             DecPrivateMode = 1005
	DecModeSGRMouse              DecPrivateMode = 1006
	DecModeAlternateScroll       DecPrivateMode = 1007
	DecModeUrgencyHints          DecPrivateMode = 1042
	DecModeAlternateScreen       DecPrivateMode = 47
	DecModeSaveCursorAltScreen   DecPrivateMode = 1047
	DecModeSaveRestoreCursor     DecPrivateMode = 1048
	DecModeSwapScreenAndCursor   DecPrivateMode = 1049
	DecModeBracketedPaste        DecPrivateMode = 2004
	DecModeUTF8                  DecPrivateMode = 2027
)

// Insert mode (IRM) is an ANSI mode, not a DEC private mode: CSI 4 h/l (no '?').
const DecModeInsert DecPrivateMode = -4

// Line feed/new line mode (LNM) is likewise an ANSI mode: CSI 20 h/l (no '?').
const DecModeLineFeedNewLine DecPrivateMode = -20

// CharAttribute identifies a single SGR parameter's semantic effect.
type CharAttribute int

const (
	CharAttributeReset CharAttribute = iota
	CharAttributeBold
	CharAttributeDim
	CharAttributeItalic
	CharAttributeUnderline
	CharAttributeDoubleUnderline
	CharAttributeCurlyUnderline
	CharAttributeDottedUnderline
	CharAttributeDashedUnderline
	CharAttributeBlinkSlow
	CharAttributeBlinkFast
	CharAttributeReverse
	CharAttributeHidden
	CharAttributeStrike
	CharAttributeOverline
	CharAttributeCancelBold
	CharAttributeCancelBoldDim
	CharAttributeCancelItalic
	CharAttributeCancelUnderline
	CharAttributeCancelBlink
	CharAttributeCancelReverse
	CharAttributeCancelHidden
	CharAttributeCancelStrike
	CharAttributeCancelOverline
	CharAttributeForeground
	CharAttributeBackground
	CharAttributeUnderlineColor
	CharAttributeFont
)

// RGBColorValue carries an explicit 24-bit color parsed from SGR 38/48/58;2;...
type RGBColorValue struct {
	R, G, B uint8
}

// IndexedColorValue carries a palette index parsed from SGR 38/48/58;5;N.
type IndexedColorValue struct {
	Index uint8
}

// TerminalCharAttribute is one fully-parsed SGR directive, produced by the SGR
// interpreter (sgr.go) and consumed by Terminal.SetTerminalCharAttribute.
type TerminalCharAttribute struct {
	Attr         CharAttribute
	RGBColor     *RGBColorValue
	IndexedColor *IndexedColorValue
	NamedColor   *int
	FontIndex    int
}

// ClearMode selects an ED (erase in display) variant.
type ClearMode int

const (
	ClearModeBelow ClearMode = iota
	ClearModeAbove
	ClearModeAll
	ClearModeSaved
)

// LineClearMode selects an EL (erase in line) variant.
type LineClearMode int

const (
	LineClearModeRight LineClearMode = iota
	LineClearModeLeft
	LineClearModeAll
)

// TabulationClearMode selects a TBC (tab clear) variant.
type TabulationClearMode int

const (
	TabulationClearModeCurrent TabulationClearMode = iota
	TabulationClearModeAll
)

// KeyboardMode is the Kitty keyboard protocol progressive-enhancement bitmask
// (CSI > Pm u / CSI = Pm ; Pm u / CSI ? u), recorded but not itself acted upon
// by the core — key encoding is the host's input layer's responsibility.
type KeyboardMode uint32

const KeyboardModeNoMode KeyboardMode = 0

// KeyboardModeBehavior selects how CSI = Pm ; Pb u combines a new mode with
// the current one.
type KeyboardModeBehavior int

const (
	KeyboardModeBehaviorReplace KeyboardModeBehavior = iota
	KeyboardModeBehaviorUnion
	KeyboardModeBehaviorDifference
)

// ModifyOtherKeys is the xterm modifyOtherKeys setting (CSI > 4 ; Pm m).
type ModifyOtherKeys int
