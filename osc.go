package vtcore

import (
	"encoding/base64"
	"image/color"
	"strconv"
	"strings"
)

// maxClipboardDecodedBytes bounds OSC 52 payloads: well-behaved clients never
// send more than a screenful of clipboard text, and a misbehaving one should
// not be able to force an unbounded allocation through this core.
const maxClipboardDecodedBytes = 1 << 20 // 1 MiB

// handleOSC dispatches one fully-collected OSC string, as assembled by the
// parser between "ESC ]" and its BEL/ST terminator, to the terminal. term is
// the terminator exactly as received, reused verbatim in any reply so a
// BEL-terminated query gets a BEL-terminated reply and likewise for ST.
func handleOSC(t *Terminal, payload string, term string) {
	cmd, rest := cutOSC(payload)

	n, err := strconv.Atoi(cmd)
	if err != nil {
		return
	}

	switch n {
	case 0, 2:
		t.SetTitle(rest)
	case 1:
		// Icon name only: no provider surfaces this distinctly from the title.
	case 4:
		handleOSC4(t, rest, term)
	case 8:
		handleOSC8(t, rest)
	case 10:
		handleOSCDynamicColor(t, "10", NamedColorForeground, rest, term)
	case 11:
		handleOSCDynamicColor(t, "11", NamedColorBackground, rest, term)
	case 12:
		handleOSCDynamicColor(t, "12", NamedColorCursor, rest, term)
	case 21:
		t.reportTitle(term)
	case 52:
		handleOSC52(t, rest, term)
	}
}

// cutOSC splits "Ps;Pt..." into the leading numeric command and the
// remainder, which may itself contain further ';'-separated fields.
func cutOSC(payload string) (cmd, rest string) {
	i := strings.IndexByte(payload, ';')
	if i < 0 {
		return payload, ""
	}
	return payload[:i], payload[i+1:]
}

func handleOSC4(t *Terminal, rest string, term string) {
	i := strings.IndexByte(rest, ';')
	if i < 0 {
		return
	}
	index, err := strconv.Atoi(rest[:i])
	if err != nil {
		return
	}
	spec := rest[i+1:]

	if spec == "?" {
		t.SetDynamicColor("4;"+strconv.Itoa(index), index, term)
		return
	}

	if rgba, ok := parseColorSpec(spec); ok {
		t.SetColor(index, rgba)
	}
}

func handleOSC8(t *Terminal, rest string) {
	i := strings.IndexByte(rest, ';')
	if i < 0 {
		return
	}
	params := rest[:i]
	uri := rest[i+1:]

	if uri == "" {
		t.SetHyperlink(nil)
		return
	}

	id := ""
	for _, field := range strings.Split(params, ":") {
		if after, ok := strings.CutPrefix(field, "id="); ok {
			id = after
		}
	}

	t.SetHyperlink(&Hyperlink{ID: id, URI: uri})
}

func handleOSCDynamicColor(t *Terminal, prefix string, index int, rest string, term string) {
	if rest == "?" {
		t.SetDynamicColor(prefix, index, term)
		return
	}
	if rgba, ok := parseColorSpec(rest); ok {
		t.SetColor(index, rgba)
	}
}

func handleOSC52(t *Terminal, rest string, term string) {
	i := strings.IndexByte(rest, ';')
	if i < 0 {
		return
	}
	clipboards := rest[:i]
	data := rest[i+1:]
	if clipboards == "" {
		return
	}
	clipboard := clipboards[0]

	if data == "?" {
		t.ClipboardLoad(clipboard, term)
		return
	}

	if base64.StdEncoding.DecodedLen(len(data)) > maxClipboardDecodedBytes {
		return
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return
	}
	t.ClipboardStore(clipboard, decoded)
}

// parseColorSpec parses an xterm color specification in either "rgb:" form
// (RRRR/GGGG/BBBB, 1-4 hex digits per component) or "#RRGGBB" form.
func parseColorSpec(spec string) (color.RGBA, bool) {
	if after, ok := strings.CutPrefix(spec, "rgb:"); ok {
		return parseRGBColonSpec(after)
	}
	if strings.HasPrefix(spec, "#") && len(spec) == 7 {
		r, err1 := strconv.ParseUint(spec[1:3], 16, 8)
		g, err2 := strconv.ParseUint(spec[3:5], 16, 8)
		b, err3 := strconv.ParseUint(spec[5:7], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return color.RGBA{}, false
		}
		return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, true
	}
	return color.RGBA{}, false
}

// parseRGBColonSpec parses the "RRRR/GGGG/BBBB" component of an "rgb:" color,
// where each component is 1-4 hex digits scaled to 8 bits, per the xterm OSC
// color convention.
func parseRGBColonSpec(s string) (color.RGBA, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return color.RGBA{}, false
	}

	var vals [3]uint8
	for i, p := range parts {
		if len(p) == 0 || len(p) > 4 {
			return color.RGBA{}, false
		}
		v, err := strconv.ParseUint(p, 16, 32)
		if err != nil {
			return color.RGBA{}, false
		}
		maxVal := (uint64(1) << uint(4*len(p))) - 1
		vals[i] = uint8((v * 255) / maxVal)
	}

	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: 255}, true
}
