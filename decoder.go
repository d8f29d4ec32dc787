package vtcore

import "unicode/utf8"

// Decoder incrementally assembles UTF-8 runes from a byte stream and feeds
// each one to the escape-sequence parser. Multi-byte sequences split across
// separate Write calls are resumed correctly, and malformed sequences
// resynchronize at the next lead byte instead of wedging the parser — unlike
// a one-shot utf8.DecodeRune call, which cannot resume across chunk
// boundaries.
type Decoder struct {
	parser *Parser

	// pending holds the bytes of an incomplete multi-byte UTF-8 sequence
	// carried over between Write calls.
	pending [utf8.UTFMax]byte
	pendLen int
}

// NewDecoder creates a decoder that feeds the parsed escape sequences and
// printable runes to t.
func NewDecoder(t *Terminal) *Decoder {
	return &Decoder{parser: newParser(t)}
}

// Write feeds raw bytes through UTF-8 reassembly and the escape-sequence
// parser. Always consumes the full input and never returns an error: garbled
// bytes become replacement runes rather than aborting the stream, matching
// how a real terminal degrades on corrupted output.
func (d *Decoder) Write(data []byte) (int, error) {
	n := len(data)

	for len(data) > 0 {
		if d.pendLen > 0 {
			data = d.fillPending(data)
			continue
		}

		b := data[0]
		if b < utf8.RuneSelf {
			d.parser.feed(rune(b))
			data = data[1:]
			continue
		}

		size := utf8LeadSeqLen(b)
		if size == 0 {
			// Stray continuation byte or otherwise invalid lead byte.
			d.parser.feed(utf8.RuneError)
			data = data[1:]
			continue
		}
		if len(data) < size {
			d.pendLen = copy(d.pending[:], data)
			data = nil
			continue
		}

		r, sz := utf8.DecodeRune(data[:size])
		if r == utf8.RuneError && sz <= 1 {
			d.parser.feed(utf8.RuneError)
			data = data[1:]
			continue
		}
		d.parser.feed(r)
		data = data[size:]
	}

	return n, nil
}

// fillPending appends bytes to a partial sequence carried over from a prior
// Write call until it is complete (or proven malformed), feeds the result,
// and returns the unconsumed remainder of data.
func (d *Decoder) fillPending(data []byte) []byte {
	want := utf8LeadSeqLen(d.pending[0])
	for d.pendLen < want && len(data) > 0 {
		d.pending[d.pendLen] = data[0]
		d.pendLen++
		data = data[1:]
	}

	if d.pendLen < want {
		return data // still incomplete, wait for more
	}

	r, sz := utf8.DecodeRune(d.pending[:d.pendLen])
	if r == utf8.RuneError && sz <= 1 {
		// Malformed: drop the lead byte and resync from the rest of what
		// was stashed, byte by byte, without losing any of it.
		d.parser.feed(utf8.RuneError)
		rest := append([]byte{}, d.pending[1:d.pendLen]...)
		d.pendLen = 0
		return append(rest, data...)
	}

	d.parser.feed(r)
	d.pendLen = 0
	return data
}

// utf8LeadSeqLen returns the expected byte length of a UTF-8 sequence
// starting with lead byte b, or 0 if b cannot start a sequence.
func utf8LeadSeqLen(b byte) int {
	switch {
	case b&0x80 == 0x00:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}
