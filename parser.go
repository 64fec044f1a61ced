package vtterm

import "strconv"

// parserState is one of the five states of the escape-sequence state
// machine described in spec §4.1. It is kept as a small tagged enum with
// per-state dispatch (spec §9 design note), rather than the layered
// conditionals a direct line-by-line port of a VTE library would produce.
type parserState int

const (
	stateGround parserState = iota
	stateEntry
	stateCSI
	stateOSC
	stateMulti
)

// multiIntroducers is the set of ESC intermediates that select the
// single-intermediate-byte MULTI state (spec §4.1 table).
var multiIntroducers = map[byte]bool{
	'(': true, ')': true, '.': true, '*': true,
	'+': true, '-': true, '/': true, '%': true,
	'#': true,
}

// executor receives the high-level events the parser decodes from a code
// point stream. Terminal implements this; parser.go itself knows nothing
// about screen state.
type executor interface {
	printable(r rune)
	controlLF()
	controlCR()
	controlBS()
	controlBEL()
	controlHT()
	csiDispatch(final byte, params []int, extra string)
	escDispatch(b byte)
	multiDispatch(intro, final byte)
	oscDispatch(s string)
}

// Parser is the byte/code-point-driven escape sequence state machine (spec
// §4.1). It holds no terminal state of its own beyond what is needed to
// accumulate the sequence currently being read.
type Parser struct {
	state      parserState
	csiBuf     []byte
	oscBuf     []rune
	multiIntro byte
	exec       executor
}

// NewParser returns a parser in GROUND state, dispatching decoded events to
// exec.
func NewParser(exec executor) *Parser {
	return &Parser{state: stateGround, exec: exec}
}

// Feed advances the state machine by one code point.
func (p *Parser) Feed(r rune) {
	// ESC is handled identically from every state (spec §4.1: "ANY, ESC ->
	// ENTRY"), except inside an OSC string, where it may instead be the
	// first byte of the ST (ESC \) terminator — that case is handled below
	// before the blanket rule applies.
	if r == 0x1B && p.state != stateOSC {
		p.state = stateEntry
		return
	}

	switch p.state {
	case stateGround:
		p.feedGround(r)
	case stateEntry:
		p.feedEntry(r)
	case stateCSI:
		p.feedCSI(r)
	case stateOSC:
		p.feedOSC(r)
	case stateMulti:
		p.feedMulti(r)
	}
}

// FeedAll feeds a whole slice of code points in order.
func (p *Parser) FeedAll(codepoints []rune) {
	for _, r := range codepoints {
		p.Feed(r)
	}
}

func (p *Parser) feedGround(r rune) {
	switch r {
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		p.exec.controlLF()
	case 0x0D: // CR
		p.exec.controlCR()
	case 0x08, 0x7F: // BS, DEL
		p.exec.controlBS()
	case 0x07: // BEL
		p.exec.controlBEL()
	case 0x09: // HT
		p.exec.controlHT()
	case 0x0E, 0x0F: // SO, SI
		// ignored (spec §4.1)
	default:
		if r >= 0x20 {
			p.exec.printable(r)
		}
	}
}

func (p *Parser) feedEntry(r rune) {
	switch {
	case r == '[':
		p.csiBuf = p.csiBuf[:0]
		p.state = stateCSI
	case r == ']':
		p.oscBuf = p.oscBuf[:0]
		p.state = stateOSC
	case r == '\\':
		p.exec.oscDispatch(string(p.oscBuf))
		p.state = stateGround
	case r >= 0 && r <= 0xFF && multiIntroducers[byte(r)]:
		p.multiIntro = byte(r)
		p.state = stateMulti
	default:
		if r >= 0 && r <= 0xFF {
			p.exec.escDispatch(byte(r))
		}
		p.state = stateGround
	}
}

func (p *Parser) feedCSI(r rune) {
	if r >= 0x40 && r <= 0x7E && r != '[' {
		params, extra := parseCSIParams(string(p.csiBuf))
		p.exec.csiDispatch(byte(r), params, extra)
		p.state = stateGround
		return
	}
	if r >= 0 && r <= 0xFF {
		p.csiBuf = append(p.csiBuf, byte(r))
	}
}

func (p *Parser) feedOSC(r rune) {
	if r == 0x07 {
		p.exec.oscDispatch(string(p.oscBuf))
		p.state = stateGround
		return
	}
	if r == 0x1B {
		// Might be the start of an ST (ESC \) terminator; peek via ENTRY,
		// but an OSC body byte of ESC not followed by '\' is not valid
		// input in practice, so treat ESC as terminating here and let the
		// next code point decide whether it's '\' (consumed as part of the
		// terminator) or the start of a fresh sequence. Clear oscBuf so
		// ENTRY's own '\' case (which also dispatches, to handle ST seen
		// without this early path) redispatches an empty, harmless string
		// instead of this same body a second time.
		p.exec.oscDispatch(string(p.oscBuf))
		p.oscBuf = p.oscBuf[:0]
		p.state = stateEntry
		return
	}
	p.oscBuf = append(p.oscBuf, r)
}

func (p *Parser) feedMulti(r rune) {
	if r >= 0 && r <= 0xFF {
		p.exec.multiDispatch(p.multiIntro, byte(r))
	}
	p.state = stateGround
}

// parseCSIParams splits a CSI parameter buffer (everything between the
// introducer and the final byte) per spec §4.1: any leading non-digit
// bytes before the first digit are captured as extra (e.g. "?", "!", ">");
// the remainder is split on ';' and parsed as decimal integers, dropping
// parts that don't parse. An empty part between separators (two
// consecutive ';') is returned as 0; a buffer with no digits after the
// extra prefix yields no params at all (nil) — callers apply their own
// "absent/zero means default" rule per operation.
func parseCSIParams(buf string) (params []int, extra string) {
	i := 0
	for i < len(buf) && (buf[i] < '0' || buf[i] > '9') {
		i++
	}
	extra = buf[:i]
	rest := buf[i:]

	if rest == "" {
		return nil, extra
	}

	start := 0
	for j := 0; j <= len(rest); j++ {
		if j == len(rest) || rest[j] == ';' {
			part := rest[start:j]
			if part == "" {
				params = append(params, 0)
			} else if n, err := strconv.Atoi(part); err == nil {
				params = append(params, n)
			}
			start = j + 1
		}
	}
	return params, extra
}

// param returns params[i] if present and non-zero, else def. Use for
// operations where a zero parameter means "use the default" (spec §4.1,
// the general rule).
func param(params []int, i, def int) int {
	if i < 0 || i >= len(params) || params[i] == 0 {
		return def
	}
	return params[i]
}

// rawParam returns params[i] if present, else def — including an explicit
// zero. Use for operations where 0 is itself a meaningful parameter value
// (ED, EL, TBC, DSR, SGR; spec §4.1 "EXCEPT where explicitly noted below").
func rawParam(params []int, i, def int) int {
	if i < 0 || i >= len(params) {
		return def
	}
	return params[i]
}
