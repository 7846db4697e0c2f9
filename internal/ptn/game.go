package ptn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/taktical/internal/tak"
)

// ResultKind distinguishes how a recorded game ended.
type ResultKind int

const (
	ResultRoad ResultKind = iota
	ResultFlat
	ResultOther
	ResultDraw
)

// Result is a recorded game result: who won and how, parsed from a PTN
// result token ("R-0", "0-F", "1-0", "1/2-1/2", ...).
type Result struct {
	Kind   ResultKind
	Winner tak.Player
}

// ParseResult parses one of the seven standard PTN result tokens.
func ParseResult(s string) (Result, error) {
	switch s {
	case "R-0":
		return Result{ResultRoad, tak.White}, nil
	case "0-R":
		return Result{ResultRoad, tak.Black}, nil
	case "F-0":
		return Result{ResultFlat, tak.White}, nil
	case "0-F":
		return Result{ResultFlat, tak.Black}, nil
	case "1-0":
		return Result{ResultOther, tak.White}, nil
	case "0-1":
		return Result{ResultOther, tak.Black}, nil
	case "1/2-1/2":
		return Result{Kind: ResultDraw}, nil
	default:
		return Result{}, fmt.Errorf("ptn: invalid result %q", s)
	}
}

// Matches reports whether a live Outcome corresponds to this recorded
// Result. A ResultOther recorded result (forfeit, timeout, etc.) can
// never be confirmed or refuted by replay, so it always matches.
func (r Result) Matches(o tak.Outcome) bool {
	switch r.Kind {
	case ResultOther:
		return true
	case ResultDraw:
		return o.Kind == tak.OutcomeDraw
	case ResultRoad:
		return o.Kind == tak.OutcomeRoad && o.Winner == r.Winner
	case ResultFlat:
		return o.Kind == tak.OutcomeFlat && o.Winner == r.Winner
	default:
		return false
	}
}

// Tag is a single PTN header field, e.g. [Player1 "alice"].
type Tag struct {
	Name  string
	Value string
}

// Game is a fully parsed PTN game record.
type Game struct {
	Player1 string
	Player2 string
	Size    int
	Result  *Result
	Tags    []Tag
	Moves   []AnnotatedMove
}

// Parse parses a full PTN game record: header tags, a move body with
// round numbers and optional braces comments, and returns the
// reconstructed Game. It does not replay the moves against a Position;
// callers that want a validated game should feed Moves through
// tak.Position.Validate/Execute themselves.
func Parse(input string) (*Game, error) {
	p := &parser{s: input}
	p.skipWS()

	var tags []Tag
	for p.peek() == '[' {
		tag, err := p.parseTag()
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
		p.skipWS()
	}

	g := &Game{Tags: tags}
	for _, t := range tags {
		switch strings.ToLower(t.Name) {
		case "player1":
			g.Player1 = t.Value
		case "player2":
			g.Player2 = t.Value
		case "size":
			if n, err := strconv.Atoi(t.Value); err == nil {
				g.Size = n
			}
		case "result":
			if r, err := ParseResult(t.Value); err == nil {
				g.Result = &r
			}
		}
	}

	moves, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	g.Moves = moves

	if !tak.ValidSize(g.Size) {
		return nil, fmt.Errorf("ptn: missing or invalid [Size] tag (%d)", g.Size)
	}
	return g, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *parser) skipWS() {
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			p.pos++
			continue
		}
		if c == '{' {
			p.skipComment()
			continue
		}
		break
	}
}

func (p *parser) skipComment() {
	end := strings.IndexByte(p.s[p.pos:], '}')
	if end < 0 {
		p.pos = len(p.s)
		return
	}
	p.pos += end + 1
}

func (p *parser) parseTag() (Tag, error) {
	if p.peek() != '[' {
		return Tag{}, fmt.Errorf("ptn: expected '[' at offset %d", p.pos)
	}
	p.pos++
	p.skipWS()
	start := p.pos
	for p.pos < len(p.s) && isTagChar(p.s[p.pos]) {
		p.pos++
	}
	name := p.s[start:p.pos]
	p.skipWS()
	if p.peek() != '"' {
		return Tag{}, fmt.Errorf("ptn: expected quoted tag value at offset %d", p.pos)
	}
	p.pos++
	vstart := p.pos
	end := strings.IndexByte(p.s[p.pos:], '"')
	if end < 0 {
		return Tag{}, fmt.Errorf("ptn: unterminated tag value at offset %d", vstart)
	}
	value := p.s[vstart : vstart+end]
	p.pos = vstart + end + 1
	p.skipWS()
	if p.peek() != ']' {
		return Tag{}, fmt.Errorf("ptn: expected ']' at offset %d", p.pos)
	}
	p.pos++
	return Tag{Name: strings.ToLower(name), Value: value}, nil
}

func isTagChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

// parseBody parses "N. move move N. move move ..." until input is
// exhausted, skipping round numbers, dots, and brace comments.
func (p *parser) parseBody() ([]AnnotatedMove, error) {
	var moves []AnnotatedMove
	for {
		p.skipWS()
		if p.pos >= len(p.s) {
			return moves, nil
		}
		if !isDigit(p.peek()) {
			// Trailing result token (e.g. "R-0") or garbage; stop at the
			// first non-round-number.
			return moves, nil
		}
		if isResultToken(p.peekToken()) {
			// A numeric result token ("1-0", "0-1", "1/2-1/2") also starts
			// with a digit, but is never followed by a '.': stop without
			// consuming it rather than misreading it as a round number.
			return moves, nil
		}
		for p.pos < len(p.s) && isDigit(p.s[p.pos]) {
			p.pos++
		}
		p.skipWS()
		if p.peek() != '.' {
			return nil, fmt.Errorf("ptn: expected '.' after round number at offset %d", p.pos)
		}
		p.pos++

		for ply := 0; ply < 2; ply++ {
			p.skipWS()
			if p.pos >= len(p.s) || isDigit(p.peek()) {
				break
			}
			start := p.pos
			for p.pos < len(p.s) && !isSpace(p.s[p.pos]) {
				p.pos++
			}
			token := p.s[start:p.pos]
			am, err := ParseMove(token)
			if err != nil {
				return nil, err
			}
			moves = append(moves, am)
		}
	}
}

// peekToken returns the next whitespace-delimited token at the current
// position without consuming it.
func (p *parser) peekToken() string {
	end := p.pos
	for end < len(p.s) && !isSpace(p.s[end]) {
		end++
	}
	return p.s[p.pos:end]
}

// isResultToken reports whether s is one of the seven standard PTN
// result tokens.
func isResultToken(s string) bool {
	_, err := ParseResult(s)
	return err == nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
