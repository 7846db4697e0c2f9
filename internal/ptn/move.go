// Package ptn parses and renders Portable Tak Notation: the external
// move-text and game-record format used by PTN files and tools that
// exchange Tak games. It is a thin text layer over internal/tak and
// never reaches into a Position's internals.
package ptn

import (
	"fmt"
	"strings"

	"github.com/hailam/taktical/internal/tak"
)

// TakAnnotation records a tak/tinue evaluation suffix.
type TakAnnotation int

const (
	NoTakAnnotation TakAnnotation = iota
	Tak
	Tinue
)

// SubjAnnotation records a subjective move-quality suffix.
type SubjAnnotation int

const (
	NoSubjAnnotation SubjAnnotation = iota
	Questionable
	Surprising
	Blunder
	VerySurprising
	QuestionableSurprising
	SurprisingQuestionable
)

// AnnotatedMove pairs a parsed move with its trailing annotations, if any.
type AnnotatedMove struct {
	Move tak.Move
	Tak  TakAnnotation
	Subj SubjAnnotation
}

// ParseMove parses a single PTN move token, e.g. "a1", "Sb3", "3a1>12",
// "Cd4", "2c2-11'". Annotation suffixes are recognized but do not affect
// the returned Move.
func ParseMove(input string) (AnnotatedMove, error) {
	s := strings.TrimSpace(input)
	body, tak_, subj := splitAnnotations(s)

	m, err := parseMoveBody(body)
	if err != nil {
		return AnnotatedMove{}, err
	}
	return AnnotatedMove{Move: m, Tak: tak_, Subj: subj}, nil
}

// splitAnnotations strips trailing tak/tinue and subjective-eval suffixes,
// in either order, and returns the remaining move text.
func splitAnnotations(s string) (body string, t TakAnnotation, j SubjAnnotation) {
	for {
		switch {
		case strings.HasSuffix(s, "''"):
			t, s = Tinue, s[:len(s)-2]
		case strings.HasSuffix(s, "'"):
			t, s = Tak, s[:len(s)-1]
		case strings.HasSuffix(s, "??"):
			j, s = Blunder, s[:len(s)-2]
		case strings.HasSuffix(s, "?!"):
			j, s = QuestionableSurprising, s[:len(s)-2]
		case strings.HasSuffix(s, "!?"):
			j, s = SurprisingQuestionable, s[:len(s)-2]
		case strings.HasSuffix(s, "!!"):
			j, s = VerySurprising, s[:len(s)-2]
		case strings.HasSuffix(s, "?"):
			j, s = Questionable, s[:len(s)-1]
		case strings.HasSuffix(s, "!"):
			j, s = Surprising, s[:len(s)-1]
		default:
			return s, t, j
		}
	}
}

func parseMoveBody(s string) (tak.Move, error) {
	if m, err, ok := tryParseSlide(s); ok {
		return m, err
	}
	return parsePlacement(s)
}

// tryParseSlide attempts a slide parse, reporting ok=false if s looks
// like a placement instead (so the caller falls through) rather than a
// malformed slide.
func tryParseSlide(s string) (tak.Move, error, bool) {
	i := 0
	carry := 1
	if i < len(s) && s[i] >= '1' && s[i] <= '8' {
		carry = int(s[i] - '0')
		i++
	}
	if i+2 > len(s) {
		return tak.Move{}, nil, false
	}
	loc, err := tak.ParseLoc(s[i : i+2])
	if err != nil {
		return tak.Move{}, nil, false
	}
	i += 2
	if i >= len(s) {
		return tak.Move{}, nil, false
	}
	dir, ok := parseDir(s[i])
	if !ok {
		return tak.Move{}, nil, false
	}
	i++

	drops := s[i:]
	switch {
	case drops == "":
		return tak.NewSlide(loc, dir, 1, []uint8{uint8(carry)}), nil, true
	case len(drops) > tak.MaxRange:
		return tak.Move{}, fmt.Errorf("ptn: too many drops in %q", s), true
	default:
		parsed := make([]uint8, len(drops))
		sum := 0
		for i, c := range []byte(drops) {
			if c < '1' || c > '8' {
				return tak.Move{}, fmt.Errorf("ptn: invalid drop count %q", s), true
			}
			parsed[i] = c - '0'
			sum += int(parsed[i])
		}
		if sum != carry {
			return tak.Move{}, fmt.Errorf("ptn: drop counts %v do not sum to carried pieces %d", parsed, carry), true
		}
		return tak.NewSlide(loc, dir, uint8(len(parsed)), parsed), nil, true
	}
}

func parsePlacement(s string) (tak.Move, error) {
	piece := tak.Flat
	rest := s
	if len(s) > 0 {
		switch s[0] {
		case 'f', 'F':
			piece, rest = tak.Flat, s[1:]
		case 's', 'S':
			piece, rest = tak.Wall, s[1:]
		case 'c', 'C':
			piece, rest = tak.Cap, s[1:]
		}
	}
	loc, err := tak.ParseLoc(rest)
	if err != nil {
		return tak.Move{}, fmt.Errorf("ptn: invalid move %q: %w", s, err)
	}
	return tak.NewPlace(loc, piece), nil
}

func parseDir(c byte) (tak.Dir, bool) {
	switch c {
	case '+':
		return tak.Up, true
	case '-':
		return tak.Down, true
	case '<':
		return tak.Left, true
	case '>':
		return tak.Right, true
	default:
		return 0, false
	}
}

// Render renders an AnnotatedMove back to PTN move text.
func Render(m AnnotatedMove) string {
	var sb strings.Builder
	sb.WriteString(m.Move.String())
	switch m.Tak {
	case Tak:
		sb.WriteString("'")
	case Tinue:
		sb.WriteString("''")
	}
	switch m.Subj {
	case Questionable:
		sb.WriteString("?")
	case Surprising:
		sb.WriteString("!")
	case Blunder:
		sb.WriteString("??")
	case VerySurprising:
		sb.WriteString("!!")
	case QuestionableSurprising:
		sb.WriteString("?!")
	case SurprisingQuestionable:
		sb.WriteString("!?")
	}
	return sb.String()
}
