package tak

import "fmt"

// MoveValidity is the closed set of outcomes of Position.Validate.
type MoveValidity int

const (
	Valid MoveValidity = iota
	InvalidSquare
	SquareOccupied
	NotEnoughReserve
	MustPlaceFlatFirstRound
	DontControlStack
	EndOutOfBounds
	NotEnoughPieces
	CarryLimit
	CantMoveIntoCap
	NeedCapToSmash
	CapMustSmashAlone
	SmashMustBeLast
)

// String names the validity discriminant.
func (v MoveValidity) String() string {
	switch v {
	case Valid:
		return "Valid"
	case InvalidSquare:
		return "InvalidSquare"
	case SquareOccupied:
		return "SquareOccupied"
	case NotEnoughReserve:
		return "NotEnoughReserve"
	case MustPlaceFlatFirstRound:
		return "MustPlaceFlatFirstRound"
	case DontControlStack:
		return "DontControlStack"
	case EndOutOfBounds:
		return "EndOutOfBounds"
	case NotEnoughPieces:
		return "NotEnoughPieces"
	case CarryLimit:
		return "CarryLimit"
	case CantMoveIntoCap:
		return "CantMoveIntoCap"
	case NeedCapToSmash:
		return "NeedCapToSmash"
	case CapMustSmashAlone:
		return "CapMustSmashAlone"
	case SmashMustBeLast:
		return "SmashMustBeLast"
	default:
		return "Unknown"
	}
}

// Ok reports whether this discriminant is Valid.
func (v MoveValidity) Ok() bool {
	return v == Valid
}

// InvalidSizeError is returned by New when size is outside [3, 8].
type InvalidSizeError struct {
	Size int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("tak: invalid board size %d (want 3..=8)", e.Size)
}

// OutcomeKind distinguishes the terminal-state variants.
type OutcomeKind int

const (
	// OutcomeRoad: a player built a connected road between opposite edges.
	OutcomeRoad OutcomeKind = iota
	// OutcomeFlat: the board filled or reserves ran out; won by flat count.
	OutcomeFlat
	// OutcomeOther: forfeit, timeout, or another result recorded externally.
	OutcomeOther
	// OutcomeDraw: flat counts tied at game end.
	OutcomeDraw
)

// Outcome is a terminal game result. Winner is meaningless when Kind is
// OutcomeDraw.
type Outcome struct {
	Kind   OutcomeKind
	Winner Player
}

// String renders the outcome, e.g. "Road(White)", "Draw".
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeRoad:
		return fmt.Sprintf("Road(%s)", o.Winner)
	case OutcomeFlat:
		return fmt.Sprintf("FlatWin(%s)", o.Winner)
	case OutcomeOther:
		return fmt.Sprintf("OtherWin(%s)", o.Winner)
	default:
		return "Draw"
	}
}
