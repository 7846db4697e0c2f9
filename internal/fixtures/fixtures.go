// Package fixtures replays recorded playtak games from a SQLite games
// database and checks the simulated final status against the recorded
// result, the same closed-form correctness check the engine's original
// reference implementation ran against its own move generator and
// execute/status logic. It is test-only infrastructure: nothing outside
// _test.go files in this module imports it.
package fixtures

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/hailam/taktical/internal/playtak"
	"github.com/hailam/taktical/internal/ptn"
	"github.com/hailam/taktical/internal/tak"
)

// These three sets list recorded games whose stored result is known to
// be wrong, one set per reason, and which are skipped rather than
// treated as a replay failure.
var (
	// dragonRuleBugGames were recorded before playtak's server properly
	// implemented the dragon rule tie-break.
	dragonRuleBugGames = idSet(3172, 4932, 6037, 6249, 14270, 15070, 15527, 16082, 16325, 17091, 17316, 17405, 17532)
	// trailingMovesBugGames have extra recorded moves played past the
	// point the game was actually won.
	trailingMovesBugGames = idSet(380, 3018, 9329, 15296, 54675, 81952, 116539)
	// unknownProblemGames mismatch for no cause yet identified.
	unknownProblemGames = idSet(9013, 9449, 9598)
)

func idSet(ids ...int64) map[int64]bool {
	m := make(map[int64]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// Game is one row replayed from the fixture database.
type Game struct {
	ID     int64
	Size   int
	Result string
}

// Outcome is the result of replaying one Game.
type Outcome struct {
	Game     Game
	Skipped  bool
	Mismatch string // non-empty if the replay disagreed with the recorded result
}

// Open opens a read-only connection to a playtak SQLite games database
// whose games table has at least the columns (size INTEGER, notation
// TEXT, result TEXT, id INTEGER, player_white TEXT, player_black TEXT),
// matching the games table used by the original desktop client.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("fixtures: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("fixtures: ping %s: %w", path, err)
	}
	return db, nil
}

// Replay streams every game from db, excluding the known sTAKbot1-vs-
// sTAKbot2 pairing (several of those games contain illegal moves), and
// calls f once per game with its replay outcome. It stops at the first
// scan error.
func Replay(db *sql.DB, f func(Outcome)) error {
	rows, err := db.Query(`
		SELECT size, notation, result, id FROM games
		WHERE (player_white != 'sTAKbot1' OR player_black != 'sTAKbot2')
		  AND (player_white != 'sTAKbot2' OR player_black != 'sTAKbot1')
	`)
	if err != nil {
		return fmt.Errorf("fixtures: query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var size int
		var notation, result string
		var id int64
		if err := rows.Scan(&size, &notation, &result, &id); err != nil {
			return fmt.Errorf("fixtures: scan: %w", err)
		}
		f(replayOne(Game{ID: id, Size: size, Result: result}, notation))
	}
	return rows.Err()
}

func replayOne(g Game, notation string) Outcome {
	// "0-0" results are not a valid game outcome (likely offered-and-declined
	// draws recorded oddly); skip rather than fail on them.
	if len(g.Result) >= 3 && g.Result[:3] == "0-0" {
		return Outcome{Game: g, Skipped: true}
	}

	moves, err := playtak.ParseMoves(notation)
	if err != nil {
		return Outcome{Game: g, Mismatch: err.Error()}
	}
	recorded, err := playtak.ParseResult(g.Result)
	if err != nil {
		return Outcome{Game: g, Mismatch: err.Error()}
	}

	pos, err := tak.New(g.Size)
	if err != nil {
		return Outcome{Game: g, Mismatch: err.Error()}
	}

	var final tak.Outcome
	done := false
	for i := range moves {
		if _, over := pos.Status(); over {
			break
		}
		m := moves[i]
		if v := pos.Validate(m); !v.Ok() {
			return Outcome{Game: g, Mismatch: fmt.Sprintf("move %d (%s) invalid: %s", i, m, v)}
		}
		pos.Execute(&m)
	}
	final, done = pos.Status()

	if recorded.Kind == ptn.ResultOther {
		// Forfeit/timeout results can't be confirmed or refuted by replay.
		return Outcome{Game: g}
	}
	if dragonRuleBugGames[g.ID] || trailingMovesBugGames[g.ID] || unknownProblemGames[g.ID] {
		return Outcome{Game: g, Skipped: true}
	}
	if !done {
		if recorded.Kind == ptn.ResultDraw {
			return Outcome{Game: g}
		}
		return Outcome{Game: g, Mismatch: fmt.Sprintf("game did not terminate, recorded result %q", g.Result)}
	}
	if !recorded.Matches(final) {
		return Outcome{Game: g, Mismatch: fmt.Sprintf("simulated %s, recorded %q", final, g.Result)}
	}
	return Outcome{Game: g}
}
