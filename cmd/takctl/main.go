// Command takctl is an interactive REPL for building and inspecting Tak
// positions: place and slide pieces with PTN move text, inspect status,
// and print the board in TPS.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hailam/taktical/internal/ptn"
	"github.com/hailam/taktical/internal/tak"
)

var size = flag.Int("size", 5, "board size, 3-8")

func main() {
	flag.Parse()

	pos, err := tak.New(*size)
	if err != nil {
		log.Fatal(err)
	}

	var history []tak.Move
	fmt.Printf("takctl: %dx%d board. Type a move (PTN), or: undo, status, tps, quit\n", *size, *size)

	scanner := bufio.NewScanner(os.Stdin)
	printPrompt(pos)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			printPrompt(pos)
			continue
		}

		switch line {
		case "quit", "exit":
			return
		case "tps":
			fmt.Println(pos.TPS())
		case "status":
			printStatus(pos)
		case "undo":
			if len(history) == 0 {
				fmt.Println("nothing to undo")
				break
			}
			last := history[len(history)-1]
			history = history[:len(history)-1]
			pos.Undo(&last)
		default:
			handleMove(pos, &history, line)
		}
		printPrompt(pos)
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

func handleMove(pos *tak.Position, history *[]tak.Move, line string) {
	am, err := ptn.ParseMove(line)
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		return
	}
	m := am.Move
	if v := pos.Validate(m); !v.Ok() {
		fmt.Printf("illegal move: %v\n", v)
		return
	}
	pos.Execute(&m)
	*history = append(*history, m)
	printStatus(pos)
}

func printStatus(pos *tak.Position) {
	if outcome, over := pos.Status(); over {
		fmt.Printf("game over: %s\n", outcome)
	}
}

func printPrompt(pos *tak.Position) {
	fmt.Printf("[round %d, %s to move] > ", pos.Round(), pos.SideToMove())
}
