// Command takperft counts leaf nodes of the move-generation tree from
// the starting position of a given board size, the standard correctness
// and performance harness for a move generator. Root moves are
// partitioned across worker goroutines, each given its own cloned
// Position: pos must be a dedicated copy per worker, never shared.
package main

import (
	"flag"
	"fmt"
	"log"
	"sync"

	"github.com/hailam/taktical/internal/tak"
)

var (
	size  = flag.Int("size", 5, "board size, 3-8")
	depth = flag.Int("depth", 4, "perft depth")
)

func main() {
	flag.Parse()

	pos, err := tak.New(*size)
	if err != nil {
		log.Fatal(err)
	}

	if *depth <= 0 {
		fmt.Println(1)
		return
	}

	var roots []tak.Move
	pos.Generate(func(m tak.Move) { roots = append(roots, m) })

	results := make([]int64, len(roots))
	var wg sync.WaitGroup
	for i, m := range roots {
		wg.Add(1)
		go func(i int, m tak.Move) {
			defer wg.Done()
			worker := pos.Clone()
			worker.Execute(&m)
			results[i] = perft(worker, *depth-1)
		}(i, m)
	}
	wg.Wait()

	var total int64
	for _, n := range results {
		total += n
	}
	fmt.Printf("perft(%d) on %dx%d = %d\n", *depth, *size, *size, total)
}

func perft(pos *tak.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	var n int64
	pos.Generate(func(m tak.Move) {
		pos.Execute(&m)
		n += perft(pos, depth-1)
		pos.Undo(&m)
	})
	return n
}
