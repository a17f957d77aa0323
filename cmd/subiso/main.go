// Command subiso finds a non-induced subgraph isomorphism
// between two graphs given as edge-list text files (see textgraph).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	subiso "github.com/ciaranm/restarting-sip-paper"
	"github.com/ciaranm/restarting-sip-paper/textgraph"
)

func main() {
	log.SetFlags(0)

	pattern := flag.String("pattern", "", "path to the pattern graph (edge-list format)")
	target := flag.String("target", "", "path to the target graph (edge-list format)")
	bands := flag.Int("bands", 4, "number of supplemental-graph bands (k), clamped to [0,5]")
	walk := flag.Int("walk", 2, "supplemental-graph walk length (l), clamped to [1,2]")
	timeout := flag.Duration("timeout", 0, "abort the search after this long (0 disables the timeout)")
	flag.Parse()

	if *pattern == "" || *target == "" {
		log.Fatal("both -pattern and -target are required")
	}

	p, err := readGraph(*pattern)
	if err != nil {
		log.Fatalf("reading pattern: %v", err)
	}
	t, err := readGraph(*target)
	if err != nil {
		log.Fatalf("reading target: %v", err)
	}

	options := []subiso.Option{subiso.WithBands(*bands), subiso.WithWalkLength(*walk)}

	var abort *subiso.AbortFlag
	if *timeout > 0 {
		abort = &subiso.AbortFlag{}
		options = append(options, subiso.WithAbortFlag(abort))
		timer := time.AfterFunc(*timeout, abort.Abort)
		defer timer.Stop()
	}

	params := subiso.NewParams(options...)

	start := time.Now()
	result := subiso.Solve(p, t, params)
	result.ExtraStats = append(result.ExtraStats, fmt.Sprintf("elapsed: %s", time.Since(start)))

	log.Printf("nodes: %d, propagations: %d", result.Nodes, result.Propagations)
	for _, line := range result.ExtraStats {
		log.Print(line)
	}

	switch {
	case !result.Complete:
		log.Fatal("no conclusion reached: search aborted, or pattern larger than target")
	case len(result.Isomorphism) == 0 && p.Size() > 0:
		fmt.Println("no isomorphism found")
	default:
		for v := 0; v < p.Size(); v++ {
			fmt.Printf("%d -> %d\n", v, result.Isomorphism[v])
		}
	}
}

func readGraph(path string) (*subiso.SimpleGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return textgraph.Read(f)
}
