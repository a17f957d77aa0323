// Package textgraph reads and writes the plain-text edge-list format used by
// the cmd/subiso CLI and its tests, adapted from the to-list text format of
// this package's ancestor (soniakeys/graph/io.Text).
package textgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ciaranm/restarting-sip-paper"
)

// Read parses an edge-list graph: the first line holds the vertex count,
// and every following non-blank, non-comment line holds one edge as two
// whitespace-separated vertex indices. Lines beginning with "//" (after
// leading whitespace) are comments, following the convention of this
// package's ancestor.
//
// Read reads to EOF.
func Read(r io.Reader) (*subiso.SimpleGraph, error) {
	sc := bufio.NewScanner(r)

	n, err := nextInt(sc)
	if err != nil {
		return nil, fmt.Errorf("textgraph: reading vertex count: %w", err)
	}
	g := subiso.NewSimpleGraph(n)

	for {
		line, ok := nextLine(sc)
		if !ok {
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("textgraph: malformed edge line %q", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("textgraph: %w", err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("textgraph: %w", err)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("textgraph: edge (%d, %d) out of range for %d vertices", u, v, n)
		}
		g.AddEdge(u, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

// nextInt reads the next non-blank, non-comment line as a single integer.
func nextInt(sc *bufio.Scanner) (int, error) {
	line, ok := nextLine(sc)
	if !ok {
		return 0, io.EOF
	}
	return strconv.Atoi(strings.TrimSpace(line))
}

// nextLine returns the next non-blank, non-comment line, or ok == false at
// EOF.
func nextLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		return line, true
	}
	return "", false
}

// Write emits g in the format Read accepts: the vertex count, then one line
// "u v" per edge with u <= v (self-loops written once as "v v").
func Write(w io.Writer, g *subiso.SimpleGraph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, g.Size()); err != nil {
		return err
	}
	for u := 0; u < g.Size(); u++ {
		for _, v := range g.Neighbours(u) {
			if v < u {
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d %d\n", u, v); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
