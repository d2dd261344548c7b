// Package graphio loads *core.Graph values from text.
//
// Two formats are supported:
//
// Edge list, one arc per line:
//
//	# comment
//	nodes 6
//	undirected
//	0 1 7
//	0 2 9
//
// "nodes N" preallocates N nodes; the graph also grows to the largest index
// seen. "directed" (default) or "undirected" applies to the edges that follow.
// Node counts and indices must stay below MaxNodes.
//
// YAML:
//
//	nodes: 6
//	directed: false
//	edges:
//	  - {from: 0, to: 1, weight: 7}
//
// Load picks the decoder from the file extension; WriteEdgeList is the inverse
// of ParseEdgeList.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpath/core"
)

// ErrSyntax indicates malformed input; the message carries the line when known.
var ErrSyntax = errors.New("graphio: syntax error")

// MaxNodes bounds the node count a decoder will allocate, so a single
// oversized index in untrusted input cannot exhaust memory.
const MaxNodes = 1 << 20

// ParseEdgeList reads the edge-list format from r.
func ParseEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph(0)
	directed := true
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "directed", "undirected":
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: %q takes no arguments", ErrSyntax, line, fields[0])
			}
			directed = fields[0] == "directed"
			continue
		case "nodes":
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: line %d: want \"nodes N\"", ErrSyntax, line)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 0 || n > MaxNodes {
				return nil, fmt.Errorf("%w: line %d: bad node count %q", ErrSyntax, line, fields[1])
			}
			g.Grow(n)
			continue
		}

		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want \"from to weight\", got %d fields", ErrSyntax, line, len(fields))
		}
		from, err1 := strconv.Atoi(fields[0])
		to, err2 := strconv.Atoi(fields[1])
		w, err3 := strconv.ParseInt(fields[2], 10, 64)
		if err := errors.Join(err1, err2, err3); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
		}
		if err := addEdge(g, from, to, w, directed); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: read: %w", err)
	}

	return g, nil
}

type yamlGraph struct {
	Nodes    int        `yaml:"nodes"`
	Directed *bool      `yaml:"directed"`
	Edges    []yamlEdge `yaml:"edges"`
}

type yamlEdge struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

// DecodeYAML reads the YAML format from r. "directed" defaults to true.
func DecodeYAML(r io.Reader) (*core.Graph, error) {
	var doc yamlGraph
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if doc.Nodes < 0 || doc.Nodes > MaxNodes {
		return nil, fmt.Errorf("%w: bad node count %d", ErrSyntax, doc.Nodes)
	}
	directed := doc.Directed == nil || *doc.Directed

	g := core.NewGraph(doc.Nodes)
	for i, e := range doc.Edges {
		if err := addEdge(g, e.From, e.To, e.Weight, directed); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

// WriteEdgeList writes g in the edge-list format: a "nodes N" header followed
// by every arc in node order. Undirected edges appear as their two arcs, so
// ParseEdgeList reproduces g exactly.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "nodes %d\n", g.Len())
	for _, a := range g.Edges() {
		fmt.Fprintf(bw, "%d %d %d\n", a.From, a.To, a.Weight)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("graphio: write: %w", err)
	}

	return nil
}

// Load opens path on fs and decodes it: YAML for .yaml/.yml, edge list otherwise.
func Load(fs afero.Fs, path string) (*core.Graph, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %q: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return ParseEdgeList(f)
	}
}

// addEdge grows g to cover both endpoints; negative indices are left for core to reject.
func addEdge(g *core.Graph, from, to int, w int64, directed bool) error {
	hi := max(from, to)
	if hi >= MaxNodes {
		return fmt.Errorf("%w: node %d exceeds limit %d", ErrSyntax, hi, MaxNodes)
	}
	g.Grow(hi + 1)
	if directed {
		return g.AddEdge(from, to, w)
	}

	return g.AddUndirectedEdge(from, to, w)
}
