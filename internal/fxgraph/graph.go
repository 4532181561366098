// Package fxgraph compiles reverb presets and tuning parameters into the
// signal-processing graph executed by the external ffmpeg engine.
package fxgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeKind identifies a processing node in the graph.
type NodeKind int

const (
	Split NodeKind = iota // fan the dry input into two identical branches
	Convolve              // convolve one branch with the impulse response
	Mix                   // recombine dry and wet branches with weights
	Gain                  // linear makeup gain
	Limit                 // soft limiter guarding against clipping
)

// Node is one processing step. Only the fields for its kind are meaningful.
type Node struct {
	Kind NodeKind

	Dry float64 // Convolve: input gain, clamped to [0,10]
	Wet float64 // Convolve: output gain, clamped to [0,10]

	DryWeight float64 // Mix: weight of the untouched branch
	WetWeight float64 // Mix: weight of the convolved branch

	Volume float64 // Gain: linear multiplier
}

// Encode is the terminal encoding step. An empty Bitrate means the flag is
// omitted from the rendered command (PCM encoders reject an explicit zero).
type Encode struct {
	Codec   string
	Bitrate string
}

// Graph describes the signal path from a dry audio file to an encoded
// output. An empty node chain is the bypass graph: the dry input feeds the
// encode step directly. Graphs are built fresh per render and never mutated
// after binding.
type Graph struct {
	DryPath     string
	ImpulsePath string // second input, set only when the chain convolves
	Nodes       []Node

	enc *Encode
}

// Bound reports whether an output encoder has been bound to the graph.
func (g *Graph) Bound() bool {
	return g.enc != nil
}

// Count returns the number of nodes of the given kind.
func (g *Graph) Count(kind NodeKind) int {
	n := 0
	for _, node := range g.Nodes {
		if node.Kind == kind {
			n++
		}
	}
	return n
}

// Args renders the graph into the argument list for the external engine,
// targeting dst. An existing file at dst is overwritten. The graph must
// have an encoder bound.
func (g *Graph) Args(dst string) ([]string, error) {
	if g.enc == nil {
		return nil, fmt.Errorf("graph has no output encoder bound")
	}

	args := []string{"-loglevel", "error", "-y", "-i", g.DryPath}
	if len(g.Nodes) > 0 {
		chain, out := g.filterChain()
		args = append(args, "-i", g.ImpulsePath, "-filter_complex", chain, "-map", out)
	}
	args = append(args, "-c:a", g.enc.Codec)
	if g.enc.Bitrate != "" {
		args = append(args, "-b:a", g.enc.Bitrate)
	}
	return append(args, dst), nil
}

// filterChain walks the node chain and emits the filter_complex expression
// plus the label of its terminal pad. The dry input is pad [0:a], the
// impulse response pad [1:a].
func (g *Graph) filterChain() (chain, out string) {
	var parts []string
	cur := "[0:a]"
	dryBranch := cur
	for i, n := range g.Nodes {
		next := fmt.Sprintf("[n%d]", i)
		switch n.Kind {
		case Split:
			dryBranch = fmt.Sprintf("[d%d]", i)
			parts = append(parts, cur+"asplit=2"+next+dryBranch)
		case Convolve:
			parts = append(parts, fmt.Sprintf("%s[1:a]afir=dry=%s:wet=%s%s",
				cur, ftoa(n.Dry), ftoa(n.Wet), next))
		case Mix:
			// Dry branch first, wet branch second; weight order matches.
			parts = append(parts, fmt.Sprintf("%s%samix=inputs=2:weights='%s %s'%s",
				dryBranch, cur, ftoa(n.DryWeight), ftoa(n.WetWeight), next))
		case Gain:
			parts = append(parts, cur+"volume="+ftoa(n.Volume)+next)
		case Limit:
			parts = append(parts, cur+"alimiter"+next)
		}
		cur = next
	}
	return strings.Join(parts, ";"), cur
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
