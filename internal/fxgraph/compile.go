package fxgraph

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abcforge/abcforge/internal/preset"
)

// Convolution gains outside this range are clamped, never rejected.
const (
	minConvGain = 0.0
	maxConvGain = 10.0
)

// UnsupportedReverbError reports a preset whose family the compiler does not
// understand. This is a configuration defect, not a user input error.
type UnsupportedReverbError struct {
	Label string
	Kind  preset.ReverbKind
}

func (e *UnsupportedReverbError) Error() string {
	return fmt.Sprintf("reverb preset %q has unsupported type %d", e.Label, e.Kind)
}

// ImpulseMissingError reports an AFIR preset whose bundled impulse response
// is absent. This is always a packaging defect, not a user input error.
type ImpulseMissingError struct {
	Label string
	Path  string
}

func (e *ImpulseMissingError) Error() string {
	return fmt.Sprintf("impulse response for preset %q not found: %s", e.Label, e.Path)
}

// Compile builds the signal graph for a dry audio file, reverb preset, and
// tuning. The no-effect sentinel compiles to the bypass graph; AFIR presets
// compile to split -> convolve -> mix -> gain with an optional limiter.
// Impulse responses are resolved under impulseDir.
func Compile(dryPath string, rv preset.Reverb, tn preset.Tuning, impulseDir string) (*Graph, error) {
	if rv.Off() {
		return &Graph{DryPath: dryPath}, nil
	}
	if rv.Kind != preset.ReverbAFIR {
		return nil, &UnsupportedReverbError{Label: rv.Label, Kind: rv.Kind}
	}

	irPath := filepath.Join(impulseDir, rv.Impulse)
	if _, err := os.Stat(irPath); err != nil {
		return nil, &ImpulseMissingError{Label: rv.Label, Path: irPath}
	}

	nodes := []Node{
		{Kind: Split},
		{Kind: Convolve, Dry: clampGain(tn.Dry), Wet: clampGain(tn.Wet)},
		{Kind: Mix, DryWeight: tn.MixDry, WetWeight: tn.MixWet},
		{Kind: Gain, Volume: tn.PostVolume},
	}
	if tn.Limiter {
		nodes = append(nodes, Node{Kind: Limit})
	}

	return &Graph{DryPath: dryPath, ImpulsePath: irPath, Nodes: nodes}, nil
}

// Bind appends the terminal encode step from an output preset. Binding an
// output with no codec fails before any external process is spawned.
func (g *Graph) Bind(out preset.Output) error {
	if out.Codec == "" {
		return &preset.UnknownOutputError{Label: out.Label}
	}
	g.enc = &Encode{Codec: out.Codec, Bitrate: out.Bitrate}
	return nil
}

func clampGain(v float64) float64 {
	if v < minConvGain {
		return minConvGain
	}
	if v > maxConvGain {
		return maxConvGain
	}
	return v
}
