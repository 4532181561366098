// Package render owns the end-to-end pipeline: notation to MIDI, MIDI to dry
// audio, dry audio through the reverb graph to the encoded destination.
package render

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/abcforge/abcforge/internal/config"
	"github.com/abcforge/abcforge/internal/fxgraph"
	"github.com/abcforge/abcforge/internal/preset"
	"github.com/abcforge/abcforge/internal/probe"
	"github.com/abcforge/abcforge/internal/stage"
)

// Fixed artifact names inside the per-render temporary scope. The notation
// converter may still rename its output; see stage.Resolve.
const (
	intermediateName = "temp.mid"
	intermediateStem = "temp"
	dryName          = "dry.wav"
	previewName      = "preview.wav"
)

// Request describes one render. It is consumed by a single Render call and
// never persisted.
type Request struct {
	SourcePath string
	DestPath   string
	Reverb     preset.Reverb
	Output     preset.Output

	// Tuning overrides the preset's defaults when non-nil.
	Tuning *preset.Tuning

	// SoundFont overrides the configured sample bank when non-empty.
	SoundFont string
}

// Renderer sequences the pipeline stages. Renders may run concurrently;
// each owns a disjoint temporary scope.
type Renderer struct {
	cfg config.Config
	run stage.Runner

	inFlight atomic.Int32
}

// New creates a renderer that spawns the real external tools.
func New(cfg config.Config) *Renderer {
	return &Renderer{cfg: cfg, run: stage.Exec{}}
}

// Busy reports whether any render is in flight. Callers wanting at most one
// render per session check this before invoking Render again.
func (r *Renderer) Busy() bool {
	return r.inFlight.Load() > 0
}

// Render runs the full pipeline for one request. The first failure at any
// stage propagates unchanged; the destination file either gets fully written
// or not written at all. The context is consulted between stages only — an
// external process, once spawned, runs to completion.
func (r *Renderer) Render(ctx context.Context, req Request) error {
	r.inFlight.Add(1)
	defer r.inFlight.Add(-1)

	if _, err := os.Stat(req.SourcePath); err != nil {
		return &SourceNotFoundError{Path: req.SourcePath}
	}

	tmp, err := os.MkdirTemp("", "abcforge-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	return r.renderInto(ctx, req, tmp, req.DestPath)
}

// Preview renders the request into a temporary file and plays it through the
// external player, then discards the file.
func (r *Renderer) Preview(ctx context.Context, req Request) error {
	r.inFlight.Add(1)
	defer r.inFlight.Add(-1)

	if _, err := os.Stat(req.SourcePath); err != nil {
		return &SourceNotFoundError{Path: req.SourcePath}
	}

	tmp, err := os.MkdirTemp("", "abcforge-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	// Previews always use the uncompressed output preset.
	req.Output = preset.Outputs[0]
	out := filepath.Join(tmp, previewName)
	if err := r.renderInto(ctx, req, tmp, out); err != nil {
		return err
	}
	return r.run.Run(stage.Play(r.cfg.FFplayBin, out))
}

// renderInto runs the three ordered stages inside an existing scope.
func (r *Renderer) renderInto(ctx context.Context, req Request, tmp, dest string) error {
	// Stage 1: notation -> intermediate MIDI.
	if err := ctx.Err(); err != nil {
		return err
	}
	midiPath := filepath.Join(tmp, intermediateName)
	if err := r.run.Run(stage.ConvertNotation(r.cfg.Abc2MIDIBin, req.SourcePath, midiPath)); err != nil {
		return err
	}
	midiPath, err := stage.Resolve(midiPath, tmp, intermediateStem, ".mid")
	if err != nil {
		return err
	}
	if info, err := probe.InspectMIDI(midiPath); err != nil {
		log.Printf("midi probe %s: %v", filepath.Base(midiPath), err)
	} else {
		log.Printf("intermediate %s: %d track(s)", filepath.Base(midiPath), info.Tracks)
	}

	// Stage 2: intermediate -> dry audio.
	if err := ctx.Err(); err != nil {
		return err
	}
	soundFont := req.SoundFont
	if soundFont == "" {
		soundFont = r.cfg.SoundFont
	}
	if _, err := os.Stat(soundFont); err != nil {
		return &SoundSourceMissingError{Path: soundFont}
	}
	dryPath := filepath.Join(tmp, dryName)
	if err := r.run.Run(stage.Synthesize(r.cfg.FluidSynthBin, midiPath, dryPath, soundFont)); err != nil {
		return err
	}
	// The synthesizer must honor the exact requested path.
	if _, err := os.Stat(dryPath); err != nil {
		return &stage.NotProducedError{Expected: dryPath}
	}
	if info, err := probe.InspectWAV(dryPath); err != nil {
		log.Printf("wav probe %s: %v", dryName, err)
	} else {
		log.Printf("dry audio: %v, %d Hz, %d channel(s)", info.Duration, info.SampleRate, info.Channels)
	}

	// Stage 3: compile the reverb graph and hand it to the engine.
	if err := ctx.Err(); err != nil {
		return err
	}
	tuning := req.Reverb.DefaultTuning()
	if req.Tuning != nil {
		tuning = *req.Tuning
	}
	graph, err := fxgraph.Compile(dryPath, req.Reverb, tuning, r.cfg.ImpulseDir())
	if err != nil {
		return err
	}
	if err := graph.Bind(req.Output); err != nil {
		return err
	}
	cmd, err := stage.ExecuteGraph(r.cfg.FFmpegBin, graph, dest)
	if err != nil {
		return err
	}
	return r.run.Run(cmd)
}
