package stage

import (
	"fmt"

	"github.com/abcforge/abcforge/internal/fxgraph"
)

// SynthSampleRate is the sample rate of the dry synthesized audio.
const SynthSampleRate = 44100

// synthOutputGain lifts fluidsynth's quiet default of 0.2.
const synthOutputGain = "0.8"

// ConvertNotation builds the notation-to-MIDI conversion command.
// The converter may rename its output; resolve the artifact afterwards.
func ConvertNotation(bin, source, midi string) Command {
	return Command{
		Name: bin,
		Args: []string{source, "-o", midi},
		Hint: "abc2midi (from the abcmidi package) is required.\n" +
			"On Debian/Ubuntu: sudo apt-get install abcmidi",
	}
}

// Synthesize builds the MIDI-to-WAV synthesis command. Argument order is
// part of the tool contract: rate, gain, non-interactive flags, container
// format, sound font, then the MIDI file.
func Synthesize(bin, midi, wav, soundFont string) Command {
	return Command{
		Name: bin,
		Args: []string{
			"-F", wav,
			"-r", fmt.Sprint(SynthSampleRate),
			"-g", synthOutputGain,
			"-i", "-n",
			"-T", "wav",
			soundFont,
			midi,
		},
		Hint: "fluidsynth is required.\n" +
			"On Debian/Ubuntu: sudo apt-get install fluidsynth",
	}
}

// ExecuteGraph builds the engine invocation for a compiled signal graph
// targeting dst. The graph must have an output encoder bound.
func ExecuteGraph(bin string, g *fxgraph.Graph, dst string) (Command, error) {
	args, err := g.Args(dst)
	if err != nil {
		return Command{}, err
	}
	return Command{
		Name: bin,
		Args: args,
		Hint: "ffmpeg is required.\n" +
			"On Debian/Ubuntu: sudo apt-get install ffmpeg",
	}, nil
}

// Play builds the preview playback command. It blocks until the file has
// played through.
func Play(bin, file string) Command {
	return Command{
		Name: bin,
		Args: []string{"-autoexit", "-nodisp", "-loglevel", "error", file},
		Hint: "ffplay (part of ffmpeg) is required.\n" +
			"On Debian/Ubuntu: sudo apt-get install ffmpeg",
	}
}
