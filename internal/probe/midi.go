// Package probe inspects intermediate pipeline artifacts for diagnostics.
// Probes are advisory: the downstream tool remains the authority on whether
// it can consume an artifact.
package probe

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"
)

// MIDIInfo summarizes an intermediate standard MIDI file.
type MIDIInfo struct {
	Tracks int
}

// InspectMIDI parses the SMF at path. A multi-track result usually means the
// notation source held several tunes, which is why the converter numbers its
// output files.
func InspectMIDI(path string) (MIDIInfo, error) {
	s, err := smf.ReadFile(path)
	if err != nil {
		return MIDIInfo{}, fmt.Errorf("read midi %s: %w", path, err)
	}
	return MIDIInfo{Tracks: len(s.Tracks)}, nil
}
