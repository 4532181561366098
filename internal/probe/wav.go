package probe

import (
	"fmt"
	"os"
	"time"

	"github.com/go-audio/wav"
)

// WAVInfo summarizes the dry synthesized audio.
type WAVInfo struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   time.Duration
}

// InspectWAV reads the header of the WAV file at path.
func InspectWAV(path string) (WAVInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return WAVInfo{}, fmt.Errorf("open wav %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return WAVInfo{}, fmt.Errorf("not a valid wav file: %s", path)
	}
	dur, err := dec.Duration()
	if err != nil {
		return WAVInfo{}, fmt.Errorf("wav duration %s: %w", path, err)
	}

	return WAVInfo{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Duration:   dur,
	}, nil
}
