package probe

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// emptyTrack is an MTrk chunk holding only the end-of-track meta event.
var emptyTrack = []byte{
	'M', 'T', 'r', 'k',
	0x00, 0x00, 0x00, 0x04,
	0x00, 0xFF, 0x2F, 0x00,
}

// writeSMF writes a minimal standard MIDI file with the given track count.
func writeSMF(t *testing.T, path string, tracks int) {
	t.Helper()
	format := byte(0)
	if tracks > 1 {
		format = 1
	}
	data := []byte{
		'M', 'T', 'h', 'd',
		0x00, 0x00, 0x00, 0x06,
		0x00, format,
		0x00, byte(tracks),
		0x01, 0xE0, // 480 ticks per quarter note
	}
	for i := 0; i < tracks; i++ {
		data = append(data, emptyTrack...)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestInspectMIDISingleTrack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp.mid")
	writeSMF(t, path, 1)

	info, err := InspectMIDI(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Tracks != 1 {
		t.Errorf("Tracks = %d, want 1", info.Tracks)
	}
}

func TestInspectMIDIMultiTrack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temp.mid")
	writeSMF(t, path, 3)

	info, err := InspectMIDI(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Tracks != 3 {
		t.Errorf("Tracks = %d, want 3", info.Tracks)
	}
}

func TestInspectMIDIGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.mid")
	if err := os.WriteFile(path, []byte("not a midi file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := InspectMIDI(path); err == nil {
		t.Error("InspectMIDI should reject garbage input")
	}
}

// writeWAV writes a silent 16-bit WAV file of the given shape.
func writeWAV(t *testing.T, path string, sampleRate, channels, frames int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: channels,
		},
		Data:           make([]int, frames*channels),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestInspectWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dry.wav")
	writeWAV(t, path, 44100, 2, 4410) // 100ms stereo

	info, err := InspectWAV(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", info.SampleRate)
	}
	if info.Channels != 2 {
		t.Errorf("Channels = %d, want 2", info.Channels)
	}
	if info.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", info.BitDepth)
	}
	want := 100 * time.Millisecond
	if diff := info.Duration - want; diff < -time.Millisecond || diff > time.Millisecond {
		t.Errorf("Duration = %v, want ~%v", info.Duration, want)
	}
}

func TestInspectWAVInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.wav")
	if err := os.WriteFile(path, []byte("definitely not riff"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := InspectWAV(path); err == nil {
		t.Error("InspectWAV should reject a non-WAV file")
	}
}

func TestInspectWAVMissing(t *testing.T) {
	if _, err := InspectWAV(filepath.Join(t.TempDir(), "absent.wav")); err == nil {
		t.Error("InspectWAV should fail on a missing file")
	}
}
