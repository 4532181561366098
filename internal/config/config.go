package config

import (
	"os"
	"path/filepath"
)

// DefaultSoundFont is the bundled instrument sample bank.
const DefaultSoundFont = "YDP-GrandPiano-20160804.sf2"

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	// ResourceDir is the root for bundled assets (sound font, impulses).
	ResourceDir string

	// SoundFont is the instrument sample bank used for synthesis.
	SoundFont string

	// External tool binaries. Overridable so packaged builds can point
	// at copies shipped next to the executable.
	Abc2MIDIBin   string
	FluidSynthBin string
	FFmpegBin     string
	FFplayBin     string
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	root := envStr("ABCFORGE_RESOURCE_DIR", defaultResourceDir())
	return Config{
		ResourceDir:   root,
		SoundFont:     envStr("ABCFORGE_SOUNDFONT", filepath.Join(root, DefaultSoundFont)),
		Abc2MIDIBin:   envStr("ABCFORGE_ABC2MIDI", "abc2midi"),
		FluidSynthBin: envStr("ABCFORGE_FLUIDSYNTH", "fluidsynth"),
		FFmpegBin:     envStr("ABCFORGE_FFMPEG", "ffmpeg"),
		FFplayBin:     envStr("ABCFORGE_FFPLAY", "ffplay"),
	}
}

// ImpulseDir returns the directory holding the bundled impulse responses.
func (c Config) ImpulseDir() string {
	return filepath.Join(c.ResourceDir, "impulses")
}

// defaultResourceDir resolves the asset root for the two supported layouts:
// a packaged build carries resources/ beside the executable, a source
// checkout carries them in the working directory.
func defaultResourceDir() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "resources")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "resources"
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
