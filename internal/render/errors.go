package render

import (
	"errors"
	"fmt"

	"github.com/abcforge/abcforge/internal/fxgraph"
)

// SourceNotFoundError reports a notation source path that does not exist.
// Raised before any temporary resources are allocated.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("notation file not found: %s", e.Path)
}

// SoundSourceMissingError reports an absent instrument sample bank. A common
// first-run misconfiguration, so the message carries remediation guidance.
type SoundSourceMissingError struct {
	Path string
}

func (e *SoundSourceMissingError) Error() string {
	return fmt.Sprintf("sound font not found: %s\n"+
		"Download the grand piano sound font into the resources directory "+
		"or point ABCFORGE_SOUNDFONT at an SF2 file.", e.Path)
}

// IsConfigError reports whether err is a packaging or configuration defect
// rather than a user input problem, so callers can pick remediation copy.
func IsConfigError(err error) bool {
	var unsupported *fxgraph.UnsupportedReverbError
	var impulse *fxgraph.ImpulseMissingError
	return errors.As(err, &unsupported) || errors.As(err, &impulse)
}
