package preset

import "fmt"

// Output is one entry of the fixed output format table. Bitrate is empty for
// uncompressed PCM; some encoders reject an explicit zero bitrate, so the
// flag is omitted entirely rather than passed as zero.
type Output struct {
	Label   string
	Ext     string
	Codec   string
	Bitrate string
}

// Outputs lists every output preset in menu order.
var Outputs = []Output{
	{Label: "WAV (44.1 kHz)", Ext: ".wav", Codec: "pcm_s16le"},
	{Label: "MP3 192 kbps", Ext: ".mp3", Codec: "libmp3lame", Bitrate: "192k"},
	{Label: "Opus 96 kbps", Ext: ".opus", Codec: "libopus", Bitrate: "96k"},
}

// UnknownOutputError reports a lookup of an output preset label that is not
// in the table.
type UnknownOutputError struct {
	Label string
}

func (e *UnknownOutputError) Error() string {
	return fmt.Sprintf("unknown output preset: %q", e.Label)
}

// OutputByLabel looks up an output preset by its human label.
func OutputByLabel(label string) (Output, error) {
	for _, o := range Outputs {
		if o.Label == label {
			return o, nil
		}
	}
	return Output{}, &UnknownOutputError{Label: label}
}

// OutputLabels returns all output preset labels in menu order.
func OutputLabels() []string {
	labels := make([]string, len(Outputs))
	for i, o := range Outputs {
		labels[i] = o.Label
	}
	return labels
}
