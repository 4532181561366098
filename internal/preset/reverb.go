// Package preset defines the fixed reverb and output preset tables plus the
// tuning parameters accepted by the reverb compiler.
package preset

// ReverbKind discriminates the reverb preset families.
type ReverbKind int

const (
	// ReverbOff is the no-effect sentinel: dry audio passes straight through.
	ReverbOff ReverbKind = iota
	// ReverbAFIR is convolution reverb against a bundled impulse response.
	ReverbAFIR
)

// Reverb is one entry of the fixed reverb preset table.
type Reverb struct {
	Label   string
	Kind    ReverbKind
	Impulse string // impulse response filename, AFIR presets only

	// Per-preset convolution gains, used when the caller supplies no tuning.
	Dry float64
	Wet float64
}

// Reverbs lists every reverb preset in menu order. The first entry is the
// no-effect sentinel.
var Reverbs = []Reverb{
	{Label: "None", Kind: ReverbOff},
	{Label: "Dry studio", Kind: ReverbAFIR, Impulse: "IRx125_01A_dry-studio.wav", Dry: 1.2, Wet: 0.6},
	{Label: "Small room", Kind: ReverbAFIR, Impulse: "IRx250_01A_small-room.wav", Dry: 1.0, Wet: 0.9},
	{Label: "Concert hall", Kind: ReverbAFIR, Impulse: "IRx500_01A_concert-hall.wav", Dry: 4.0, Wet: 1.0},
	{Label: "Wide hall", Kind: ReverbAFIR, Impulse: "IRx500_02A_wide-hall.wav", Dry: 0.9, Wet: 1.2},
	{Label: "Grand hall", Kind: ReverbAFIR, Impulse: "IRx1000_01A_grand-hall.wav", Dry: 0.8, Wet: 1.3},
	{Label: "Cinematic hall", Kind: ReverbAFIR, Impulse: "IRx1000_02A_cinematic-hall.wav", Dry: 0.7, Wet: 1.4},
}

// ReverbByLabel looks up a reverb preset by its human label.
func ReverbByLabel(label string) (Reverb, bool) {
	for _, r := range Reverbs {
		if r.Label == label {
			return r, true
		}
	}
	return Reverb{}, false
}

// ReverbLabels returns all reverb preset labels in menu order.
func ReverbLabels() []string {
	labels := make([]string, len(Reverbs))
	for i, r := range Reverbs {
		labels[i] = r.Label
	}
	return labels
}

// Off reports whether the preset is the no-effect sentinel.
func (r Reverb) Off() bool {
	return r.Kind == ReverbOff
}

// DefaultTuning returns the tuning used when a caller supplies none: the
// preset's own convolution gains with the baked mix and volume defaults.
func (r Reverb) DefaultTuning() Tuning {
	t := DefaultTuning()
	if r.Kind == ReverbAFIR {
		t.Dry = r.Dry
		t.Wet = r.Wet
	}
	return t
}
