package preset

// Baked tuning constants, applied when a caller supplies no tuning.
const (
	DefaultDryGain    = 4.0
	DefaultWetGain    = 1.0
	DefaultMixDry     = 1.0
	DefaultMixWet     = 1.0
	DefaultPostVolume = 3.0
)

// Tuning parameterizes the reverb signal graph. Dry and Wet feed the
// convolution stage and are clamped to [0,10] at compile time; MixDry and
// MixWet weight the final dry/wet blend and are passed through unnormalized;
// PostVolume is a linear makeup gain applied after the mix.
type Tuning struct {
	Dry        float64
	Wet        float64
	MixDry     float64
	MixWet     float64
	PostVolume float64
	Limiter    bool
}

// DefaultTuning returns the baked tuning constants.
func DefaultTuning() Tuning {
	return Tuning{
		Dry:        DefaultDryGain,
		Wet:        DefaultWetGain,
		MixDry:     DefaultMixDry,
		MixWet:     DefaultMixWet,
		PostVolume: DefaultPostVolume,
		Limiter:    true,
	}
}
