package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/abcforge/abcforge/internal/config"
	"github.com/abcforge/abcforge/internal/preset"
	"github.com/abcforge/abcforge/internal/render"
)

func main() {
	var (
		in        = flag.String("in", "", "ABC notation file to render")
		out       = flag.String("out", "", "destination audio file")
		reverb    = flag.String("reverb", "Concert hall", "reverb preset (see -list)")
		format    = flag.String("format", "WAV (44.1 kHz)", "output preset (see -list)")
		soundFont = flag.String("soundfont", "", "override the bundled SF2 sound font")
		preview   = flag.Bool("preview", false, "play the result instead of writing -out")
		list      = flag.Bool("list", false, "list presets and exit")

		dry        = flag.Float64("dry", preset.DefaultDryGain, "convolution dry gain (0-10)")
		wet        = flag.Float64("wet", preset.DefaultWetGain, "convolution wet gain (0-10)")
		mixDry     = flag.Float64("mix-dry", preset.DefaultMixDry, "dry branch mix weight")
		mixWet     = flag.Float64("mix-wet", preset.DefaultMixWet, "wet branch mix weight")
		postVolume = flag.Float64("post-volume", preset.DefaultPostVolume, "makeup gain after the mix")
		limiter    = flag.Bool("limiter", true, "append a soft limiter after the makeup gain")
	)
	flag.Parse()

	if *list {
		fmt.Println("Reverb presets:")
		for _, l := range preset.ReverbLabels() {
			fmt.Println("  " + l)
		}
		fmt.Println("Output presets:")
		for _, l := range preset.OutputLabels() {
			fmt.Println("  " + l)
		}
		return
	}

	if *in == "" {
		log.Fatal("missing -in (ABC notation file)")
	}
	if *out == "" && !*preview {
		log.Fatal("missing -out (destination audio file)")
	}

	rv, ok := preset.ReverbByLabel(*reverb)
	if !ok {
		log.Fatalf("unknown reverb preset %q (try -list)", *reverb)
	}
	op, err := preset.OutputByLabel(*format)
	if err != nil {
		log.Fatalf("%v (try -list)", err)
	}

	req := render.Request{
		SourcePath: *in,
		DestPath:   *out,
		Reverb:     rv,
		Output:     op,
		SoundFont:  *soundFont,
	}

	// Only hand over a tuning when the user touched one of the knobs;
	// otherwise the preset's own defaults apply.
	tuned := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dry", "wet", "mix-dry", "mix-wet", "post-volume", "limiter":
			tuned = true
		}
	})
	if tuned {
		req.Tuning = &preset.Tuning{
			Dry:        *dry,
			Wet:        *wet,
			MixDry:     *mixDry,
			MixWet:     *mixWet,
			PostVolume: *postVolume,
			Limiter:    *limiter,
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	r := render.New(config.Load())

	if *preview {
		log.Printf("previewing %s (%s)", *in, rv.Label)
		err = r.Preview(ctx, req)
	} else {
		log.Printf("rendering %s -> %s (%s, %s)", *in, *out, rv.Label, op.Label)
		err = r.Render(ctx, req)
	}
	if err != nil {
		if render.IsConfigError(err) {
			log.Printf("this is an installation problem, not an input problem; " +
				"reinstall or check ABCFORGE_RESOURCE_DIR")
		}
		log.Fatalf("render failed: %v", err)
	}

	if !*preview {
		log.Printf("wrote %s", *out)
	}
}
