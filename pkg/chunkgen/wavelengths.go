package chunkgen

import (
	"fmt"
	"math"

	"github.com/przecze/rooms-of-roaming/pkg/wrng"
)

// wavelength is one sinusoid term: value(t) = sin(freq*t + phase).
type wavelength struct {
	freq, phase float64
}

// worldWavelengths derives a fixed set of sinusoid terms from the world
// seed alone. Because they depend only on worldSeed, every chunk in the
// world samples the same terms at different (cx, cy) — this is what
// makes alpha/beta/spatialVariation vary smoothly across the infinite
// grid while remaining a pure function of (worldSeed, cx, cy).
func worldWavelengths(worldSeed uint64) (x, y, xy [3]wavelength) {
	r := wrng.New(worldSeed, "chunk:wavelengths")
	fill := func() [3]wavelength {
		var w [3]wavelength
		for i := range w {
			w[i] = wavelength{
				freq:  r.Float64Range(0.05, 0.35),
				phase: r.Float64Range(0, 2*math.Pi),
			}
		}
		return w
	}
	return fill(), fill(), fill()
}

// sampleField sums the three sinusoid terms evaluated at t. The result
// lies in [-3,3]; computeWavelengths adds two such samples and rescales
// the sum into [0,1].
func sampleField(terms [3]wavelength, t float64) float64 {
	sum := 0.0
	for _, w := range terms {
		sum += math.Sin(w.freq*t + w.phase)
	}
	return sum
}

// computeWavelengths implements spec §4.3 phase "setup": alpha, beta
// and spatialVariation are smooth scalar fields of (cx, cy), pure
// functions of (worldSeed, cx, cy), in [0, 1].
func computeWavelengths(worldSeed uint64, cx, cy int) Wavelengths {
	xTerms, yTerms, xyTerms := worldWavelengths(worldSeed)

	alphaRaw := sampleField(xTerms, float64(cx)) + sampleField(yTerms, float64(cy))
	betaRaw := sampleField(yTerms, float64(cx)) + sampleField(xyTerms, float64(cx+cy))
	spatialRaw := sampleField(xyTerms, float64(cx)-float64(cy)) + sampleField(xTerms, float64(cy))

	alpha := clamp01((alphaRaw/6.0 + 0.5))
	beta := clamp01((betaRaw/6.0 + 0.5))
	spatial := clamp01((spatialRaw/6.0 + 0.5))

	return Wavelengths{
		Alpha:            alpha,
		Beta:             beta,
		SpatialVariation: spatial,
		Descriptions: []string{
			fmt.Sprintf("alpha: %d terms, cx/cy driven, value=%.4f", len(xTerms), alpha),
			fmt.Sprintf("beta: %d terms, cx/(cx+cy) driven, value=%.4f", len(yTerms), beta),
			fmt.Sprintf("spatialVariation: %d terms, (cx-cy)/cy driven, value=%.4f", len(xyTerms), spatial),
		},
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
