package contact

import (
	"fmt"
	"math"
	"time"
)

const (
	// ParallaxRange is the background offset in pixels at either end of the scroll.
	ParallaxRange = 300.0
	// PanPeriod is the duration of one horizontal background loop.
	PanPeriod = 60 * time.Second
)

// ScrollProgress returns how far a section has travelled through the viewport,
// from 0 when its top meets the viewport bottom to 1 when its bottom leaves the
// viewport top. top is the section's offset from the viewport top.
func ScrollProgress(top, height, viewport float64) float64 {
	span := viewport + height
	if span <= 0 {
		return 0
	}
	return clamp((viewport-top)/span, 0, 1)
}

// ParallaxOffset maps scroll progress linearly onto [-ParallaxRange, ParallaxRange].
func ParallaxOffset(progress float64) float64 {
	return -ParallaxRange + clamp(progress, 0, 1)*2*ParallaxRange
}

// PanOffset returns the horizontal background position after elapsed time of a
// linear loop that covers width once per PanPeriod.
func PanOffset(elapsed time.Duration, width float64) float64 {
	if width <= 0 || elapsed <= 0 {
		return 0
	}
	phase := math.Mod(float64(elapsed), float64(PanPeriod)) / float64(PanPeriod)
	return phase * width
}

// ParallaxExpression is the client-side equivalent of
// ParallaxOffset(ScrollProgress(...)) for the element bound to el.
func ParallaxExpression(el string) string {
	return fmt.Sprintf(
		"(() => { const r = %[1]s.getBoundingClientRect(); const v = window.innerHeight; "+
			"const p = Math.min(1, Math.max(0, (v - r.top) / (v + r.height))); "+
			"%[1]s.style.backgroundPositionY = (%[2]g + p * %[3]g) + 'px' })()",
		el, -ParallaxRange, 2*ParallaxRange,
	)
}

// PanKeyframes returns a CSS animation looping the background horizontally
// over width pixels.
func PanKeyframes(name string, width int) string {
	return fmt.Sprintf(
		"@keyframes %[1]s { from { background-position-x: 0px } to { background-position-x: %[2]dpx } }\n"+
			".%[1]s { animation: %[1]s %[3]gs linear infinite }",
		name, width, PanPeriod.Seconds(),
	)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
