// Package chartcfg holds the pure layout math behind the dashboard charts so
// it stays testable without a display.
package chartcfg

import (
	"fmt"
	"math"
)

// ComputeChartDimensions applies the width/height clamp rules used for
// charts. Input: desired raw width (e.g., canvas width). Returns clamped
// width & height with a ~3:1 aspect ratio.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.33)
	if h < 280 {
		h = 280
	}
	if h > 520 {
		h = 520
	}
	return w, h
}

// ComputeHeatmapCellSize sizes square correlation cells so the grid plus a
// label gutter fits the chart width. Clamped for label readability.
func ComputeHeatmapCellSize(chartW, columns int) int {
	if columns < 1 {
		columns = 1
	}
	const gutter = 180
	c := (chartW - gutter) / columns
	if c < 48 {
		c = 48
	}
	if c > 110 {
		c = 110
	}
	return c
}

// NiceAxisBounds widens [min,max] by a 5% margin and rounds outward to the
// span's order of magnitude.
func NiceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// NiceTicks returns ~n tick positions across [min,max] using 1/2/2.5/5/10
// steps scaled by power of ten.
func NiceTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var ticks []float64
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, v)
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

// FormatCompact renders an axis/legend value with a K/M/B suffix.
func FormatCompact(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case av >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case av >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	case av >= 10:
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// SizeBucket maps v within [min,max] to a dot-size bucket 0..buckets-1.
// The scatter chart uses this for its point-size channel, since point styles
// apply per series. NaN and degenerate ranges land in the smallest bucket.
func SizeBucket(v, min, max float64, buckets int) int {
	if buckets < 1 {
		return 0
	}
	if math.IsNaN(v) || max <= min {
		return 0
	}
	f := (v - min) / (max - min)
	b := int(f * float64(buckets))
	if b >= buckets {
		b = buckets - 1
	}
	if b < 0 {
		b = 0
	}
	return b
}

// TruncateLabel shortens long area names for axis labels.
func TruncateLabel(s string, n int) string {
	if n <= 1 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
