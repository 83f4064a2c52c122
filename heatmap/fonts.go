package heatmap

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Metrics estimates rendered text width for tooltip sizing. The handle
// is constructed by the caller and passed into RenderOptions; there is
// no package-level cache, so fakes slot in trivially for tests.
type Metrics interface {
	// Width returns the estimated pixel width of s at the given font
	// size.
	Width(s string, size float64) float64
}

// FaceMetrics measures text against a real font face. The bundled
// basicfont face is 7px wide per glyph at its native 13px size;
// measurements are scaled linearly to the requested size.
type FaceMetrics struct {
	face   font.Face
	native float64 // native point size of the face
}

// NewFaceMetrics creates a Metrics backed by the bundled basic face.
// Init once and reuse; no teardown required.
func NewFaceMetrics() *FaceMetrics {
	return &FaceMetrics{face: basicfont.Face7x13, native: 13}
}

// Width implements Metrics.
func (m *FaceMetrics) Width(s string, size float64) float64 {
	w := font.MeasureString(m.face, s)
	return float64(w.Ceil()) * size / m.native
}

// HeuristicMetrics falls back to a fixed average character width when no
// font source is available.
type HeuristicMetrics struct {
	// AvgCharWidth is the assumed glyph width as a fraction of the font
	// size. 0.6 approximates common sans-serif faces.
	AvgCharWidth float64
}

// Width implements Metrics.
func (m HeuristicMetrics) Width(s string, size float64) float64 {
	avg := m.AvgCharWidth
	if avg <= 0 {
		avg = 0.6
	}
	return float64(len([]rune(s))) * size * avg
}
