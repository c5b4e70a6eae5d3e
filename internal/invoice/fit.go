package invoice

// MeasureFunc reports the rendered width of text at a given font size.
// The renderer supplies one backed by the PDF engine; tests inject a fake.
type MeasureFunc func(text string, size float64) float64

// FitFontSize shrinks a font size from base in step decrements until the
// text fits maxWidth, stopping at min. The returned size never goes below
// min even if the text still does not fit (the cell then clips rather
// than wraps; table cells are single-line).
func FitFontSize(text string, maxWidth, base, min, step float64, measure MeasureFunc) float64 {
	size := base
	for size > min && measure(text, size) > maxWidth {
		size -= step
	}
	if size < min {
		size = min
	}
	return size
}
