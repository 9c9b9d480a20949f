package gg

// Renderer rasterizes paths onto a Pixmap. Context delegates its Fill
// and Stroke operations to a Renderer, so swapping implementations
// (software, GPU-backed, etc.) needs no changes above this interface.
type Renderer interface {
	Fill(pixmap *Pixmap, path *Path, paint *Paint) error
	Stroke(pixmap *Pixmap, path *Path, paint *Paint) error
}
