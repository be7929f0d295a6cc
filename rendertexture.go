package bezier

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// textureCache holds the GPU copy of the most recently drawn CPU image.
// Decorations are baked on the CPU and only change after a committed drag,
// so one slot is enough: a new source replaces and deallocates the old
// texture.
type textureCache struct {
	src   image.Image
	image *ebiten.Image
}

// texture returns the ebiten image for src, uploading it on first use.
func (tc *textureCache) texture(src image.Image) *ebiten.Image {
	if tc.image != nil && tc.src == src {
		return tc.image
	}
	tc.Dispose()
	tc.src = src
	tc.image = ebiten.NewImageFromImage(src)
	return tc.image
}

// Dispose deallocates the cached texture. The cache may be reused afterwards.
func (tc *textureCache) Dispose() {
	if tc.image != nil {
		tc.image.Deallocate()
	}
	tc.image = nil
	tc.src = nil
}
