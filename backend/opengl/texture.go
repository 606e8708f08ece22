package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// CreateTexture uploads an RGBA8 image of the given size.
// Sampling parameters come from the sampler bound at draw time; the texture's
// own parameters are set to linear filtering without mipmaps.
func (d *Device) CreateTexture(width, height int, pixels []uint8) (uint32, error) {
	if width <= 0 || height <= 0 {
		return 0, errors.Errorf("invalid texture size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return 0, errors.Errorf("texture %dx%d needs %d bytes, got %d", width, height, width*height*4, len(pixels))
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	if tex == 0 {
		return 0, errors.New("glGenTextures returned 0")
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return 0, errors.Errorf("glTexImage2D: error 0x%x", code)
	}
	return tex, nil
}

// TextureFromImage uploads img as an RGBA8 texture. Images larger than
// maxSize on either side are scaled down to fit, keeping the aspect ratio;
// maxSize <= 0 disables scaling.
func (d *Device) TextureFromImage(img image.Image, maxSize int) (uint32, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize > 0 && (w > maxSize || h > maxSize) {
		if w >= h {
			w, h = maxSize, max(1, h*maxSize/w)
		} else {
			w, h = max(1, w*maxSize/h), maxSize
		}
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(rgba, rgba.Bounds(), img, b, xdraw.Src, nil)
	}
	return d.CreateTexture(w, h, rgba.Pix)
}

// DeleteTexture deletes tex. Zero is skipped.
func (d *Device) DeleteTexture(tex uint32) {
	if tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}

// BindTexture binds tex to a texture unit.
func (d *Device) BindTexture(unit, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}
