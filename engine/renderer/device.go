package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/scenecraft/glstage/common"
	"github.com/scenecraft/glstage/engine/texture"
)

// device is the implementation of the texture.Device interface over OpenGL.
type device struct{}

var _ texture.Device = device{}

// NewDevice creates the OpenGL texture device. Requires a current GL context
// on the calling thread for all operations.
//
// Returns:
//   - texture.Device: the GL-backed device
func NewDevice() texture.Device {
	return device{}
}

// CreateTexture uploads RGBA pixel data as a 2-D texture with repeat wrapping
// on both axes, linear min/mag filtering, and a generated mipmap chain. The
// texture is unbound before returning; BindTexture assigns it to a unit.
func (device) CreateTexture(img *common.ImageData) (uint32, error) {
	if img == nil || len(img.Pix) == 0 {
		return 0, fmt.Errorf("renderer: empty image data")
	}

	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Source pixels are expanded to RGBA at decode time; the internal format
	// still distinguishes opaque from transparent images.
	internalFormat := int32(gl.RGBA8)
	if img.Channels == 3 {
		internalFormat = gl.RGB8
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat,
		int32(img.Width), int32(img.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return handle, nil
}

func (device) BindTexture(unit int, handle uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, handle)
}

func (device) DeleteTexture(handle uint32) {
	gl.DeleteTextures(1, &handle)
}
