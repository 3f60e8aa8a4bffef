package opengl

import (
	"image"
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadPixel returns the color of one pixel of the current read framebuffer.
// Coordinates have their origin at the bottom-left, as in OpenGL.
func ReadPixel(x, y int) color.NRGBA {
	var px [4]uint8
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(x), int32(y), 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&px[0]))
	return color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
}

// ReadPixels captures the bottom-left width x height region of the current
// read framebuffer as an image with a top-left origin.
func ReadPixels(width, height int) *image.RGBA {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows run bottom to top.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*stride:][:stride]
		copy(img.Pix[y*img.Stride:], src)
	}
	return img
}
