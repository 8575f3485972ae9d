package chip8

// RGB565 pixel values used when a host maps the framebuffer to an
// RGB565 texture; stored little-endian with a stride of 2*width.
const (
	rgb565On  = 0x9DE2
	rgb565Off = 0x11C2
)

// EncodeRGB565 renders the framebuffer as a little-endian RGB565 byte
// stream (stride 2*Width()), for hosts that upload the frame directly
// to a texture of that pixel format.
func EncodeRGB565(fb *Framebuffer) []byte {
	w, h := fb.Width(), fb.Height()
	out := make([]byte, 0, w*h*2)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := uint16(rgb565Off)
			if fb.At(x, y) {
				px = uint16(rgb565On)
			}

			out = append(out, byte(px), byte(px>>8))
		}
	}

	return out
}

// Stride returns the RGB565 row pitch in bytes for a texture of the
// given width (2 bytes per pixel).
func Stride(width int) int {
	return width * 2
}
