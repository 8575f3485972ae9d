package host

import "github.com/veandco/go-sdl2/sdl"

// KeyMap maps the modern keyboard to the CHIP-8 16-key hex keypad, laid
// out the same way on the keyboard as the keypad itself:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <=   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var KeyMap = map[sdl.Scancode]uint8{
	sdl.SCANCODE_X: 0x0,
	sdl.SCANCODE_1: 0x1,
	sdl.SCANCODE_2: 0x2,
	sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_Q: 0x4,
	sdl.SCANCODE_W: 0x5,
	sdl.SCANCODE_E: 0x6,
	sdl.SCANCODE_A: 0x7,
	sdl.SCANCODE_S: 0x8,
	sdl.SCANCODE_D: 0x9,
	sdl.SCANCODE_Z: 0xA,
	sdl.SCANCODE_C: 0xB,
	sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_V: 0xF,
}
