package chip8

import "testing"

// Scenario 4 from spec §8: draw the '0' digit sprite twice at the
// origin in high-res mode; the second draw clears it and reports a
// collision.
func TestDrawIdempotentHighRes(t *testing.T) {
	vm := newTestVM(t, Quirks{}, 0xD005, 0xD005)
	vm.highRes = true
	vm.i = smallFontBase // '0' sprite: F0 90 90 90 F0
	vm.v[0] = 0
	vm.v[1] = 0

	vm.step()
	if vm.v[0xF] != 0 {
		t.Fatalf("first draw VF = %d, want 0", vm.v[0xF])
	}
	if !vm.fb.At(0, 0) {
		t.Fatalf("expected pixel (0,0) on after first draw")
	}

	vm.step()
	if vm.v[0xF] == 0 {
		t.Fatalf("second draw VF = 0, want collision")
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 8; x++ {
			if vm.fb.At(x, y) {
				t.Fatalf("pixel (%d,%d) still on after second draw", x, y)
			}
		}
	}
}

func TestDrawLowResScalesAndCollision(t *testing.T) {
	vm := newTestVM(t, Quirks{}, 0xD015) // DRAW V0, V1, 5
	vm.highRes = false
	vm.i = smallFontBase
	vm.v[0] = 0
	vm.v[1] = 0

	vm.step()

	// top-left 2x2 block should be on (sprite's top row is 0xF0 -> bit 0 set)
	if !vm.fb.At(0, 0) || !vm.fb.At(1, 0) || !vm.fb.At(0, 1) || !vm.fb.At(1, 1) {
		t.Fatalf("expected 2x2 block at origin to be set in low-res mode")
	}
	if vm.v[0xF] != 0 {
		t.Fatalf("VF = %d, want 0 (no prior collision)", vm.v[0xF])
	}
}

func TestDrawClipsAtRightEdgeWithoutWrapping(t *testing.T) {
	vm := newTestVM(t, Quirks{}, 0xD0A1) // DRAW V0, VA, 1: 1-row sprite at (V0, VA)
	vm.highRes = true
	vm.i = 0x300
	vm.memory[0x300] = 0xFF // full row of 8 pixels

	vm.v[0] = 127 // x=127, only the leftmost bit fits on screen
	vm.v[0xA] = 0
	vm.step()

	if !vm.fb.At(127, 0) {
		t.Fatalf("expected pixel (127,0) on")
	}
	// nothing past column 127 exists to check; verify no panic and VF
	// reflects no collision (first draw).
	if vm.v[0xF] != 0 {
		t.Fatalf("VF = %d, want 0", vm.v[0xF])
	}
}

func TestDrawBottomClipCountsTowardHighResVF(t *testing.T) {
	vm := newTestVM(t, Quirks{}, 0xD00A) // DRAW V0,V0,10 -- 10-row sprite
	vm.highRes = true
	vm.i = 0x300
	for i := 0; i < 10; i++ {
		vm.memory[0x300+i] = 0xFF
	}
	vm.v[0] = 60 // rows 60..69: rows 60-63 fit, rows 64-69 (6 rows) are clipped

	vm.step()

	if vm.v[0xF] != 6 {
		t.Fatalf("VF = %d, want 6 (rows clipped by bottom edge)", vm.v[0xF])
	}
}

func TestCLSClearsRegardlessOfResolution(t *testing.T) {
	vm := newTestVM(t, Quirks{}, 0x00E0)
	vm.fb.pixels[0][0] = true
	vm.highRes = true
	vm.step()

	if vm.fb.At(0, 0) {
		t.Fatalf("expected framebuffer cleared after CLS")
	}
}

func TestScrollDownHalvedInLowRes(t *testing.T) {
	vm := newTestVM(t, Quirks{}, 0x00C4) // SCD 4
	vm.highRes = false
	vm.fb.pixels[0][0] = true
	vm.step()

	// low-res halves the shift: 4 -> 2 rows
	if !vm.fb.At(0, 2) {
		t.Fatalf("expected pixel shifted down by 2 rows in low-res mode")
	}
	if vm.fb.At(0, 0) {
		t.Fatalf("expected origin row cleared after scroll")
	}
}

func TestScrollRightHighRes(t *testing.T) {
	vm := newTestVM(t, Quirks{}, 0x00FB) // SCR
	vm.highRes = true
	vm.fb.pixels[0][0] = true
	vm.step()

	if !vm.fb.At(4, 0) {
		t.Fatalf("expected pixel shifted right by 4 columns in high-res mode")
	}
}

func TestEncodeRGB565(t *testing.T) {
	fb := &Framebuffer{}
	fb.pixels[0][0] = true

	out := EncodeRGB565(fb)

	if len(out) != fb.Width()*fb.Height()*2 {
		t.Fatalf("len(out) = %d, want %d", len(out), fb.Width()*fb.Height()*2)
	}

	on := uint16(out[0]) | uint16(out[1])<<8
	if on != rgb565On {
		t.Fatalf("pixel(0,0) = %#04x, want %#04x", on, rgb565On)
	}

	off := uint16(out[2]) | uint16(out[3])<<8
	if off != rgb565Off {
		t.Fatalf("pixel(1,0) = %#04x, want %#04x", off, rgb565Off)
	}
}
