// Package host is the SDL2-backed reference frontend for chip8vm: it
// owns the window, the render texture, the audio device and keyboard
// input, translating between the pure chip8 core and the outside world.
package host

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/gravelwind/chip8vm/chip8"
)

const (
	screenW = 128
	screenH = 64
	scale   = 8
)

// Window owns the SDL window, renderer and audio device used to drive
// a chip8.VM.
type Window struct {
	log      *zap.Logger
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	audioDev sdl.AudioDeviceID
	keys     [16]bool
}

// NewWindow creates the SDL window, renderer, render target and audio
// device used by the reference host.
func NewWindow(log *zap.Logger) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}

	window, err := sdl.CreateWindow(
		"chip8vm",
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		screenW*scale,
		screenH*scale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGB565, sdl.TEXTUREACCESS_STREAMING, screenW, screenH)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create texture: %w", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     chip8.AudioSampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(chip8.SamplesPerFrame(chip8.AudioSampleRate)),
	}

	var obtained sdl.AudioSpec
	dev, err := sdl.OpenAudioDevice("", false, spec, &obtained, 0)
	if err != nil {
		log.Warn("no audio device available, running silent", zap.Error(err))
	} else {
		sdl.PauseAudioDevice(dev, false)
	}

	return &Window{
		log:      log,
		window:   window,
		renderer: renderer,
		texture:  texture,
		audioDev: dev,
	}, nil
}

// PollInput drains the SDL event queue, updating the latched key state
// and reporting whether the user asked to quit.
func (w *Window) PollInput() (keys [16]bool, quit bool) {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE && ev.State == sdl.PRESSED {
				quit = true
				continue
			}
			if key, ok := KeyMap[ev.Keysym.Scancode]; ok {
				w.keys[key] = ev.State == sdl.PRESSED
			}
		}
	}

	return w.keys, quit
}

// Present uploads the current framebuffer to the screen, stretched to
// the window's size. The core already doubles low-res sprites across
// the full 128x64 grid (see chip8/draw.go), so the whole texture is
// presented regardless of resolution mode; there is no separate
// undoubled 64x32 buffer to crop to.
func (w *Window) Present(fb *chip8.Framebuffer) {
	pixels := chip8.EncodeRGB565(fb)
	if err := w.texture.Update(nil, pixels, chip8.Stride(screenW)); err != nil {
		w.log.Error("texture update failed", zap.Error(err))
		return
	}

	w.renderer.SetDrawColor(17, 29, 43, 255)
	w.renderer.Clear()
	w.renderer.Copy(w.texture, nil, &sdl.Rect{X: 0, Y: 0, W: screenW * scale, H: screenH * scale})
	w.renderer.Present()
}

// QueueAudio pushes one frame of square-wave (or silent) audio to the
// device so the next frame interval has samples ready.
func (w *Window) QueueAudio(on bool) {
	if w.audioDev == 0 {
		return
	}

	frame := chip8.DefaultAudioFrame(on)
	buf := make([]byte, len(frame)*2)
	for i, s := range frame {
		buf[2*i] = byte(s)
		buf[2*i+1] = byte(s >> 8)
	}

	if err := sdl.QueueAudio(w.audioDev, buf); err != nil {
		w.log.Warn("queue audio failed", zap.Error(err))
	}
}

// Close releases the window, renderer, texture and audio device.
func (w *Window) Close() {
	if w.audioDev != 0 {
		sdl.CloseAudioDevice(w.audioDev)
	}
	w.texture.Destroy()
	w.renderer.Destroy()
	w.window.Destroy()
	sdl.Quit()
}
