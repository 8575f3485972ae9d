/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

// Package chip8 implements the core of a CHIP-8 / SUPER-CHIP (SCHIP-1.1)
// virtual machine: memory and registers, the instruction decoder and
// executor, the sprite rasterizer, and a frame-paced run loop. The
// package is a pure state machine with no I/O of its own; a host drives
// it one frame at a time via Tick.
package chip8

import (
	"errors"
	"math/rand"
)

const (
	memorySize   = 0x1000
	programStart = 0x200
	stackDepth   = 16
)

// ErrProgramTooLarge is returned by LoadProgram when the ROM would not
// fit in the memory remaining after the reserved interpreter region.
var ErrProgramTooLarge = errors.New("chip8: program too large to fit in memory")

// Quirks toggles behavioral differences between classic CHIP-8 and
// SUPER-CHIP. Both are runtime booleans, fixed at construction, so a
// single binary can run either dialect.
type Quirks struct {
	// Memory, when true, leaves I unchanged after FX55/FX65 (SUPER-CHIP).
	// When false, I is advanced past the last register touched (CHIP-8).
	Memory bool

	// Shift, when true, shifts VX in place for 8XY6/8XYE (SUPER-CHIP).
	// When false, the shift source is VY (classic CHIP-8).
	Shift bool
}

// TickResult is returned from Tick and summarizes what the host should
// present after the frame's instructions have executed.
type TickResult struct {
	// Exited is true once the program has executed a EXIT (00FD).
	Exited bool

	// AudioOn is true iff the sound timer is non-zero at frame end.
	AudioOn bool
}

// FlagsStore persists the 8-byte SUPER-CHIP RPL user-flags scratch
// area across runs. Implementations must tolerate absence of prior
// data and I/O failure by reporting it rather than panicking; neither
// condition may perturb VM state.
type FlagsStore interface {
	// Load returns the previously saved flags and true, or a zero
	// value and false if there is nothing to load (or loading fails).
	Load() (data [8]byte, ok bool)

	// Save persists the flags, returning a non-nil error on failure.
	Save(data [8]byte) error
}

// memoryFlagsStore is the default, in-process FlagsStore used when a
// host supplies none; it backs SAVEF/LOADF with a plain in-memory slot
// for tests and headless use.
type memoryFlagsStore struct {
	data [8]byte
	ok   bool
}

// NewMemoryFlagsStore returns a FlagsStore backed by process memory.
func NewMemoryFlagsStore() FlagsStore {
	return &memoryFlagsStore{}
}

func (s *memoryFlagsStore) Load() ([8]byte, bool) {
	return s.data, s.ok
}

func (s *memoryFlagsStore) Save(data [8]byte) error {
	s.data = data
	s.ok = true
	return nil
}

// Option configures a VM at construction time.
type Option func(*VM)

// WithInstructionsPerFrame overrides the default number of
// instructions (K) executed per Tick. The default is 10.
func WithInstructionsPerFrame(k int) Option {
	return func(vm *VM) { vm.instructionsPerFrame = k }
}

// WithFlagsStore overrides the VM's persistent RPL flags backing.
func WithFlagsStore(store FlagsStore) Option {
	return func(vm *VM) { vm.flags = store }
}

// WithRand overrides the source used by the RAND instruction. Intended
// for deterministic tests; hosts normally leave this at its default.
func WithRand(r *rand.Rand) Option {
	return func(vm *VM) { vm.rand = r }
}

// VM is a CHIP-8 / SUPER-CHIP virtual machine. It is not safe for
// concurrent use: the owning host must not mutate or read VM state
// while a call to Tick is in progress.
type VM struct {
	memory [memorySize]byte
	rom    []byte

	v  [16]byte
	i  uint16
	pc uint16

	stack [stackDepth]uint16
	sp    int

	delayTimer byte
	soundTimer byte

	keys     [16]bool
	prevKeys [16]bool
	waitReg  *int
	exited   bool

	fb      Framebuffer
	highRes bool

	quirks Quirks
	flags  FlagsStore
	rand   *rand.Rand

	instructionsPerFrame int
}

// NewVM constructs a VM with the given quirks and zero-initialized
// memory, registers and framebuffer except for the two preloaded font
// ROMs. No program is loaded; call LoadProgram before Tick.
func NewVM(quirks Quirks, opts ...Option) *VM {
	vm := &VM{
		quirks:               quirks,
		flags:                NewMemoryFlagsStore(),
		rand:                 rand.New(rand.NewSource(1)),
		instructionsPerFrame: 10,
	}

	for _, opt := range opts {
		opt(vm)
	}

	loadFonts(&vm.memory)
	vm.pc = programStart

	return vm
}

// LoadProgram copies rom verbatim into memory at 0x200 and resets all
// other VM state. It returns ErrProgramTooLarge, leaving the VM's
// previous state untouched, if rom would not fit.
func (vm *VM) LoadProgram(rom []byte) error {
	if len(rom) > memorySize-programStart {
		return ErrProgramTooLarge
	}

	vm.rom = make([]byte, len(rom))
	copy(vm.rom, rom)

	vm.Reset()

	return nil
}

// Reset re-establishes the VM's initial conditions: memory is
// reloaded with the font ROMs and the program (if any), the
// framebuffer is cleared, registers/timers/stack are zeroed, and PC is
// set to 0x200.
func (vm *VM) Reset() {
	vm.memory = [memorySize]byte{}
	loadFonts(&vm.memory)
	copy(vm.memory[programStart:], vm.rom)

	vm.v = [16]byte{}
	vm.i = 0
	vm.pc = programStart
	vm.stack = [stackDepth]uint16{}
	vm.sp = 0

	vm.delayTimer = 0
	vm.soundTimer = 0

	vm.keys = [16]bool{}
	vm.prevKeys = [16]bool{}
	vm.waitReg = nil
	vm.exited = false

	vm.fb = Framebuffer{}
	vm.highRes = false
}

// Framebuffer returns the VM's 128x64 pixel grid for presentation.
func (vm *VM) Framebuffer() *Framebuffer {
	return &vm.fb
}

// HighRes reports whether the VM is currently in SUPER-CHIP
// high-resolution drawing mode.
func (vm *VM) HighRes() bool {
	return vm.highRes
}

// Tick advances the VM by exactly one 60 Hz frame:
//
//  1. sample the 16 keys, keeping the prior frame's sample for edge
//     detection;
//  2. decrement the delay and sound timers;
//  3. execute up to K instructions, stopping early if the keypress
//     latch becomes set;
//  4. if the latch is set and a key is newly pressed this frame (down
//     now, up on the previous frame), resolve it;
//  5. report the framebuffer and audio gate to the host.
func (vm *VM) Tick(keys [16]bool) TickResult {
	vm.prevKeys = vm.keys
	vm.keys = keys

	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
	}

	for n := 0; n < vm.instructionsPerFrame; n++ {
		if vm.waitReg != nil || vm.exited {
			break
		}

		vm.step()
	}

	if vm.waitReg != nil {
		for i, pressed := range keys {
			if pressed && !vm.prevKeys[i] {
				vm.v[*vm.waitReg] = byte(i)
				vm.waitReg = nil
				break
			}
		}
	}

	return TickResult{
		Exited:  vm.exited,
		AudioOn: vm.soundTimer > 0,
	}
}

// step fetches, decodes and executes a single instruction.
func (vm *VM) step() {
	opcode := uint16(vm.memory[vm.pc&(memorySize-1)])<<8 | uint16(vm.memory[(vm.pc+1)&(memorySize-1)])
	vm.pc += 2

	vm.execute(Decode(opcode))
}
