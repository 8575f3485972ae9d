package chip8

import "testing"

func TestSaveFlagsLoadFlagsRoundTrip(t *testing.T) {
	store := NewMemoryFlagsStore()
	vm := NewVM(Quirks{}, WithFlagsStore(store))

	if err := vm.LoadProgram(assembleRom(0xF375, 0x6000, 0x6100, 0x6200, 0x6300, 0xF385)); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}

	vm.v[0], vm.v[1], vm.v[2], vm.v[3] = 10, 20, 30, 40
	vm.step() // SAVEF V0..V3

	vm.v[0], vm.v[1], vm.v[2], vm.v[3] = 0, 0, 0, 0
	for i := 0; i < 4; i++ {
		vm.step() // clear the registers via LD Vx, 0
	}
	vm.step() // LOADF V0..V3

	if vm.v[0] != 10 || vm.v[1] != 20 || vm.v[2] != 30 || vm.v[3] != 40 {
		t.Fatalf("LOADF restored %v, want [10 20 30 40]", vm.v[:4])
	}
}

type failingFlagsStore struct{}

func (failingFlagsStore) Load() ([8]byte, bool) { return [8]byte{}, false }
func (failingFlagsStore) Save([8]byte) error    { return errFlagsIOFailure }

var errFlagsIOFailure = &flagsIOError{"simulated backing-store failure"}

type flagsIOError struct{ msg string }

func (e *flagsIOError) Error() string { return e.msg }

func TestFlagsIOFailureDoesNotPerturbVMState(t *testing.T) {
	vm := NewVM(Quirks{}, WithFlagsStore(failingFlagsStore{}))
	if err := vm.LoadProgram(assembleRom(0xF075, 0xF085)); err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}

	vm.v[0] = 7
	vm.step() // SAVEF: backing store fails, VM must not panic or change v[0]
	if vm.v[0] != 7 {
		t.Fatalf("V[0] = %d, want 7 (unaffected by backing-store failure)", vm.v[0])
	}

	vm.v[0] = 9
	vm.step() // LOADF: nothing to load, register must be untouched
	if vm.v[0] != 9 {
		t.Fatalf("V[0] = %d, want 9 (unaffected by failed load)", vm.v[0])
	}
}
