package chip8

// execute applies a single decoded instruction to the VM. Opcodes
// that write both a destination register and VF always compute both
// values before writing either, then write the destination first and
// VF last — so when the destination aliases VF (X == 0xF), the flag
// wins, per the VF-last-write contract.
func (vm *VM) execute(inst Instruction) {
	switch inst.Op {
	case OpNop:
		// unrecognized encodings are silently treated as NOP

	case OpCLS:
		vm.fb.Clear()

	case OpRET:
		if vm.sp > 0 {
			vm.sp--
			vm.pc = vm.stack[vm.sp]
		}

	case OpScrollDown:
		vm.fb.scrollDown(int(inst.N), vm.highRes)
	case OpScrollRight:
		vm.fb.scrollRight(vm.highRes)
	case OpScrollLeft:
		vm.fb.scrollLeft(vm.highRes)

	case OpExit:
		vm.exited = true

	case OpLoRes:
		vm.highRes = false
	case OpHiRes:
		vm.highRes = true

	case OpJump:
		vm.pc = inst.NNN
	case OpCall:
		if vm.sp < stackDepth {
			vm.stack[vm.sp] = vm.pc
			vm.sp++
		}
		vm.pc = inst.NNN
	case OpJumpV0:
		vm.pc = (inst.NNN + uint16(vm.v[0])) % memorySize

	case OpSkipEqImm:
		if vm.v[inst.X] == inst.NN {
			vm.pc += 2
		}
	case OpSkipNeImm:
		if vm.v[inst.X] != inst.NN {
			vm.pc += 2
		}
	case OpSkipEqReg:
		if vm.v[inst.X] == vm.v[inst.Y] {
			vm.pc += 2
		}
	case OpSkipNeReg:
		if vm.v[inst.X] != vm.v[inst.Y] {
			vm.pc += 2
		}
	case OpSkipKey:
		if vm.keys[vm.v[inst.X]&0x0F] {
			vm.pc += 2
		}
	case OpSkipNotKey:
		if !vm.keys[vm.v[inst.X]&0x0F] {
			vm.pc += 2
		}

	case OpLoadImm:
		vm.v[inst.X] = inst.NN
	case OpAddImm:
		vm.v[inst.X] += inst.NN

	case OpMoveReg:
		vm.v[inst.X] = vm.v[inst.Y]
	case OpOr:
		vm.v[inst.X] |= vm.v[inst.Y]
	case OpAnd:
		vm.v[inst.X] &= vm.v[inst.Y]
	case OpXor:
		vm.v[inst.X] ^= vm.v[inst.Y]

	case OpAddReg:
		sum := uint16(vm.v[inst.X]) + uint16(vm.v[inst.Y])
		result := byte(sum)
		carry := byte(0)
		if sum > 0xFF {
			carry = 1
		}
		vm.v[inst.X] = result
		vm.v[0xF] = carry

	case OpSubReg:
		noBorrow := byte(0)
		if vm.v[inst.X] >= vm.v[inst.Y] {
			noBorrow = 1
		}
		result := vm.v[inst.X] - vm.v[inst.Y]
		vm.v[inst.X] = result
		vm.v[0xF] = noBorrow

	case OpSubRevReg:
		noBorrow := byte(0)
		if vm.v[inst.Y] >= vm.v[inst.X] {
			noBorrow = 1
		}
		result := vm.v[inst.Y] - vm.v[inst.X]
		vm.v[inst.X] = result
		vm.v[0xF] = noBorrow

	case OpShiftRight:
		src := vm.v[inst.Y]
		if vm.quirks.Shift {
			src = vm.v[inst.X]
		}
		bit := src & 1
		vm.v[inst.X] = src >> 1
		vm.v[0xF] = bit

	case OpShiftLeft:
		src := vm.v[inst.Y]
		if vm.quirks.Shift {
			src = vm.v[inst.X]
		}
		bit := src >> 7 & 1
		vm.v[inst.X] = src << 1
		vm.v[0xF] = bit

	case OpLoadI:
		vm.i = inst.NNN
	case OpAddI:
		vm.i = (vm.i + uint16(vm.v[inst.X])) & 0xFFFF

	case OpRand:
		vm.v[inst.X] = byte(vm.rand.Intn(256)) & inst.NN

	case OpDraw:
		vm.executeDraw(inst.X, inst.Y, inst.N)

	case OpLoadDelay:
		vm.v[inst.X] = vm.delayTimer
	case OpSetDelay:
		vm.delayTimer = vm.v[inst.X]
	case OpSetSound:
		vm.soundTimer = vm.v[inst.X]

	case OpWaitKey:
		x := int(inst.X)
		vm.waitReg = &x

	case OpLoadDigit:
		vm.i = uint16(vm.v[inst.X]&0x0F) * 5
	case OpLoadLargeDigit:
		vm.i = largeFontBase + uint16(vm.v[inst.X]&0x0F)*10

	case OpBCD:
		n := vm.v[inst.X]
		vm.memAddr(vm.i)[0] = n / 100
		vm.memAddr(vm.i + 1)[0] = n / 10 % 10
		vm.memAddr(vm.i + 2)[0] = n % 10

	case OpSaveRegs:
		for r := uint16(0); r <= uint16(inst.X); r++ {
			vm.memAddr(vm.i + r)[0] = vm.v[r]
		}
		if !vm.quirks.Memory {
			vm.i += uint16(inst.X) + 1
		}

	case OpLoadRegs:
		for r := uint16(0); r <= uint16(inst.X); r++ {
			vm.v[r] = vm.memAddr(vm.i + r)[0]
		}
		if !vm.quirks.Memory {
			vm.i += uint16(inst.X) + 1
		}

	case OpSaveFlags:
		if inst.X <= 7 {
			var data [8]byte
			copy(data[:], vm.v[:inst.X+1])
			vm.flags.Save(data)
		}

	case OpLoadFlags:
		if inst.X <= 7 {
			if data, ok := vm.flags.Load(); ok {
				copy(vm.v[:inst.X+1], data[:inst.X+1])
			}
		}
	}
}

// memAddr returns a one-byte slice into memory at addr, wrapped modulo
// the 4 KiB address space so reads/writes can never overrun the array.
func (vm *VM) memAddr(addr uint16) []byte {
	return vm.memory[addr&(memorySize-1) : addr&(memorySize-1)+1]
}
