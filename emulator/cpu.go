package emulator

// PC reset value, the CPU starts executing the BIOS from here
const BIOS_START uint32 = 0xbfc00000

// Size of an instruction in bytes. MIPS instructions are always 4 bytes
const INSTRUCTION_SIZE uint32 = 4

// CPU state
type CPU struct {
	PC   uint32     // The program counter register
	Regs [32]uint32 // General purpose registers (r0 always reads 0 on real hardware, not enforced here)
	Hi   uint32     // Multiply/divide result high register
	Lo   uint32     // Multiply/divide result low register
	Mem  *Memory    // Memory attached to the processor, owned exclusively by the CPU
}

// Creates a new CPU state with the program counter at the reset vector,
// all registers set to 0 and a zeroed memory
func NewCPU() *CPU {
	return &CPU{
		PC:  BIOS_START, // PC reset value at the beginning of the BIOS
		Mem: NewMemory(),
	}
}

// Resets all 32 general purpose registers to 0. PC, HI, LO and the
// memory contents are left untouched
func (cpu *CPU) ClearRegisters() {
	cpu.Regs = [32]uint32{}
}

// Advances the program counter by one instruction.
// Wraps around: 0xfffffffc + 4 = 0
func (cpu *CPU) IncrementPC() {
	cpu.PC += INSTRUCTION_SIZE
}
