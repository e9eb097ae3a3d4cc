package amd64

import "github.com/armjit/armjit/internal/asm"

// AMD64-specific instructions.
// https://www.felixcloutier.com/x86/index.html
//
// Note: here we do not define all of amd64 instructions, and we only define the ones used by the block compiler.
// Note: naming convention is exactly the same as Go assembler: https://go.dev/doc/asm
const (
	NONE asm.Instruction = iota
	ADCL
	ADDL
	ADDQ
	ANDL
	BSWAPL
	// BYTE is not an instruction: it emits its constant operand as a single raw byte.
	BYTE
	CMPL
	CMPQ
	JCC
	JCS
	JEQ
	JGE
	JGT
	JHI
	JLE
	JLS
	JLT
	JMI
	JMP
	JNE
	JOC
	JOS
	JPL
	LEAQ
	MOVB
	MOVBLZX
	MOVL
	MOVQ
	NOP
	NOTL
	ORL
	RET
	SBBL
	SETCC
	SETCS
	SETEQ
	SETGE
	SETGT
	SETHI
	SETLE
	SETLS
	SETLT
	SETMI
	SETNE
	SETOC
	SETOS
	SETPL
	SHRL
	SUBL
	SUBQ
	TESTL
	XORL
	instructionEnd
)

var instructionNames = [instructionEnd]string{
	NONE: "NONE", ADCL: "ADCL", ADDL: "ADDL", ADDQ: "ADDQ", ANDL: "ANDL", BSWAPL: "BSWAPL", BYTE: "BYTE",
	CMPL: "CMPL", CMPQ: "CMPQ", JCC: "JCC", JCS: "JCS", JEQ: "JEQ", JGE: "JGE", JGT: "JGT", JHI: "JHI",
	JLE: "JLE", JLS: "JLS", JLT: "JLT", JMI: "JMI", JMP: "JMP", JNE: "JNE", JOC: "JOC", JOS: "JOS",
	JPL: "JPL", LEAQ: "LEAQ", MOVB: "MOVB", MOVBLZX: "MOVBLZX", MOVL: "MOVL", MOVQ: "MOVQ", NOP: "NOP",
	NOTL: "NOTL", ORL: "ORL", RET: "RET", SBBL: "SBBL", SETCC: "SETCC", SETCS: "SETCS", SETEQ: "SETEQ",
	SETGE: "SETGE", SETGT: "SETGT", SETHI: "SETHI", SETLE: "SETLE", SETLS: "SETLS", SETLT: "SETLT",
	SETMI: "SETMI", SETNE: "SETNE", SETOC: "SETOC", SETOS: "SETOS", SETPL: "SETPL", SHRL: "SHRL",
	SUBL: "SUBL", SUBQ: "SUBQ", TESTL: "TESTL", XORL: "XORL",
}

// InstructionName returns the name for an instruction
func InstructionName(instruction asm.Instruction) string {
	if instruction < instructionEnd {
		return instructionNames[instruction]
	}
	return "Unknown"
}

// AMD64-specific registers.
// https://www.lri.fr/~filliatr/ens/compil/x86-64.pdf
// https://cs.brown.edu/courses/cs033/docs/guides/x64_cheatsheet.pdf
//
// Note: naming convention is exactly the same as Go assembler: https://go.dev/doc/asm
const (
	RegAX asm.Register = asm.NilRegister + 1 + iota
	RegCX
	RegDX
	RegBX
	RegSP
	RegBP
	RegSI
	RegDI
	RegR8
	RegR9
	RegR10
	RegR11
	RegR12
	RegR13
	RegR14
	RegR15
)

var registerNames = [...]string{
	RegAX: "AX", RegCX: "CX", RegDX: "DX", RegBX: "BX", RegSP: "SP", RegBP: "BP", RegSI: "SI", RegDI: "DI",
	RegR8: "R8", RegR9: "R9", RegR10: "R10", RegR11: "R11", RegR12: "R12", RegR13: "R13", RegR14: "R14",
	RegR15: "R15",
}

// RegisterName returns the name for a register
func RegisterName(reg asm.Register) string {
	if reg != asm.NilRegister && int(reg) < len(registerNames) {
		return registerNames[reg]
	}
	return "nil"
}
