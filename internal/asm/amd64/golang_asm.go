package amd64

import (
	"encoding/binary"
	"fmt"

	"github.com/twitchyliquid64/golang-asm/obj"
	"github.com/twitchyliquid64/golang-asm/obj/x86"

	"github.com/armjit/armjit/internal/asm"
	"github.com/armjit/armjit/internal/asm/golang_asm"
)

// assemblerGoAsmImpl implements Assembler for golang-asm library.
type assemblerGoAsmImpl struct {
	*golang_asm.BaseAssembler
}

// NewAssembler returns an Assembler backed by golang-asm.
func NewAssembler() (Assembler, error) {
	g, err := golang_asm.NewBaseAssembler("amd64")
	if err != nil {
		return nil, err
	}
	return &assemblerGoAsmImpl{g}, nil
}

// CompileStandAlone implements the same method as documented on asm.AssemblerBase.
func (a *assemblerGoAsmImpl) CompileStandAlone(inst asm.Instruction) asm.Node {
	p := a.NewProg()
	p.As = castAsGolangAsmInstruction[inst]
	a.AddInstruction(p)
	return golang_asm.NewNode(p)
}

// CompileRegisterToRegister implements the same method as documented on asm.AssemblerBase.
func (a *assemblerGoAsmImpl) CompileRegisterToRegister(inst asm.Instruction, from, to asm.Register) {
	p := a.NewProg()
	p.As = castAsGolangAsmInstruction[inst]
	p.To.Type = obj.TYPE_REG
	p.To.Reg = castAsGolangAsmRegister[to]
	p.From.Type = obj.TYPE_REG
	p.From.Reg = castAsGolangAsmRegister[from]
	a.AddInstruction(p)
}

// CompileRegisterToMemory implements the same method as documented on asm.AssemblerBase.
func (a *assemblerGoAsmImpl) CompileRegisterToMemory(
	inst asm.Instruction,
	sourceRegister, destinationBaseRegister asm.Register,
	destinationOffsetConst asm.ConstantValue,
) {
	p := a.NewProg()
	p.As = castAsGolangAsmInstruction[inst]
	p.To.Type = obj.TYPE_MEM
	p.To.Reg = castAsGolangAsmRegister[destinationBaseRegister]
	p.To.Offset = destinationOffsetConst
	p.From.Type = obj.TYPE_REG
	p.From.Reg = castAsGolangAsmRegister[sourceRegister]
	a.AddInstruction(p)
}

// CompileConstToRegister implements the same method as documented on asm.AssemblerBase.
func (a *assemblerGoAsmImpl) CompileConstToRegister(
	inst asm.Instruction,
	constValue asm.ConstantValue,
	destinationRegister asm.Register,
) asm.Node {
	p := a.NewProg()
	p.As = castAsGolangAsmInstruction[inst]
	p.From.Type = obj.TYPE_CONST
	p.From.Offset = constValue
	p.To.Type = obj.TYPE_REG
	p.To.Reg = castAsGolangAsmRegister[destinationRegister]
	a.AddInstruction(p)
	return golang_asm.NewNode(p)
}

// CompileRegisterToConst implements the same method as documented on Assembler.
func (a *assemblerGoAsmImpl) CompileRegisterToConst(
	inst asm.Instruction,
	srcRegister asm.Register,
	constValue asm.ConstantValue,
) asm.Node {
	p := a.NewProg()
	p.As = castAsGolangAsmInstruction[inst]
	p.To.Type = obj.TYPE_CONST
	p.To.Offset = constValue
	p.From.Type = obj.TYPE_REG
	p.From.Reg = castAsGolangAsmRegister[srcRegister]
	a.AddInstruction(p)
	return golang_asm.NewNode(p)
}

// CompileNoneToRegister implements the same method as documented on Assembler.
func (a *assemblerGoAsmImpl) CompileNoneToRegister(inst asm.Instruction, register asm.Register) {
	p := a.NewProg()
	p.As = castAsGolangAsmInstruction[inst]
	p.To.Type = obj.TYPE_REG
	p.To.Reg = castAsGolangAsmRegister[register]
	p.From.Type = obj.TYPE_NONE
	a.AddInstruction(p)
}

// CompileNoneToMemory implements the same method as documented on Assembler.
func (a *assemblerGoAsmImpl) CompileNoneToMemory(
	inst asm.Instruction,
	baseReg asm.Register,
	offset asm.ConstantValue,
) {
	p := a.NewProg()
	p.As = castAsGolangAsmInstruction[inst]
	p.To.Type = obj.TYPE_MEM
	p.To.Reg = castAsGolangAsmRegister[baseReg]
	p.To.Offset = offset
	p.From.Type = obj.TYPE_NONE
	a.AddInstruction(p)
}

// CompileConstToMemory implements the same method as documented on Assembler.
func (a *assemblerGoAsmImpl) CompileConstToMemory(
	inst asm.Instruction,
	constValue asm.ConstantValue,
	baseReg asm.Register,
	offset asm.ConstantValue,
) asm.Node {
	p := a.NewProg()
	p.As = castAsGolangAsmInstruction[inst]
	p.From.Type = obj.TYPE_CONST
	p.From.Offset = constValue
	p.To.Type = obj.TYPE_MEM
	p.To.Reg = castAsGolangAsmRegister[baseReg]
	p.To.Offset = offset
	a.AddInstruction(p)
	return golang_asm.NewNode(p)
}

// CompileMemoryToRegister implements the same method as documented on asm.AssemblerBase.
func (a *assemblerGoAsmImpl) CompileMemoryToRegister(
	inst asm.Instruction,
	sourceBaseReg asm.Register,
	sourceOffsetConst asm.ConstantValue,
	destinationReg asm.Register,
) {
	p := a.NewProg()
	p.As = castAsGolangAsmInstruction[inst]
	p.From.Type = obj.TYPE_MEM
	p.From.Reg = castAsGolangAsmRegister[sourceBaseReg]
	p.From.Offset = sourceOffsetConst
	p.To.Type = obj.TYPE_REG
	p.To.Reg = castAsGolangAsmRegister[destinationReg]
	a.AddInstruction(p)
}

// CompileMemoryToConst implements the same method as documented on Assembler.
func (a *assemblerGoAsmImpl) CompileMemoryToConst(
	inst asm.Instruction,
	baseReg asm.Register,
	offset, constValue asm.ConstantValue,
) asm.Node {
	p := a.NewProg()
	p.As = castAsGolangAsmInstruction[inst]
	p.To.Type = obj.TYPE_CONST
	p.To.Offset = constValue
	p.From.Type = obj.TYPE_MEM
	p.From.Reg = castAsGolangAsmRegister[baseReg]
	p.From.Offset = offset
	a.AddInstruction(p)
	return golang_asm.NewNode(p)
}

// CompileJump implements the same method as documented on asm.AssemblerBase.
func (a *assemblerGoAsmImpl) CompileJump(jmpInstruction asm.Instruction) asm.Node {
	p := a.NewProg()
	p.As = castAsGolangAsmInstruction[jmpInstruction]
	p.To.Type = obj.TYPE_BRANCH
	a.AddInstruction(p)
	return golang_asm.NewNode(p)
}

// CompileJumpToRegister implements the same method as documented on asm.AssemblerBase.
func (a *assemblerGoAsmImpl) CompileJumpToRegister(jmpInstruction asm.Instruction, reg asm.Register) {
	p := a.NewProg()
	p.As = castAsGolangAsmInstruction[jmpInstruction]
	p.To.Type = obj.TYPE_REG
	p.To.Reg = castAsGolangAsmRegister[reg]
	a.AddInstruction(p)
}

// CompileRawBytes implements the same method as documented on Assembler.
func (a *assemblerGoAsmImpl) CompileRawBytes(b ...byte) (first asm.Node) {
	for i, v := range b {
		p := a.NewProg()
		p.As = x86.ABYTE
		p.From.Type = obj.TYPE_CONST
		p.From.Offset = int64(v)
		a.AddInstruction(p)
		if i == 0 {
			first = golang_asm.NewNode(p)
		}
	}
	return
}

// CompileReadInstructionAddress implements the same method as documented on asm.AssemblerBase.
func (a *assemblerGoAsmImpl) CompileReadInstructionAddress(
	destinationRegister asm.Register,
	beforeAcquisitionTargetInstruction asm.Instruction,
) {
	// Emit the instruction in the form of "LEA destination [RIP + offset]".
	readInstructionAddress := a.NewProg()
	readInstructionAddress.As = x86.ALEAQ
	readInstructionAddress.To.Reg = castAsGolangAsmRegister[destinationRegister]
	readInstructionAddress.To.Type = obj.TYPE_REG
	readInstructionAddress.From.Type = obj.TYPE_MEM
	// We use place holder here as we don't yet know at this point the offset of the first instruction
	// after return instruction.
	readInstructionAddress.From.Offset = 0xffff
	// Since the assembler cannot directly emit "LEA destination [RIP + offset]", we use the some hack here:
	// We intentionally use x86.REG_BP here so that the resulting instruction sequence becomes
	// exactly the same as "LEA destination [RIP + offset]" except the most significant bit of the third byte.
	// The rewrite is done by an on-generate callback invoked after the assembler emitted the code.
	readInstructionAddress.From.Reg = x86.REG_BP
	a.AddInstruction(readInstructionAddress)

	a.AddOnGenerateCallBack(func(code []byte) error {
		// Advance readInstructionAddress to the next one (.Link) in order to get the instruction
		// right after LEA because RIP points to that next instruction in LEA instruction.
		base := readInstructionAddress.Link

		// Find the address acquisition target instruction.
		target := base
		beforeTargetInst := castAsGolangAsmInstruction[beforeAcquisitionTargetInstruction]
		for target != nil {
			if target.As == beforeTargetInst {
				// At this point, target is the instruction right before the target instruction.
				// Thus, advance one more time to make target the target instruction.
				target = target.Link
				break
			}
			target = target.Link
		}

		if target == nil {
			return fmt.Errorf("target instruction not found for read instruction address")
		}

		// Now we can calculate the "offset" in the LEA instruction.
		offset := uint32(target.Pc) - uint32(base.Pc)

		// Replace the placeholder bytes by the actual offset.
		binary.LittleEndian.PutUint32(code[readInstructionAddress.Pc+3:], offset)

		// See the comment at readInstructionAddress.From.Reg above. Here we drop the most significant bit of the third byte of the LEA instruction.
		code[readInstructionAddress.Pc+2] &= 0b01111111
		return nil
	})
}

// castAsGolangAsmRegister maps the registers to golang-asm specific register values.
var castAsGolangAsmRegister = [...]int16{
	RegAX:  x86.REG_AX,
	RegCX:  x86.REG_CX,
	RegDX:  x86.REG_DX,
	RegBX:  x86.REG_BX,
	RegSP:  x86.REG_SP,
	RegBP:  x86.REG_BP,
	RegSI:  x86.REG_SI,
	RegDI:  x86.REG_DI,
	RegR8:  x86.REG_R8,
	RegR9:  x86.REG_R9,
	RegR10: x86.REG_R10,
	RegR11: x86.REG_R11,
	RegR12: x86.REG_R12,
	RegR13: x86.REG_R13,
	RegR14: x86.REG_R14,
	RegR15: x86.REG_R15,
}

// castAsGolangAsmInstruction maps the instructions to golang-asm specific instruction values.
var castAsGolangAsmInstruction = [...]obj.As{
	NOP:     obj.ANOP,
	RET:     obj.ARET,
	JMP:     obj.AJMP,
	ADCL:    x86.AADCL,
	ADDL:    x86.AADDL,
	ADDQ:    x86.AADDQ,
	ANDL:    x86.AANDL,
	BSWAPL:  x86.ABSWAPL,
	BYTE:    x86.ABYTE,
	CMPL:    x86.ACMPL,
	CMPQ:    x86.ACMPQ,
	JCC:     x86.AJCC,
	JCS:     x86.AJCS,
	JEQ:     x86.AJEQ,
	JGE:     x86.AJGE,
	JGT:     x86.AJGT,
	JHI:     x86.AJHI,
	JLE:     x86.AJLE,
	JLS:     x86.AJLS,
	JLT:     x86.AJLT,
	JMI:     x86.AJMI,
	JNE:     x86.AJNE,
	JOC:     x86.AJOC,
	JOS:     x86.AJOS,
	JPL:     x86.AJPL,
	LEAQ:    x86.ALEAQ,
	MOVB:    x86.AMOVB,
	MOVBLZX: x86.AMOVBLZX,
	MOVL:    x86.AMOVL,
	MOVQ:    x86.AMOVQ,
	NOTL:    x86.ANOTL,
	ORL:     x86.AORL,
	SBBL:    x86.ASBBL,
	SETCC:   x86.ASETCC,
	SETCS:   x86.ASETCS,
	SETEQ:   x86.ASETEQ,
	SETGE:   x86.ASETGE,
	SETGT:   x86.ASETGT,
	SETHI:   x86.ASETHI,
	SETLE:   x86.ASETLE,
	SETLS:   x86.ASETLS,
	SETLT:   x86.ASETLT,
	SETMI:   x86.ASETMI,
	SETNE:   x86.ASETNE,
	SETOC:   x86.ASETOC,
	SETOS:   x86.ASETOS,
	SETPL:   x86.ASETPL,
	SHRL:    x86.ASHRL,
	SUBL:    x86.ASUBL,
	SUBQ:    x86.ASUBQ,
	TESTL:   x86.ATESTL,
	XORL:    x86.AXORL,
}
