// Package golang_asm implements the architecture independent part of asm.AssemblerBase on top of
// github.com/twitchyliquid64/golang-asm.
package golang_asm

import (
	"errors"
	"fmt"

	goasm "github.com/twitchyliquid64/golang-asm"
	"github.com/twitchyliquid64/golang-asm/obj"

	"github.com/armjit/armjit/internal/asm"
)

// errDanglingJump is returned by Assemble when SetJumpTargetOnNext was not followed by an instruction.
var errDanglingJump = errors.New("jump without target at the end of the code")

// Node is an asm.Node wrapping one golang-asm instruction.
type Node struct {
	prog *obj.Prog
}

// NewNode wraps p.
func NewNode(p *obj.Prog) asm.Node {
	return &Node{prog: p}
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.prog.String()
}

// OffsetInBinary implements asm.Node OffsetInBinary
func (n *Node) OffsetInBinary() asm.NodeOffsetInBinary {
	return asm.NodeOffsetInBinary(n.prog.Pc)
}

// AssignJumpTarget implements asm.Node AssignJumpTarget
func (n *Node) AssignJumpTarget(target asm.Node) {
	n.prog.To.SetTarget(target.(*Node).prog)
}

// AssignDestinationConstant implements asm.Node AssignDestinationConstant
func (n *Node) AssignDestinationConstant(value asm.ConstantValue) {
	n.prog.To.Offset = value
}

// BaseAssembler implements the jump bookkeeping and callbacks of asm.AssemblerBase. Architecture
// specific assemblers embed it and add instructions through NewProg and AddInstruction.
type BaseAssembler struct {
	b *goasm.Builder
	// pendingJumps are the jumps whose target is the next added instruction.
	pendingJumps []*Node
	// onGenerate is called with the binary once assembled.
	onGenerate []func(code []byte) error
}

// NewBaseAssembler returns a BaseAssembler for the golang-asm architecture name arch.
func NewBaseAssembler(arch string) (*BaseAssembler, error) {
	b, err := goasm.NewBuilder(arch, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to create a new assembly builder: %w", err)
	}
	return &BaseAssembler{b: b}, nil
}

// Assemble implements asm.AssemblerBase Assemble
func (a *BaseAssembler) Assemble() ([]byte, error) {
	if len(a.pendingJumps) > 0 {
		return nil, fmt.Errorf("%w: %s", errDanglingJump, a.pendingJumps[0])
	}
	code := a.b.Assemble()
	for _, cb := range a.onGenerate {
		if err := cb(code); err != nil {
			return nil, err
		}
	}
	return code, nil
}

// SetJumpTargetOnNext implements asm.AssemblerBase SetJumpTargetOnNext
func (a *BaseAssembler) SetJumpTargetOnNext(nodes ...asm.Node) {
	for _, n := range nodes {
		a.pendingJumps = append(a.pendingJumps, n.(*Node))
	}
}

// AddOnGenerateCallBack implements asm.AssemblerBase AddOnGenerateCallBack
func (a *BaseAssembler) AddOnGenerateCallBack(cb func([]byte) error) {
	a.onGenerate = append(a.onGenerate, cb)
}

// AddInstruction appends next and makes it the target of the pending jumps.
func (a *BaseAssembler) AddInstruction(next *obj.Prog) {
	a.b.AddInstruction(next)
	for _, n := range a.pendingJumps {
		n.prog.To.SetTarget(next)
	}
	a.pendingJumps = a.pendingJumps[:0]
}

// NewProg returns an empty instruction to fill and pass to AddInstruction.
func (a *BaseAssembler) NewProg() *obj.Prog {
	return a.b.NewProg()
}
