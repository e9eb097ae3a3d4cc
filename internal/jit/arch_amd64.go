package jit

// jitcall enters compiled code. codeSegment is the address of the first instruction to execute
// and state is the *jitState as uintptr, which the code addresses through R15.
//
// Note: this is implemented in arch_amd64.s. Compiled code returns with RET straight to the
// caller of jitcall after writing jitState.statusCode.
func jitcall(codeSegment, state uintptr)
