package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/docker/go-units"

	"github.com/armjit/armjit"
	"github.com/armjit/armjit/internal/memory"
)

// Supervisor calls the CLI implements for the guest.
const (
	// svcExit stops the guest with exit code r0.
	svcExit = 0
	// svcPutChar writes the low byte of r0 to stdout.
	svcPutChar = 1
	// svcWrite writes r1 bytes at address r0 to stdout.
	svcWrite = 2
)

// errGuestExit is returned by the supervisor call handler when the guest exits.
var errGuestExit = errors.New("guest exit")

// machineFlags are the flags shared by every command that runs an image.
type machineFlags struct {
	interp    bool
	verbose   bool
	thumb     bool
	codeCache sizeFlag
	memSize   sizeFlag
	base      uint64
	entry     int64
}

func (m *machineFlags) register(flags *flag.FlagSet) {
	flags.BoolVar(&m.interp, "interp", false, "interpret instead of compiling")
	flags.BoolVar(&m.verbose, "v", false, "log compilation, cache and interpreter events to stderr")
	flags.BoolVar(&m.thumb, "thumb", false, "start in Thumb state")
	m.codeCache = sizeFlag(armjit.DefaultCodeCacheSize)
	flags.Var(&m.codeCache, "code-cache", "size of the code cache, such as 64MiB")
	m.memSize = 16 << 20
	flags.Var(&m.memSize, "mem", "size of guest memory mapped at address zero, such as 1MiB")
	flags.Uint64Var(&m.base, "base", 0, "guest address the image is loaded at")
	flags.Int64Var(&m.entry, "entry", -1, "guest address execution starts at. Defaults to -base")
}

// machine is a CPU and the memory holding an image.
type machine struct {
	cpu    armjit.CPU
	mem    *memory.Flat
	path   string
	base   uint32
	stdOut io.Writer

	exitCode int
}

func newMachine(path string, f *machineFlags, stdOut, stdErr io.Writer) (*machine, error) {
	if f.memSize <= 0 || f.memSize >= 1<<32 {
		return nil, fmt.Errorf("invalid mem: %s", f.memSize.String())
	}
	if f.base >= uint64(f.memSize) {
		return nil, fmt.Errorf("invalid base: %#x is outside of %s of memory", f.base, f.memSize.String())
	}
	m := &machine{
		mem:    memory.NewFlat(0, uint32(f.memSize)),
		path:   path,
		base:   uint32(f.base),
		stdOut: stdOut,
	}
	if err := m.load(); err != nil {
		return nil, err
	}

	level := slog.LevelError
	if f.verbose {
		level = slog.LevelDebug
	}
	var cfg armjit.Config
	if f.interp {
		cfg = armjit.NewConfigInterpreter()
	} else {
		cfg = armjit.NewConfig()
	}
	cfg = cfg.WithCodeCacheSize(int(f.codeCache)).
		WithLogger(slog.New(slog.NewTextHandler(stdErr, &slog.HandlerOptions{Level: level}))).
		WithSupervisorCall(m.supervisorCall)

	cpu, err := armjit.NewCPU(m.mem, cfg)
	if err != nil {
		return nil, err
	}
	m.cpu = cpu

	entry := uint32(f.base)
	if f.entry >= 0 {
		entry = uint32(f.entry)
	}
	if f.thumb {
		entry |= 1
	}
	var ctx armjit.ThreadContext
	cpu.ResetContext(&ctx, m.mem.Size()&^7, entry, 0)
	cpu.LoadContext(&ctx)
	return m, nil
}

// load copies the image into memory. The compiled code of the previous image is not dropped.
func (m *machine) load() error {
	image, err := memory.LoadImage(m.path)
	if err != nil {
		return err
	}
	if !m.mem.Write(m.base, image) {
		return fmt.Errorf("image of %s does not fit at %#x", units.BytesSize(float64(len(image))), m.base)
	}
	return nil
}

// reload loads the image again and drops the code compiled from the previous one.
func (m *machine) reload() error {
	if err := m.load(); err != nil {
		return err
	}
	m.cpu.ClearCache()
	return nil
}

func (m *machine) supervisorCall(cpu armjit.CPU, imm uint32) error {
	switch imm {
	case svcExit:
		m.exitCode = int(int32(cpu.Reg(0)))
		return errGuestExit
	case svcPutChar:
		_, err := m.stdOut.Write([]byte{byte(cpu.Reg(0))})
		return err
	case svcWrite:
		addr, size := cpu.Reg(0), cpu.Reg(1)
		buf := make([]byte, 0, size)
		for i := uint32(0); i < size; i++ {
			b, ok := m.mem.ReadByte(addr + i)
			if !ok {
				return fmt.Errorf("%w: write of %d bytes at %#08x", armjit.ErrFault, size, addr)
			}
			buf = append(buf, b)
		}
		_, err := m.stdOut.Write(buf)
		return err
	}
	return fmt.Errorf("%w: unknown #%#x", armjit.ErrSupervisorCall, imm)
}

func (m *machine) close() error {
	return m.cpu.Close()
}

// sizeFlag is a byte size given in human readable form.
type sizeFlag int64

func (f *sizeFlag) String() string {
	return units.BytesSize(float64(*f))
}

func (f *sizeFlag) Set(s string) error {
	v, err := units.RAMInBytes(s)
	if err != nil {
		return err
	}
	*f = sizeFlag(v)
	return nil
}
