package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/armjit/armjit"
	"github.com/armjit/armjit/internal/memory"
)

const debugPrompt = "\033[32m(armjit)\033[0m "

func doDebug(args []string, stdOut, stdErr io.Writer, exit func(code int)) {
	var history string
	m := parseMachine("debug", args, stdOut, stdErr, exit, func(flags *flag.FlagSet) {
		flags.StringVar(&history, "history", filepath.Join(os.TempDir(), ".armjit-history"), "file keeping the command history")
	}, printDebugUsage)

	l, err := readline.NewEx(&readline.Config{
		Prompt:            debugPrompt,
		HistoryFile:       history,
		InterruptPrompt:   "^C",
		EOFPrompt:         "quit",
		HistorySearchFold: true,
		Stdout:            stdOut,
		Stderr:            stdErr,
	})
	if err != nil {
		fmt.Fprintf(stdErr, "error starting debugger: %v\n", err)
		exit(1)
	}
	defer l.Close()

	fmt.Fprintf(stdOut, "%s loaded, type help for commands\n", m.path)
	for {
		line, err := l.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				break
			}
			continue
		} else if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			fmt.Fprintf(stdErr, "error reading command: %v\n", err)
			exit(1)
		}

		quit, err := m.command(line, stdOut)
		if err != nil {
			fmt.Fprintf(stdOut, "error: %v\n", err)
		}
		if quit {
			break
		}
	}
	exit(m.exitCode)
}

// command executes one debugger command line and returns true when the debugger should quit.
func (m *machine) command(line string, w io.Writer) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	args := fields[1:]
	switch fields[0] {
	case "step", "s":
		n := uint32(1)
		if len(args) > 0 {
			if n, err = parseUint32(args[0]); err != nil {
				return
			}
		}
		var executed uint64
		executed, err = m.cpu.Run(uint64(n))
		if errors.Is(err, errGuestExit) {
			fmt.Fprintf(w, "guest exited with %d\n", m.exitCode)
			return true, nil
		}
		fmt.Fprintf(w, "executed %d, pc=%#08x\n", executed, m.cpu.PC())
	case "regs", "r":
		fmt.Fprint(w, formatRegs(m.cpu))
	case "mem", "x":
		if len(args) == 0 {
			return false, errors.New("usage: mem <address> [words]")
		}
		var addr, words uint32
		if addr, err = parseUint32(args[0]); err != nil {
			return
		}
		words = 4
		if len(args) > 1 {
			if words, err = parseUint32(args[1]); err != nil {
				return
			}
		}
		err = m.dump(w, addr, words)
	case "blocks", "b":
		printBlocks(w, m.cpu)
	case "clear":
		m.cpu.ClearCache()
	case "reload":
		err = m.reload()
	case "help", "h":
		fmt.Fprint(w, debugHelp)
	case "quit", "q":
		return true, nil
	default:
		err = fmt.Errorf("unknown command %q, type help for commands", fields[0])
	}
	return
}

const debugHelp = `step, s [n]            execute n instructions, 1 by default
regs, r                print the registers
mem, x <addr> [words]  print memory as words, 4 by default
blocks, b              list the compiled blocks
clear                  clear the code cache
reload                 reload the image and clear the code cache
quit, q                leave the debugger
`

// dump prints words of memory at addr, four per line, in the current data endianness.
func (m *machine) dump(w io.Writer, addr, words uint32) error {
	bigEndian := m.cpu.CPSR()&(1<<9) != 0
	for i := uint32(0); i < words; i++ {
		a := addr + i*4
		if i%4 == 0 {
			if i != 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%08x:", a)
		}
		v, err := memory.Read32(m.mem, a, bigEndian)
		if err != nil {
			fmt.Fprintln(w)
			return err
		}
		fmt.Fprintf(w, " %08x", v)
	}
	fmt.Fprintln(w)
	return nil
}

// formatRegs formats the general purpose registers, four per line, and the CPSR with its flags.
func formatRegs(cpu armjit.CPU) string {
	var b strings.Builder
	for i := 0; i < 16; i++ {
		fmt.Fprintf(&b, "%-4s%08x", regName(i), cpu.Reg(i))
		if i%4 == 3 {
			b.WriteByte('\n')
		} else {
			b.WriteString("  ")
		}
	}
	cpsr := cpu.CPSR()
	flags := []byte("nzcvq")
	for i := range flags {
		if cpsr&(1<<(31-i)) != 0 {
			flags[i] -= 'a' - 'A'
		}
	}
	state := "arm"
	if cpsr&(1<<5) != 0 {
		state = "thumb"
	}
	fmt.Fprintf(&b, "cpsr %08x  %s %s\n", cpsr, flags, state)
	return b.String()
}

func regName(i int) string {
	switch i {
	case 13:
		return "sp"
	case 14:
		return "lr"
	case 15:
		return "pc"
	}
	return "r" + strconv.Itoa(i)
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return uint32(v), nil
}

func printDebugUsage(stdErr io.Writer, flags *flag.FlagSet) {
	printCommandUsage(stdErr, flags, "debug")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Commands:")
	fmt.Fprint(stdErr, debugHelp)
}
