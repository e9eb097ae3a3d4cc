package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dc0d/onexit"
	"github.com/docker/go-units"
	"github.com/fsnotify/fsnotify"

	"github.com/armjit/armjit"
	"github.com/armjit/armjit/internal/version"
)

// runSlice is the most instructions executed between two checks for a reloaded image.
const runSlice = 1 << 16

// exitProcess runs the cleanups registered with onexit, then exits the process.
var exitProcess func(code int) = onexit.ForceExit

func main() {
	doMain(os.Stdout, os.Stderr, exitProcess)
}

// doMain is separated out for the purpose of unit testing.
func doMain(stdOut io.Writer, stdErr io.Writer, exit func(code int)) {
	flag.CommandLine.SetOutput(stdErr)

	var help bool
	flag.BoolVar(&help, "h", false, "print usage")

	flag.Parse()

	if help || flag.NArg() == 0 {
		printUsage(stdErr)
		exit(0)
	}

	subCmd := flag.Arg(0)
	switch subCmd {
	case "run":
		doRun(flag.Args()[1:], stdOut, stdErr, exit)
	case "debug":
		doDebug(flag.Args()[1:], stdOut, stdErr, exit)
	case "blocks":
		doBlocks(flag.Args()[1:], stdOut, stdErr, exit)
	case "version":
		fmt.Fprintln(stdOut, version.GetArmjitVersion())
		exit(0)
	default:
		fmt.Fprintln(stdErr, "invalid command")
		printUsage(stdErr)
		exit(1)
	}
}

// parseMachine parses the flags of a command running an image and returns its machine.
func parseMachine(name string, args []string, stdOut, stdErr io.Writer, exit func(code int),
	register func(*flag.FlagSet), usage func(io.Writer, *flag.FlagSet),
) *machine {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stdErr)

	var help bool
	flags.BoolVar(&help, "h", false, "print usage")

	var mf machineFlags
	mf.register(flags)
	if register != nil {
		register(flags)
	}

	if err := flags.Parse(args); err != nil {
		exit(1)
	}

	if help {
		usage(stdErr, flags)
		exit(0)
	}

	if flags.NArg() < 1 {
		fmt.Fprintln(stdErr, "missing path to image file")
		usage(stdErr, flags)
		exit(1)
	}

	m, err := newMachine(flags.Arg(0), &mf, stdOut, stdErr)
	if err != nil {
		fmt.Fprintf(stdErr, "error loading image: %v\n", err)
		exit(1)
	}
	onexit.Register(func() { _ = m.close() })
	return m
}

func doRun(args []string, stdOut, stdErr io.Writer, exit func(code int)) {
	var steps uint64
	var watch bool
	m := parseMachine("run", args, stdOut, stdErr, exit, func(flags *flag.FlagSet) {
		flags.Uint64Var(&steps, "steps", 0, "stop after this many instructions. Zero runs until the guest exits")
		flags.BoolVar(&watch, "watch", false, "reload the image and clear the code cache when the file changes")
	}, printRunUsage)

	var reload <-chan struct{}
	if watch {
		var err error
		if reload, err = watchImage(m.path, stdErr); err != nil {
			fmt.Fprintf(stdErr, "error watching image: %v\n", err)
			exit(1)
		}
	}

	var executed uint64
	for steps == 0 || executed < steps {
		n := uint64(runSlice)
		if steps != 0 && steps-executed < n {
			n = steps - executed
		}
		ran, err := m.cpu.Run(n)
		executed += ran
		if errors.Is(err, errGuestExit) {
			exit(m.exitCode)
		} else if err != nil {
			fmt.Fprintf(stdErr, "error running image: %v (pc=%#08x, executed=%d)\n", err, m.cpu.PC(), executed)
			exit(1)
		}

		select {
		case <-reload:
			if err = m.reload(); err != nil {
				fmt.Fprintf(stdErr, "error reloading image: %v\n", err)
				exit(1)
			}
		default:
		}
	}
	fmt.Fprintf(stdErr, "stopped after %d instructions\n", executed)
	exit(0)
}

// watchImage returns a channel receiving a value after each change of the file at path.
func watchImage(path string, stdErr io.Writer) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err = watcher.Add(path); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	onexit.Register(func() { _ = watcher.Close() })

	ret := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					// Editors replace the file, so watch the new one.
					_ = watcher.Add(path)
				}
				select {
				case ret <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(stdErr, "error watching image: %v\n", err)
			}
		}
	}()
	return ret, nil
}

func doBlocks(args []string, stdOut, stdErr io.Writer, exit func(code int)) {
	var steps uint64
	m := parseMachine("blocks", args, stdOut, stdErr, exit, func(flags *flag.FlagSet) {
		flags.Uint64Var(&steps, "steps", 1000, "instructions to run before listing the compiled blocks")
	}, printBlocksUsage)

	if _, err := m.cpu.Run(steps); err != nil && !errors.Is(err, errGuestExit) {
		fmt.Fprintf(stdErr, "error running image: %v (pc=%#08x)\n", err, m.cpu.PC())
		exit(1)
	}
	printBlocks(stdOut, m.cpu)
	exit(0)
}

// printBlocks writes a table of the compiled blocks of cpu and the code cache usage.
func printBlocks(w io.Writer, cpu armjit.CPU) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "PC\tMODE\tINSTRUCTIONS\tSIZE\tADDRESS")
	for _, b := range cpu.Blocks() {
		fmt.Fprintf(tw, "%#08x\t%s\t%d\t%s\t%#x\n", b.PC, blockMode(b), b.Instructions, units.BytesSize(float64(b.Size)), b.Address)
	}
	_ = tw.Flush()

	used, capacity := cpu.CodeCacheUsage()
	fmt.Fprintf(w, "code cache: %s of %s\n", units.BytesSize(float64(used)), units.BytesSize(float64(capacity)))
}

func blockMode(b armjit.BlockInfo) string {
	mode, e := "arm", "le"
	if b.Thumb {
		mode = "thumb"
	}
	if b.BigEndian {
		e = "be"
	}
	return mode + "/" + e
}

func printUsage(stdErr io.Writer) {
	fmt.Fprintln(stdErr, "armjit CLI")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Usage:\n  armjit <command>")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Commands:")
	fmt.Fprintln(stdErr, "  run\t\tRuns a guest image")
	fmt.Fprintln(stdErr, "  debug\t\tSteps through a guest image interactively")
	fmt.Fprintln(stdErr, "  blocks\tLists the blocks compiled while running a guest image")
	fmt.Fprintln(stdErr, "  version\tDisplays the version of armjit CLI")
}

func printRunUsage(stdErr io.Writer, flags *flag.FlagSet) {
	printCommandUsage(stdErr, flags, "run")
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "The guest stops with svc #0 (exit code in r0), and writes to stdout with svc #1 (byte in r0)")
	fmt.Fprintln(stdErr, "or svc #2 (address in r0, length in r1).")
}

func printBlocksUsage(stdErr io.Writer, flags *flag.FlagSet) {
	printCommandUsage(stdErr, flags, "blocks")
}

func printCommandUsage(stdErr io.Writer, flags *flag.FlagSet, name string) {
	fmt.Fprintln(stdErr, "armjit CLI")
	fmt.Fprintln(stdErr)
	fmt.Fprintf(stdErr, "Usage:\n  armjit %s <options> <path to image file>\n", name)
	fmt.Fprintln(stdErr)
	fmt.Fprintln(stdErr, "Options:")
	flags.PrintDefaults()
}
