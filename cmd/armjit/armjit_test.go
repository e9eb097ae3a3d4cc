package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dc0d/onexit"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"

	"github.com/armjit/armjit/internal/platform"
)

// helloImage prints "hi" and exits with 3.
var helloImage = image(
	0xe3a00068, // mov r0, #'h'
	0xef000001, // svc #1
	0xe3a00069, // mov r0, #'i'
	0xef000001, // svc #1
	0xe3a00003, // mov r0, #3
	0xef000000, // svc #0
)

// loopImage moves 5 into r0 and spins.
var loopImage = image(
	0xe3a00005, // mov r0, #5
	0xeafffffe, // b .
)

func image(code ...uint32) []byte {
	ret := make([]byte, len(code)*4)
	for i, word := range code {
		binary.LittleEndian.PutUint32(ret[i*4:], word)
	}
	return ret
}

func writeImage(t *testing.T, name string, b []byte) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func engineOpts(t *testing.T) map[string][]string {
	ret := map[string][]string{"interpreter": {"-interp"}}
	if platform.CompilerSupported() {
		ret["jit"] = []string{"-code-cache=1MiB"}
	}
	return ret
}

func TestRun(t *testing.T) {
	var lz4Image bytes.Buffer
	w := lz4.NewWriter(&lz4Image)
	_, err := w.Write(helloImage)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	for name, opts := range engineOpts(t) {
		opts := opts
		t.Run(name, func(t *testing.T) {
			t.Run("exit", func(t *testing.T) {
				args := append(append([]string{"run"}, opts...), writeImage(t, "hello.bin", helloImage))
				exitCode, stdOut, stdErr := runMain(t, args)
				require.Equal(t, 3, exitCode)
				require.Equal(t, "hi", stdOut)
				require.Equal(t, "", stdErr)
			})

			t.Run("lz4", func(t *testing.T) {
				args := append(append([]string{"run"}, opts...), writeImage(t, "hello.bin.lz4", lz4Image.Bytes()))
				exitCode, stdOut, _ := runMain(t, args)
				require.Equal(t, 3, exitCode)
				require.Equal(t, "hi", stdOut)
			})

			t.Run("base", func(t *testing.T) {
				args := append(append([]string{"run", "-base=0x8000"}, opts...), writeImage(t, "hello.bin", helloImage))
				exitCode, stdOut, _ := runMain(t, args)
				require.Equal(t, 3, exitCode)
				require.Equal(t, "hi", stdOut)
			})

			t.Run("steps", func(t *testing.T) {
				args := append(append([]string{"run", "-steps=100"}, opts...), writeImage(t, "loop.bin", loopImage))
				exitCode, stdOut, stdErr := runMain(t, args)
				require.Equal(t, 0, exitCode)
				require.Equal(t, "", stdOut)
				require.Equal(t, "stopped after 100 instructions\n", stdErr)
			})

			t.Run("write", func(t *testing.T) {
				img := image(
					0xe3a00014, // mov r0, #0x14
					0xe3a01005, // mov r1, #5
					0xef000002, // svc #2
					0xe3a00000, // mov r0, #0
					0xef000000, // svc #0
				)
				img = append(img, "hello"...)
				args := append(append([]string{"run"}, opts...), writeImage(t, "write.bin", img))
				exitCode, stdOut, _ := runMain(t, args)
				require.Equal(t, 0, exitCode)
				require.Equal(t, "hello", stdOut)
			})
		})
	}
}

func TestBlocks(t *testing.T) {
	if !platform.CompilerSupported() {
		t.Skip()
	}
	exitCode, stdOut, _ := runMain(t, []string{"blocks", "-steps=10", writeImage(t, "loop.bin", loopImage)})
	require.Equal(t, 0, exitCode)
	lines := strings.Split(strings.TrimSpace(stdOut), "\n")
	require.Equal(t, 4, len(lines), stdOut)
	require.True(t, strings.HasPrefix(lines[0], "PC"), lines[0])
	require.True(t, strings.HasPrefix(lines[1], "0x00000000  arm/le"), lines[1])
	require.True(t, strings.HasPrefix(lines[2], "0x00000004  arm/le"), lines[2])
	require.True(t, strings.HasPrefix(lines[3], "code cache: "), lines[3])
	require.True(t, strings.HasSuffix(lines[3], " of 32MiB"), lines[3])
}

func TestVersion(t *testing.T) {
	exitCode, stdOut, _ := runMain(t, []string{"version"})
	require.Equal(t, 0, exitCode)
	require.NotEmpty(t, strings.TrimSpace(stdOut))
}

func TestHelp(t *testing.T) {
	exitCode, _, stdErr := runMain(t, []string{"-h"})
	require.Equal(t, 0, exitCode)
	require.Contains(t, stdErr, "armjit CLI\n\nUsage:")

	exitCode, _, stdErr = runMain(t, []string{"run", "-h"})
	require.Equal(t, 0, exitCode)
	require.Contains(t, stdErr, "armjit run <options> <path to image file>")
	require.Contains(t, stdErr, "-code-cache")
}

func TestErrors(t *testing.T) {
	udf := writeImage(t, "udf.bin", image(0xe7f000f0))

	tests := []struct {
		message string
		args    []string
	}{
		{
			message: "missing path to image file",
			args:    []string{"run"},
		},
		{
			message: "error loading image",
			args:    []string{"run", "non-existent.bin"},
		},
		{
			message: "invalid value \"lots\" for flag -code-cache",
			args:    []string{"run", "-code-cache=lots", udf},
		},
		{
			message: "invalid base",
			args:    []string{"run", "-mem=1MiB", "-base=0x100000", udf},
		},
		{
			message: "does not fit",
			args:    []string{"run", "-mem=1MiB", "-base=0xffffe", udf},
		},
		{
			message: "error running image: undefined instruction",
			args:    []string{"run", "-interp", udf},
		},
		{
			message: "invalid command",
			args:    []string{"fly"},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.message, func(t *testing.T) {
			exitCode, _, stdErr := runMain(t, tt.args)

			require.Equal(t, 1, exitCode)
			require.Contains(t, stdErr, tt.message)
		})
	}
}

func TestMachine_command(t *testing.T) {
	for name, opts := range engineOpts(t) {
		opts := opts
		t.Run(name, func(t *testing.T) {
			var mf machineFlags
			flags := flag.NewFlagSet("debug", flag.ContinueOnError)
			mf.register(flags)
			require.NoError(t, flags.Parse(append(opts, "-mem=64KiB")))

			var guestOut bytes.Buffer
			m, err := newMachine(writeImage(t, "hello.bin", helloImage), &mf, &guestOut, &bytes.Buffer{})
			require.NoError(t, err)
			defer m.close()

			var out bytes.Buffer
			command := func(line string) bool {
				out.Reset()
				quit, err := m.command(line, &out)
				require.NoError(t, err)
				return quit
			}

			require.False(t, command(""))
			require.False(t, command("step 2"))
			require.Equal(t, "executed 2, pc=0x00000008\n", out.String())
			require.Equal(t, "h", guestOut.String())

			require.False(t, command("regs"))
			require.Equal(t, "r0  00000068  r1  00000000  r2  00000000  r3  00000000\n"+
				"r4  00000000  r5  00000000  r6  00000000  r7  00000000\n"+
				"r8  00000000  r9  00000000  r10 00000000  r11 00000000\n"+
				"r12 00000000  sp  00010000  lr  00000000  pc  00000008\n"+
				"cpsr 00000010  nzcvq arm\n", out.String())

			require.False(t, command("x 0 2"))
			require.Equal(t, "00000000: e3a00068 ef000001\n", out.String())

			require.False(t, command("s"))
			require.False(t, command("clear"))
			require.False(t, command("reload"))
			require.True(t, command("s 10"))
			require.Equal(t, "guest exited with 3\n", out.String())
			require.Equal(t, "hi", guestOut.String())

			require.True(t, command("q"))

			_, err = m.command("fly", &out)
			require.EqualError(t, err, "unknown command \"fly\", type help for commands")
			_, err = m.command("x", &out)
			require.Error(t, err)
			_, err = m.command("s lots", &out)
			require.EqualError(t, err, "invalid number \"lots\"")
			_, err = m.command("x 0xfffc 2", &out)
			require.Error(t, err)
			require.Contains(t, err.Error(), "memory fault")
		})
	}
}

func TestFormatRegs_flags(t *testing.T) {
	var mf machineFlags
	flags := flag.NewFlagSet("debug", flag.ContinueOnError)
	mf.register(flags)
	require.NoError(t, flags.Parse([]string{"-interp", "-mem=4KiB"}))
	m, err := newMachine(writeImage(t, "loop.bin", loopImage), &mf, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)
	defer m.close()

	m.cpu.SetCPSR(0x10 | 1<<31 | 1<<29 | 1<<5)
	require.True(t, strings.HasSuffix(formatRegs(m.cpu), "cpsr a0000030  NzCvq thumb\n"))
}

func TestExitProcess(t *testing.T) {
	require.NotNil(t, exitProcess)
	// Cleanups registered by the commands only run once the process exits.
	select {
	case <-onexit.Done():
		t.Fatal("exit already started")
	default:
	}
}

func runMain(t *testing.T, args []string) (int, string, string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() {
		os.Args = oldArgs
	})
	os.Args = append([]string{"armjit"}, args...)

	var exitCode int
	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}
	var exited bool
	func() {
		defer func() {
			if r := recover(); r != nil {
				exited = true
			}
		}()
		flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
		doMain(stdOut, stdErr, func(code int) {
			exitCode = code
			panic(code)
		})
	}()

	require.True(t, exited)

	return exitCode, stdOut.String(), stdErr.String()
}
