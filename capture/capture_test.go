package capture

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdout(t *testing.T) {
	got, out, err := Stdout(func() int {
		fmt.Println("hello")
		fmt.Print("world")
		return 42
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, "hello\nworld", out)
}

func TestStdoutRestores(t *testing.T) {
	orig := os.Stdout
	_, _, err := Stdout(func() struct{} { return struct{}{} })
	require.NoError(t, err)
	assert.Same(t, orig, os.Stdout)
}

func TestStdoutLargeOutput(t *testing.T) {
	// Larger than a pipe buffer, so the reader has to drain concurrently.
	line := strings.Repeat("x", 1023) + "\n"
	_, out, err := Stdout(func() bool {
		for range 512 {
			fmt.Print(line)
		}
		return true
	})
	require.NoError(t, err)
	assert.Len(t, out, 512*1024)
}

func TestStdoutRestoresOnPanic(t *testing.T) {
	orig := os.Stdout
	assert.Panics(t, func() {
		_, _, _ = Stdout(func() int { panic("boom") })
	})
	assert.Same(t, orig, os.Stdout)
}

func openFDs(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skipf("cannot list open descriptors: %v", err)
	}
	return len(entries)
}

func TestStdoutPanicClosesPipe(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("descriptor count needs /proc")
	}
	// The first pipe may initialise the runtime poller.
	_, _, err := Stdout(func() int { return 0 })
	require.NoError(t, err)

	before := openFDs(t)
	for range 5 {
		assert.Panics(t, func() {
			_, _, _ = Stdout(func() int { panic("boom") })
		})
	}
	assert.Equal(t, before, openFDs(t))
}
