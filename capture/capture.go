// Package capture collects what a function writes to standard output.
package capture

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// Stdout runs fn with os.Stdout redirected into a pipe and returns fn's
// result together with everything written to os.Stdout meanwhile. The
// previous os.Stdout is restored even if fn panics.
//
// Stdout swaps a process-wide variable and must not be called concurrently.
func Stdout[T any](fn func() T) (result T, output string, err error) {
	r, w, err := os.Pipe()
	if err != nil {
		return result, "", fmt.Errorf("capture: %w", err)
	}
	defer func() { _ = r.Close() }()

	var buf bytes.Buffer
	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(&buf, r)
		return err
	})

	orig := os.Stdout
	os.Stdout = w
	func() {
		defer func() {
			os.Stdout = orig
			_ = w.Close()
		}()
		result = fn()
	}()

	if err = g.Wait(); err != nil {
		return result, buf.String(), fmt.Errorf("capture: %w", err)
	}

	return result, buf.String(), nil
}
