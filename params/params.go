// Package params persists the hyper-parameters of a model as a
// zstd-compressed gob stream.
//
// Values stored under map keys travel through an interface, so types other
// than gob's built-in basic types and slices must be passed to Register
// before Save or Load.
package params

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Model is anything exposing its parameters as a map, in the style of a
// scikit-learn estimator.
type Model interface {
	Params() map[string]any
	SetParams(map[string]any) error
}

// ErrNilModel is returned when Save or Load is handed a nil model.
var ErrNilModel = errors.New("params: nil model")

// Option configures encoding.
type Option func(*config)

type config struct {
	level zstd.EncoderLevel
}

// WithLevel sets the zstd compression level.
func WithLevel(level zstd.EncoderLevel) Option {
	return func(c *config) { c.level = level }
}

// Register records a concrete type stored in parameter maps.
func Register(value any) {
	gob.Register(value)
}

// Encode writes the parameters of m to w.
func Encode(w io.Writer, m Model, opts ...Option) error {
	if m == nil {
		return ErrNilModel
	}
	cfg := config{level: zstd.SpeedDefault}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(cfg.level))
	if err != nil {
		return fmt.Errorf("params: create compressor: %w", err)
	}
	if err := gob.NewEncoder(enc).Encode(m.Params()); err != nil {
		_ = enc.Close()
		return fmt.Errorf("params: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("params: flush: %w", err)
	}
	return nil
}

// Decode reads parameters from r and applies them to m.
func Decode(r io.Reader, m Model) error {
	if m == nil {
		return ErrNilModel
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("params: create decompressor: %w", err)
	}
	defer dec.Close()

	var p map[string]any
	if err := gob.NewDecoder(dec).Decode(&p); err != nil {
		return fmt.Errorf("params: decode: %w", err)
	}
	return m.SetParams(p)
}

// Save writes the parameters of m to the file at path, replacing it.
func Save(m Model, path string, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, m, opts...); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Load reads parameters from the file at path into m and returns m.
func Load[M Model](m M, path string) (M, error) {
	f, err := os.Open(path)
	if err != nil {
		return m, err
	}
	defer f.Close()

	return m, Decode(f, m)
}
