package io

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wireframe/pkg/editor"
	"github.com/matzehuels/wireframe/pkg/errors"
)

// Settings overrides parts of the editor configuration before replay.
// Unset fields keep the caller's configuration.
type Settings struct {
	SnapToGrid *bool   `toml:"snap_to_grid,omitempty"`
	GridSize   float64 `toml:"grid_size,omitempty"`
	Background string  `toml:"background,omitempty"`
}

// Apply returns cfg with the script's settings laid over it.
func (s Settings) Apply(cfg editor.Config) editor.Config {
	if s.SnapToGrid != nil {
		cfg.SnapToGrid = *s.SnapToGrid
	}
	if s.GridSize > 0 {
		cfg.GridSize = s.GridSize
	}
	if s.Background != "" {
		cfg.Background = s.Background
	}
	return cfg
}

// Script is a decoded replay script.
type Script struct {
	Settings Settings `toml:"settings"`
	Steps    []Step   `toml:"step"`
}

// Events converts every step into an editor event. The first invalid step
// aborts the conversion.
func (s *Script) Events() ([]editor.Event, error) {
	events := make([]editor.Event, 0, len(s.Steps))
	for i, st := range s.Steps {
		ev, err := st.Event()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "step %d (%s)", i+1, st.Name)
		}
		events = append(events, ev)
	}
	return events, nil
}

// Append records ev as a new step. Events with no script form are
// reported by the false result and skipped.
func (s *Script) Append(ev editor.Event) bool {
	st, ok := StepOf(ev)
	if ok {
		s.Steps = append(s.Steps, st)
	}
	return ok
}

// Decode reads a script from r.
//
// Decode fails with [errors.ErrCodeInvalidScript] when the input is not
// valid TOML or contains keys the format does not define. Steps are not
// validated until [Script.Events] is called.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "decode script")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScript, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return &s, nil
}

// ReadScript opens the script at path and decodes it with [Decode].
func ReadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "script %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes s to w as TOML.
func Encode(w io.Writer, s *Script) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode script")
	}
	return nil
}

// WriteScript encodes s and writes it to path, replacing any existing
// file.
func WriteScript(path string, s *Script) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
