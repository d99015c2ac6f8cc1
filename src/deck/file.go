package deck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// File is the persisted deck configuration. Rows feed the key card coverage
// check, VS feeds the VS check; a file may carry either or both.
type File struct {
	DeckSize int   `json:"deckSize" yaml:"deckSize" validate:"gt=0"`
	HandSize int   `json:"handSize" yaml:"handSize" validate:"gte=0,ltefield=DeckSize"`
	Rows     []Row `json:"rows,omitempty" yaml:"rows,omitempty" validate:"dive"`
	VS       *VS   `json:"vs,omitempty" yaml:"vs,omitempty"`
}

// record is the on-disk shape. Sizes are pointers so an explicit zero is
// kept and only absent fields take defaults. The flat nA..nD keys are the
// key/value export of the VS page and map onto VS.
type record struct {
	DeckSize *int  `json:"deckSize" yaml:"deckSize"`
	HandSize *int  `json:"handSize" yaml:"handSize"`
	Rows     []Row `json:"rows" yaml:"rows"`
	VS       *VS   `json:"vs" yaml:"vs"`

	Key    *int `json:"nA" yaml:"nA"`
	VSFire *int `json:"nVF" yaml:"nVF"`
	VSDark *int `json:"nVD" yaml:"nVD"`
	VSOnly *int `json:"nV" yaml:"nV"`
	Fire   *int `json:"nF" yaml:"nF"`
	Dark   *int `json:"nD" yaml:"nD"`
}

func (r record) file() File {
	f := File{
		DeckSize: valueOr(r.DeckSize, DefaultDeckSize),
		HandSize: valueOr(r.HandSize, DefaultHandSize),
		Rows:     r.Rows,
		VS:       r.VS,
	}
	if f.VS != nil {
		return f
	}

	if r.Key == nil && r.VSFire == nil && r.VSDark == nil && r.VSOnly == nil && r.Fire == nil && r.Dark == nil {
		return f
	}

	d := DefaultVS()
	f.VS = &VS{
		Key:    valueOr(r.Key, d.Key),
		VSFire: valueOr(r.VSFire, d.VSFire),
		VSDark: valueOr(r.VSDark, d.VSDark),
		VS:     valueOr(r.VSOnly, d.VS),
		Fire:   valueOr(r.Fire, d.Fire),
		Dark:   valueOr(r.Dark, d.Dark),
	}
	return f
}

func valueOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var validate = validator.New()

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported deck file extension %q", filepath.Ext(path))
	}
}

// Decode reads a deck file. Absent sizes fall back to a 40-card deck and a
// 5-card hand before validation. A flat VS export ({deckSize, handSize, nA,
// nVF, nVD, nV, nF, nD}) is accepted too; its missing counts take the
// DefaultVS values.
func Decode(r io.Reader, format Format) (File, error) {
	var rec record
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&rec); err != nil {
			return File{}, fmt.Errorf("decode json deck: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&rec); err != nil && err != io.EOF {
			return File{}, fmt.Errorf("decode yaml deck: %w", err)
		}
	default:
		return File{}, fmt.Errorf("unsupported deck format %q", format)
	}

	f := rec.file()
	if err := validate.Struct(f); err != nil {
		return File{}, fmt.Errorf("invalid deck file: %w", err)
	}
	return f, nil
}

// Encode writes f in the given format.
func Encode(w io.Writer, f File, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported deck format %q", format)
	}
}

// Load reads the deck file at path.
func Load(path string) (File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return File{}, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return Decode(bytes.NewReader(raw), format)
}

// Save writes f to path, replacing any existing file.
func Save(path string, f File) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, f, format); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
