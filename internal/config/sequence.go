package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/navagraha/dasha/internal/vimshottari"
)

// sequenceFile is the on-disk shape of an alternate dasha system: a list
// of [[ruler]] tables, in cyclic order.
type sequenceFile struct {
	Rulers []sequenceEntry `toml:"ruler"`
}

type sequenceEntry struct {
	Name  string  `toml:"name"`
	Years float64 `toml:"years"`
}

// LoadSequence parses a TOML sequence file into a vimshottari.Sequence.
// The file lists rulers by name with their duration in years:
//
//	[[ruler]]
//	name = "ketu"
//	years = 7
//
// Structural validation (non-empty, positive durations) happens when the
// sequence is handed to vimshottari.NewCalculator.
func LoadSequence(path string) (vimshottari.Sequence, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return vimshottari.Sequence{}, fmt.Errorf("read sequence file: %w", err)
	}

	var file sequenceFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return vimshottari.Sequence{}, fmt.Errorf("parse sequence file %s: %w", path, err)
	}

	entries := make([]vimshottari.Entry, 0, len(file.Rulers))
	for i, r := range file.Rulers {
		ruler, err := vimshottari.ParseRuler(r.Name)
		if err != nil {
			return vimshottari.Sequence{}, fmt.Errorf("sequence file %s, entry %d: %w", path, i, err)
		}
		entries = append(entries, vimshottari.Entry{Ruler: ruler, Years: r.Years})
	}
	return vimshottari.Sequence{Entries: entries}, nil
}
