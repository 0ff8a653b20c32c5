// Package netfile reads declarative transit network definitions (YAML) and
// builds metro.Network values from them.
//
// Document shape:
//
//	name: Ankara Metro
//	lines:
//	  - id: Kırmızı Hat
//	    stations:
//	      - {key: K1, name: Kızılay}
//	      - {key: K2, name: Ulus}
//	connections:
//	  - {from: K1, to: K2, time: 4}
//
// Unknown fields are rejected. Stations are added line by line in document
// order, then connections in document order, so the resulting adjacency order
// (and therefore search tie-breaking) follows the file.
package netfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metroroute/metro"
)

// ErrInvalidDefinition is returned when a decoded document fails validation.
var ErrInvalidDefinition = errors.New("netfile: invalid network definition")

// Definition is the decoded form of a network document.
type Definition struct {
	Name        string       `yaml:"name"`
	Lines       []Line       `yaml:"lines"`
	Connections []Connection `yaml:"connections"`
}

// Line groups the stations served by one route.
type Line struct {
	ID       string        `yaml:"id"`
	Stations []StationSpec `yaml:"stations"`
}

// StationSpec declares one station of a line.
type StationSpec struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// Connection declares an undirected link and its travel time in minutes.
type Connection struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Time int64  `yaml:"time"`
}

// Decode parses a YAML document from r. It does not validate; see Validate.
func Decode(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("netfile: decode: %w", err)
	}

	return &def, nil
}

// Validate checks the structural rules a Network would otherwise reject
// half-way through Build:
//   - at least one line, every line with an id;
//   - every station with a non-empty key;
//   - every connection with both endpoints and a non-negative time.
//
// Duplicate station keys are allowed and follow metro's first-registration-wins rule.
// Whether connection endpoints exist is checked by Build.
func (d *Definition) Validate() error {
	if len(d.Lines) == 0 {
		return fmt.Errorf("%w: no lines", ErrInvalidDefinition)
	}
	for i, l := range d.Lines {
		if l.ID == "" {
			return fmt.Errorf("%w: line #%d has no id", ErrInvalidDefinition, i+1)
		}
		for j, s := range l.Stations {
			if s.Key == "" {
				return fmt.Errorf("%w: line %q station #%d has no key", ErrInvalidDefinition, l.ID, j+1)
			}
		}
	}
	for i, c := range d.Connections {
		if c.From == "" || c.To == "" {
			return fmt.Errorf("%w: connection #%d is missing an endpoint", ErrInvalidDefinition, i+1)
		}
		if c.Time < 0 {
			return fmt.Errorf("%w: connection %s–%s has negative time %d", ErrInvalidDefinition, c.From, c.To, c.Time)
		}
	}

	return nil
}

// Build validates d and materializes it into a new metro.Network.
// Connection errors are wrapped with the offending connection and keep the
// metro sentinel (e.g. metro.ErrStationNotFound) reachable via errors.Is.
func (d *Definition) Build() (*metro.Network, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	n := metro.NewNetwork()
	for _, l := range d.Lines {
		for _, s := range l.Stations {
			if err := n.AddStation(s.Key, s.Name, l.ID); err != nil {
				return nil, fmt.Errorf("netfile: line %q: %w", l.ID, err)
			}
		}
	}
	for i, c := range d.Connections {
		if err := n.AddConnection(c.From, c.To, c.Time); err != nil {
			return nil, fmt.Errorf("netfile: connection #%d: %w", i+1, err)
		}
	}

	return n, nil
}

// Load decodes, validates and builds a network from r.
func Load(r io.Reader) (*metro.Network, *Definition, error) {
	def, err := Decode(r)
	if err != nil {
		return nil, nil, err
	}
	n, err := def.Build()
	if err != nil {
		return nil, nil, err
	}

	return n, def, nil
}

// LoadFile is Load on the file at path.
func LoadFile(path string) (*metro.Network, *Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("netfile: %w", err)
	}

	return Load(bytes.NewReader(data))
}
