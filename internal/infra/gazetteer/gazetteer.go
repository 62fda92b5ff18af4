// Package gazetteer is the already-loaded table of states, local government
// areas and areas used for location pickers and validation.
package gazetteer

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed regions.yaml
var defaultRegions []byte

type fileLayout struct {
	States []stateEntry `yaml:"states"`
}

type stateEntry struct {
	Name string     `yaml:"name"`
	LGAs []lgaEntry `yaml:"lgas"`
}

type lgaEntry struct {
	Name  string   `yaml:"name"`
	Areas []string `yaml:"areas"`
}

// Gazetteer answers region lookups. Names are matched case-insensitively and
// returned in file order. It is read-only after construction.
type Gazetteer struct {
	states []string
	lgas   map[string][]string
	areas  map[string][]string
}

// Default returns the embedded gazetteer
func Default() *Gazetteer {
	g, err := Parse(defaultRegions)
	if err != nil {
		panic(fmt.Sprintf("gazetteer: embedded regions are invalid: %v", err))
	}
	return g
}

// Load reads a gazetteer file. An empty path returns the embedded one.
func Load(fs afero.Fs, path string) (*Gazetteer, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read regions %s: %w", path, err)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regions %s: %w", path, err)
	}
	return g, nil
}

// Parse builds a gazetteer from YAML
func Parse(data []byte) (*Gazetteer, error) {
	var raw fileLayout
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw.States) == 0 {
		return nil, fmt.Errorf("no states defined")
	}

	g := &Gazetteer{
		lgas:  map[string][]string{},
		areas: map[string][]string{},
	}
	for _, s := range raw.States {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return nil, fmt.Errorf("state without a name")
		}
		sk := key(name)
		if _, dup := g.lgas[sk]; dup {
			return nil, fmt.Errorf("duplicate state %q", name)
		}
		g.states = append(g.states, name)
		lgas := make([]string, 0, len(s.LGAs))
		for _, l := range s.LGAs {
			lgaName := strings.TrimSpace(l.Name)
			if lgaName == "" {
				return nil, fmt.Errorf("local government without a name in %s", name)
			}
			lk := sk + "/" + key(lgaName)
			if _, dup := g.areas[lk]; dup {
				return nil, fmt.Errorf("duplicate local government %q in %s", lgaName, name)
			}
			lgas = append(lgas, lgaName)
			g.areas[lk] = append([]string{}, l.Areas...)
		}
		g.lgas[sk] = lgas
	}
	return g, nil
}

// States lists every state
func (g *Gazetteer) States() []string {
	return append([]string(nil), g.states...)
}

// LGAs lists the local government areas of a state
func (g *Gazetteer) LGAs(state string) []string {
	return append([]string(nil), g.lgas[key(state)]...)
}

// Areas lists the areas of a local government area
func (g *Gazetteer) Areas(state, lga string) []string {
	return append([]string(nil), g.areas[key(state)+"/"+key(lga)]...)
}

func key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
