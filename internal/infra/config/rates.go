package config

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/YoshitsuguKoike/propbrief/internal/domain/disclosure"
	"github.com/YoshitsuguKoike/propbrief/internal/domain/model"
)

// rateFile is the YAML layout of a rate table:
//
//	rates:
//	  sale:     {owner: 10, agent: 50}
//	  shortlet: {owner: 7,  agent: 7}
type rateFile struct {
	Rates map[string]disclosure.Rates `yaml:"rates"`
}

// LoadRates reads a rate table. An empty path returns the built-in rates.
// Transaction types missing from the file fall back to the built-in entry.
func LoadRates(fs afero.Fs, path string) (disclosure.RateTable, error) {
	table := disclosure.DefaultRates()
	if path == "" {
		return table, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rates %s: %w", path, err)
	}
	var raw rateFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse rates %s: %w", path, err)
	}
	for name, r := range raw.Rates {
		table[model.TransactionType(name)] = r
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rates %s: %w", path, err)
	}
	return table, nil
}
