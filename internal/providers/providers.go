// Package providers resolves provider labels to mailing recipients.
//
// The master is an ordered list, not a map. Every matching tier scans it
// in declaration order and the first hit wins, so a label that could match
// several entries always resolves the same way. Reordering the master is a
// behavior change.
package providers

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider is one registered mailing recipient.
type Provider struct {
	Key        string   `yaml:"key"`
	FullName   string   `yaml:"fullName"`
	PostalCode string   `yaml:"postalCode"`
	Address    string   `yaml:"address"`
	Department string   `yaml:"department,omitempty"` // empty when the entry has no named department
	Aliases    []string `yaml:"aliases,omitempty"`
}

// Resolver finds a mailing recipient for a provider label. Implementations
// return nil for "not found"; callers treat nil as "address unknown", never
// as a failure.
type Resolver interface {
	Resolve(label string) *Provider
}

// Master is an ordered provider table.
type Master struct {
	entries []Provider
}

// NewMaster builds a master from explicit entries, preserving their order.
func NewMaster(entries []Provider) *Master {
	return &Master{entries: entries}
}

// Default returns the built-in master covering the usual disclosure
// recipients.
func Default() *Master {
	return NewMaster(defaultEntries())
}

// masterFile is the on-disk injection format. A list keeps YAML document
// order, which the resolve tie-break depends on.
type masterFile struct {
	Providers []Provider `yaml:"providers"`
}

// LoadFile reads a provider master from a YAML file.
func LoadFile(path string) (*Master, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("providers: read %s: %w", path, err)
	}
	var f masterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("providers: parse %s: %w", path, err)
	}
	if len(f.Providers) == 0 {
		return nil, fmt.Errorf("providers: %s contains no providers", path)
	}
	return NewMaster(f.Providers), nil
}

// All returns the master entries in declaration order.
func (m *Master) All() []Provider {
	return m.entries
}

// Resolve finds the recipient for a label. Matching runs in three tiers,
// each scanning the table in order with first hit winning:
//
//  1. exact key match
//  2. alias containment — the label contains an alias or an alias contains
//     the label, case-sensitive
//  3. substring containment between the label and the key or full legal name
//
// Returns nil when every tier misses.
func (m *Master) Resolve(label string) *Provider {
	name := strings.TrimSpace(label)
	if name == "" {
		return nil
	}

	for i := range m.entries {
		if m.entries[i].Key == name {
			return &m.entries[i]
		}
	}

	for i := range m.entries {
		for _, alias := range m.entries[i].Aliases {
			if strings.Contains(name, alias) || strings.Contains(alias, name) {
				return &m.entries[i]
			}
		}
	}

	for i := range m.entries {
		p := &m.entries[i]
		if strings.Contains(name, p.Key) || strings.Contains(p.Key, name) ||
			strings.Contains(p.FullName, name) || strings.Contains(name, p.FullName) {
			return p
		}
	}

	return nil
}
