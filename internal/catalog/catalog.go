package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Exercise is one entry of the fixed exercise library. Entries are immutable
// once loaded; the host supplies the full slice at startup.
type Exercise struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Equipment      string    `json:"equipment"`
	PrimaryMuscles []string  `json:"primaryMuscles"`
	Variants       []Variant `json:"variants,omitempty"`
}

// Variant is the same movement performed with alternate equipment.
type Variant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Equipment string `json:"equipment"`
}

// LoadFile reads an exercise library from a JSON file. Entries without an id
// get a generated one so downstream records can always reference an exercise.
func LoadFile(path string) ([]Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes an exercise library from JSON bytes.
func Parse(data []byte) ([]Exercise, error) {
	var entries []Exercise
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(entries))
	for i := range entries {
		if strings.TrimSpace(entries[i].Name) == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		key := strings.ToLower(entries[i].Name)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate catalog name %q", entries[i].Name)
		}
		seen[key] = struct{}{}

		if entries[i].ID == "" {
			entries[i].ID = uuid.New().String()
		}
		for j := range entries[i].Variants {
			if entries[i].Variants[j].ID == "" {
				entries[i].Variants[j].ID = uuid.New().String()
			}
		}
	}

	return entries, nil
}
