package store

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

//go:embed data/vets.json
var embeddedFS embed.FS

// LoadEmbedded builds a Store from the register snapshot compiled into the
// binary.
func LoadEmbedded() (*Store, error) {
	f, err := embeddedFS.Open("data/vets.json")
	if err != nil {
		return nil, fmt.Errorf("open embedded register: %w", err)
	}
	defer f.Close()
	return LoadJSON(f)
}

// LoadJSONFile builds a Store from a register JSON file on disk.
func LoadJSONFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open register file: %w", err)
	}
	defer f.Close()
	return LoadJSON(f)
}

// LoadJSON decodes the register's published JSON format (natural-language
// column headings) and maps it onto the internal schema.
func LoadJSON(r io.Reader) (*Store, error) {
	var raw []registerRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode register: %w", err)
	}

	records := make([]VetRecord, 0, len(raw))
	for _, rr := range raw {
		records = append(records, rr.toVetRecord())
	}
	return New(records)
}
