// Package deployment stores one record per network describing where the
// program was deployed, as <dir>/<network>.json.
package deployment

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"presalecontract/internal/network"
	"presalecontract/program"
)

var ErrNotFound = errors.New("deployment record not found")

// Record describes a deployment of the program on one network.
type Record struct {
	Network    string    `json:"network"`
	ProgramID  string    `json:"programId"`
	DeployedAt time.Time `json:"deployedAt"`
	Wallet     string    `json:"wallet"`
	RPCURL     string    `json:"rpcUrl"`
}

// NewRecord returns a record of ProgramID deployed to a catalogued network.
func NewRecord(catalog *network.Catalog, name, wallet string, now time.Time) (Record, error) {
	rpcURL, err := catalog.Lookup(name)
	if err != nil {
		return Record{}, err
	}
	return Record{
		Network:    name,
		ProgramID:  program.ProgramID.String(),
		DeployedAt: now.UTC(),
		Wallet:     wallet,
		RPCURL:     rpcURL,
	}, nil
}

// Validate checks the record names a known network and well-formed keys.
func (r Record) Validate(catalog *network.Catalog) error {
	if _, err := catalog.Lookup(r.Network); err != nil {
		return err
	}
	if _, err := program.ParseID(r.ProgramID); err != nil {
		return fmt.Errorf("program id: %w", err)
	}
	if r.Wallet != "" {
		if _, err := program.ParseID(r.Wallet); err != nil {
			return fmt.Errorf("wallet: %w", err)
		}
	}
	return nil
}

// Path returns the file a network's record lives in.
func Path(dir, name string) string {
	return filepath.Join(dir, name+".json")
}

// Save writes r and returns the path written.
func Save(dir string, r Record) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create deployments dir: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	path := Path(dir, r.Network)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("failed to write deployment record: %w", err)
	}
	return path, nil
}

// Load reads the record of a network.
func Load(dir, name string) (Record, error) {
	data, err := os.ReadFile(Path(dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return Record{}, fmt.Errorf("%w for network %s", ErrNotFound, name)
	}
	if err != nil {
		return Record{}, err
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("failed to parse deployment record %s: %w", Path(dir, name), err)
	}
	return r, nil
}

// List returns the networks that have a record in dir. A missing dir has none.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}
