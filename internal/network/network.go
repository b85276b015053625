// Package network is the catalogue of RPC endpoints the operator tooling
// records deployments against.
package network

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"presalecontract/program"
)

// Default is used when no network is named.
const Default = "devnet"

var ErrUnknownNetwork = errors.New("unknown network")

var defaults = map[string]string{
	"localnet": "http://127.0.0.1:8899",
	"devnet":   "https://api.devnet.solana.com",
	"testnet":  "https://api.testnet.solana.com",
	"mainnet":  "https://api.mainnet-beta.solana.com",
}

// Catalog maps network names to RPC URLs.
type Catalog struct {
	urls map[string]string
}

type overlay struct {
	Networks map[string]string `yaml:"networks"`
}

// NewCatalog returns the built-in networks.
func NewCatalog() *Catalog {
	urls := make(map[string]string, len(defaults))
	for name, u := range defaults {
		urls[name] = u
	}
	return &Catalog{urls: urls}
}

// LoadCatalog returns the built-in networks overlaid with the entries of the
// YAML file at path. An empty path yields the built-ins.
//
//	networks:
//	  staging: https://rpc.staging.example
func LoadCatalog(path string) (*Catalog, error) {
	c := NewCatalog()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read networks file: %w", err)
	}
	var o overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse networks file %s: %w", path, err)
	}
	for name, raw := range o.Networks {
		if err := c.Set(name, raw); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Set adds or replaces a network.
func (c *Catalog) Set(name, rpcURL string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("network name is empty")
	}
	u, err := url.Parse(rpcURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("network %s: invalid rpc url %q", name, rpcURL)
	}
	c.urls[name] = rpcURL
	return nil
}

// Lookup returns the RPC URL of a network.
func (c *Catalog) Lookup(name string) (string, error) {
	u, ok := c.urls[name]
	if !ok {
		return "", fmt.Errorf("%w: %s (available: %s)", ErrUnknownNetwork, name, strings.Join(c.Names(), ", "))
	}
	return u, nil
}

// Names returns the network names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.urls))
	for name := range c.urls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExplorerURL links to the explorer page of id on a network.
func ExplorerURL(id program.ID, network string) string {
	return fmt.Sprintf("https://explorer.solana.com/address/%s?cluster=%s", id, url.QueryEscape(network))
}
