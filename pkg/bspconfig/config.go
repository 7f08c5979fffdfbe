package bspconfig

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/mmapgen/pkg/types"
)

// Source is a read-only option lookup.
type Source interface {
	// Has reports whether the option is present.
	Has(option string) bool
	// Get returns the option value as written, without the assignment.
	Get(option string) (string, bool)
	// Clean returns the value with surrounding whitespace and quotes removed.
	Clean(option string) (string, bool)
}

// Config is a Source loaded from a bspconfig file. It is never modified after
// loading and is safe for concurrent readers.
type Config struct {
	path   string
	values map[string]string
}

var _ Source = (*Config)(nil)

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, types.Wrap(types.ErrKindIO, err, "bspconfig: open %s", path)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

// Parse reads configuration lines from r. A leading byte-order mark is
// honoured, so files saved as UTF-16 by editors still parse.
func Parse(r io.Reader) (*Config, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(transform.Nop))
	values, err := godotenv.Parse(decoded)
	if err != nil {
		return nil, types.Wrap(types.ErrKindConfig, err, "bspconfig: parse")
	}
	return &Config{values: values}, nil
}

// FromMap builds a Config from option/value pairs. The map is copied.
func FromMap(values map[string]string) *Config {
	cp := make(map[string]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return &Config{values: cp}
}

// Path returns the file the configuration was loaded from, if any.
func (c *Config) Path() string { return c.path }

// Len returns the number of options present.
func (c *Config) Len() int { return len(c.values) }

// Options returns the present option names in sorted order.
func (c *Config) Options() []string {
	names := make([]string, 0, len(c.values))
	for k := range c.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the option is present.
func (c *Config) Has(option string) bool {
	_, ok := c.values[option]
	return ok
}

// Get returns the option value.
func (c *Config) Get(option string) (string, bool) {
	v, ok := c.values[option]
	return v, ok
}

// Clean returns the option value stripped of whitespace and double quotes.
func (c *Config) Clean(option string) (string, bool) {
	v, ok := c.values[option]
	if !ok {
		return "", false
	}
	return strings.Trim(v, `" `), true
}

// String implements fmt.Stringer.
func (c *Config) String() string {
	if c.path == "" {
		return fmt.Sprintf("bspconfig(%d options)", len(c.values))
	}
	return fmt.Sprintf("bspconfig(%s, %d options)", c.path, len(c.values))
}
