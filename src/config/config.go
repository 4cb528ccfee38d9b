package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Config is a variables file: which variables are known to be true and which
// are known to be false. The format is picked from the file extension, see
// LoadConfig.
type Config struct {
	TrueVars  []string `yaml:"true-vars" toml:"true-vars"`
	FalseVars []string `yaml:"false-vars" toml:"false-vars"`

	// where the config was loaded from and will be written to
	Path string `yaml:"-" toml:"-"`
}

type format int

const (
	formatYAML format = iota
	formatTOML
	formatCSV
)

func formatOf(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML
	case ".csv":
		return formatCSV
	default:
		return formatYAML
	}
}

// LoadConfig reads the variables file at path. Files ending in .toml are read
// as TOML, files ending in .csv as `name,true|false` rows and everything else
// as YAML:
//
//	true-vars: [A, C]
//	false-vars: [B]
//
// If the file doesn't exist the returned error satisfies os.IsNotExist.
func LoadConfig(path string) (*Config, error) {
	var (
		config *Config
		err    error
	)
	switch formatOf(path) {
	case formatTOML:
		config, err = loadTOML(path)
	case formatCSV:
		config, err = loadCSV(path)
	default:
		config, err = loadYAML(path)
	}
	if err != nil {
		return nil, err
	}

	config.Path = path
	return config, nil
}

func loadYAML(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		// not wrapped so os.IsNotExist keeps working
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	config := &Config{}
	if err := decoder.Decode(config); errors.Is(err, io.EOF) {
		// empty file, nothing is known
		return config, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return config, nil
}

func loadTOML(path string) (*Config, error) {
	config := &Config{}
	metadata, err := toml.DecodeFile(path, config)
	if errors.Is(err, os.ErrNotExist) {
		return nil, err
	} else if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		keys := lo.Map(undecoded, func(key toml.Key, _ int) string { return key.String() })
		return nil, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return config, nil
}

func loadCSV(path string) (*Config, error) {
	variables, err := ReadVariableMap(path)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	for name, value := range variables {
		config.Set(name, value)
	}
	return config, nil
}

// Write stores the config at c.Path, in the format given by its extension.
func (c *Config) Write() error {
	if c.Path == "" {
		return fmt.Errorf("config has no path to write to")
	}

	if formatOf(c.Path) == formatCSV {
		return WriteVariableMap(c.Path, c.VariableMap())
	}

	file, err := os.OpenFile(c.Path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", c.Path, err)
	}
	defer file.Close()

	// os.OpenFile doesn't change the mode of existing files
	if err := file.Chmod(0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", c.Path, err)
	}

	c.sort()
	if formatOf(c.Path) == formatTOML {
		err = toml.NewEncoder(file).Encode(c)
	} else {
		encoder := yaml.NewEncoder(file)
		err = encoder.Encode(c)
		if err == nil {
			err = encoder.Close()
		}
	}
	if err != nil {
		return fmt.Errorf("failed to write config to %s: %w", c.Path, err)
	}

	return nil
}

// Set records that the variable has the given value, removing it from the
// other list if it was there.
func (c *Config) Set(name string, value bool) {
	if value {
		c.FalseVars = lo.Without(c.FalseVars, name)
		if !lo.Contains(c.TrueVars, name) {
			c.TrueVars = append(c.TrueVars, name)
		}
	} else {
		c.TrueVars = lo.Without(c.TrueVars, name)
		if !lo.Contains(c.FalseVars, name) {
			c.FalseVars = append(c.FalseVars, name)
		}
	}
	c.sort()
}

// VariableMap returns the variables as a map from name to value. If a name is
// listed as both true and false it is reported as false.
func (c *Config) VariableMap() map[string]bool {
	variables := make(map[string]bool, len(c.TrueVars)+len(c.FalseVars))
	for _, name := range c.TrueVars {
		variables[name] = true
	}
	for _, name := range c.FalseVars {
		variables[name] = false
	}
	return variables
}

func (c *Config) sort() {
	slices.Sort(c.TrueVars)
	slices.Sort(c.FalseVars)
}

// WriteVariableMap writes a map from variable name to value to a CSV file,
// one `name,value` row per variable sorted by name.
func WriteVariableMap(path string, variables map[string]bool) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// this isn't an error enough to stop execution. It's just to make it
		// easier for the user to find the file. Best effort.
		absPath = path
	}

	file, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", absPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	names := lo.Keys(variables)
	slices.Sort(names)
	for _, name := range names {
		record := []string{name, strconv.FormatBool(variables[name])}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %v: %w", record, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", absPath, err)
	}
	return nil
}

// ReadVariableMap reads a map from variable name to value from a CSV file.
func ReadVariableMap(path string) (map[string]bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records from file %s: %w", absPath, err)
	}

	variables := make(map[string]bool)
	for _, record := range records {
		if len(record) != 2 {
			return nil, fmt.Errorf("invalid record %v: expected 2 fields, got %d", record, len(record))
		}

		name := strings.TrimSpace(record[0])
		value, err := strconv.ParseBool(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("failed to parse boolean %s: %w", record[1], err)
		}

		variables[name] = value
	}

	return variables, nil
}
