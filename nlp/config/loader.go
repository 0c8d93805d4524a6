package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/oarkflow/bcl"
	"gopkg.in/yaml.v3"
)

// Load reads a config file over the defaults. The decoder is picked from the
// extension: .yaml/.yml, .json, .toml or .bcl.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".json":
		err = json.Unmarshal(data, c)
	case ".toml":
		_, err = toml.Decode(string(data), c)
	case ".bcl":
		_, err = bcl.Unmarshal(data, c)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Generic JSON loader
func LoadJSON[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg T
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnv loads the given .env files into the process environment, skipping
// missing ones, and then applies TEXTRANK_* overrides to c.
func (c *Config) LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("env %s: %w", f, err)
		}
	}
	return c.ApplyEnv()
}

// ApplyEnv overrides fields from TEXTRANK_* environment variables.
func (c *Config) ApplyEnv() error {
	s := &c.Summarizer
	ints := map[string]*int{
		"TEXTRANK_EXTRACT_AMOUNT": &s.ExtractAmount,
		"TEXTRANK_MAX_ITERATIONS": &s.MaxIterations,
		"TEXTRANK_RATE_LIMIT":     &c.Server.RateLimit,
		"TEXTRANK_BODY_LIMIT":     &c.Server.BodyLimit,
	}
	floats := map[string]*float64{
		"TEXTRANK_DAMPING_FACTOR":        &s.DampingFactor,
		"TEXTRANK_CONVERGENCE_THRESHOLD": &s.ConvergenceThreshold,
	}
	strs := map[string]*string{
		"TEXTRANK_SIMILARITY":     &s.Similarity,
		"TEXTRANK_SUMMARY_FORMAT": &s.SummaryFormat,
		"TEXTRANK_UPDATE_MODE":    &s.UpdateMode,
		"TEXTRANK_ADDR":           &c.Server.Address,
		"TEXTRANK_LOG_LEVEL":      &c.Log.Level,
		"TEXTRANK_LOG_FORMAT":     &c.Log.Format,
		"TEXTRANK_LOG_FILE":       &c.Log.File,
	}
	for k, p := range ints {
		if v, ok := os.LookupEnv(k); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			*p = n
		}
	}
	for k, p := range floats {
		if v, ok := os.LookupEnv(k); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			*p = f
		}
	}
	for k, p := range strs {
		if v, ok := os.LookupEnv(k); ok {
			*p = v
		}
	}
	if v, ok := os.LookupEnv("TEXTRANK_FOLD_DIACRITICS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TEXTRANK_FOLD_DIACRITICS: %w", err)
		}
		s.FoldDiacritics = b
	}
	return nil
}
