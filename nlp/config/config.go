package config

import (
	"github.com/oarkflow/textrank/nlp/textrank"
)

type Summarizer struct {
	ExtractAmount        int     `yaml:"extract_amount" json:"extract_amount" toml:"extract_amount" bcl:"extract_amount"`
	DampingFactor        float64 `yaml:"damping_factor" json:"damping_factor" toml:"damping_factor" bcl:"damping_factor"`
	Similarity           string  `yaml:"similarity" json:"similarity" toml:"similarity" bcl:"similarity"`
	SummaryFormat        string  `yaml:"summary_format" json:"summary_format" toml:"summary_format" bcl:"summary_format"`
	ConvergenceThreshold float64 `yaml:"convergence_threshold" json:"convergence_threshold" toml:"convergence_threshold" bcl:"convergence_threshold"`
	MaxIterations        int     `yaml:"max_iterations" json:"max_iterations" toml:"max_iterations" bcl:"max_iterations"`
	UpdateMode           string  `yaml:"update_mode" json:"update_mode" toml:"update_mode" bcl:"update_mode"`
	FoldDiacritics       bool    `yaml:"fold_diacritics" json:"fold_diacritics" toml:"fold_diacritics" bcl:"fold_diacritics"`
}

type Server struct {
	Name         string `yaml:"name" json:"name" toml:"name" bcl:"name"`
	Address      string `yaml:"address" json:"address" toml:"address" bcl:"address"`
	ReadTimeout  int    `yaml:"read_timeout" json:"read_timeout" toml:"read_timeout" bcl:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout" json:"write_timeout" toml:"write_timeout" bcl:"write_timeout"`
	IdleTimeout  int    `yaml:"idle_timeout" json:"idle_timeout" toml:"idle_timeout" bcl:"idle_timeout"`
	BodyLimit    int    `yaml:"body_limit" json:"body_limit" toml:"body_limit" bcl:"body_limit"`
	// RateLimit is the number of requests per client per minute; 0 disables it.
	RateLimit int  `yaml:"rate_limit" json:"rate_limit" toml:"rate_limit" bcl:"rate_limit"`
	Compress  bool `yaml:"compress" json:"compress" toml:"compress" bcl:"compress"`
}

type Log struct {
	Level      string `yaml:"level" json:"level" toml:"level" bcl:"level"`
	Format     string `yaml:"format" json:"format" toml:"format" bcl:"format"`
	File       string `yaml:"file" json:"file" toml:"file" bcl:"file"`
	MaxSize    int    `yaml:"max_size" json:"max_size" toml:"max_size" bcl:"max_size"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups" toml:"max_backups" bcl:"max_backups"`
	MaxAge     int    `yaml:"max_age" json:"max_age" toml:"max_age" bcl:"max_age"`
	Compress   bool   `yaml:"compress" json:"compress" toml:"compress" bcl:"compress"`
}

type Config struct {
	Summarizer Summarizer `yaml:"summarizer" json:"summarizer" toml:"summarizer" bcl:"summarizer"`
	Server     Server     `yaml:"server" json:"server" toml:"server" bcl:"server"`
	Log        Log        `yaml:"log" json:"log" toml:"log" bcl:"log"`
}

func Default() *Config {
	return &Config{
		Summarizer: Summarizer{
			ExtractAmount:        textrank.DefaultExtractAmount,
			DampingFactor:        textrank.DefaultDampingFactor,
			Similarity:           "overlap",
			SummaryFormat:        string(textrank.Joined),
			ConvergenceThreshold: textrank.DefaultConvergenceThreshold,
			MaxIterations:        textrank.DefaultMaxIterations,
			UpdateMode:           string(textrank.GaussSeidel),
		},
		Server: Server{
			Name:         "textrank",
			Address:      ":8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  60,
			BodyLimit:    4 << 20,
		},
		Log: Log{
			Level:      "info",
			Format:     "text",
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		},
	}
}
