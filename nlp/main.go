package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/oarkflow/textrank/nlp/config"
	"github.com/oarkflow/textrank/nlp/export"
	"github.com/oarkflow/textrank/nlp/logging"
	"github.com/oarkflow/textrank/nlp/pipeline"
	"github.com/oarkflow/textrank/nlp/streaming"
	"github.com/oarkflow/textrank/nlp/summarization"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "textrank:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("textrank", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "config file (.yaml, .json, .toml or .bcl)")
	envFile := fs.String("env", ".env", "dotenv file with TEXTRANK_* overrides")
	in := fs.String("in", "-", "input file, - for stdin")
	n := fs.Int("n", 0, "number of sentences to extract")
	d := fs.Float64("d", 0, "damping factor in (0,1)")
	format := fs.String("format", "", "summary format: joined-string or sentence-list")
	sim := fs.String("similarity", "", "similarity: overlap or cosine")
	mode := fs.String("mode", "", "update mode: gauss-seidel or jacobi")
	output := fs.String("output", "text", "output encoding: text, json, yaml or msgpack")
	batch := fs.Bool("batch", false, "input holds several documents separated by -sep lines")
	sep := fs.String("sep", streaming.DefaultSeparator, "document separator line for -batch")
	workers := fs.Int("workers", 0, "concurrent documents in -batch mode (0 = GOMAXPROCS)")
	level := fs.String("log-level", "", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if err := cfg.LoadEnv(*envFile); err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.Summarizer.ExtractAmount = *n
		case "d":
			cfg.Summarizer.DampingFactor = *d
		case "format":
			cfg.Summarizer.SummaryFormat = *format
		case "similarity":
			cfg.Summarizer.Similarity = *sim
		case "mode":
			cfg.Summarizer.UpdateMode = *mode
		case "log-level":
			cfg.Log.Level = *level
		}
	})
	out, err := export.ParseFormat(*output)
	if err != nil {
		return err
	}

	log, err := logging.NewWithWriter(stderr, cfg.Log)
	if err != nil {
		return err
	}
	s, err := summarization.New(cfg.Summarizer, log, nil)
	if err != nil {
		return err
	}

	r := stdin
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	log.Debug("read input", slog.String("size", humanize.Bytes(uint64(len(data)))))

	if !*batch {
		sum, err := s.Summarize(ctx, string(data))
		if err != nil {
			return err
		}
		return export.Encode(stdout, out, export.FromSummary(sum))
	}

	var docs []string
	if err := streaming.Documents(bytes.NewReader(data), *sep, func(doc string) error {
		docs = append(docs, doc)
		return nil
	}); err != nil {
		return err
	}
	outcomes, err := pipeline.Batch(ctx, s, docs, *workers)
	if err != nil {
		return err
	}
	failed := 0
	for i, o := range outcomes {
		if o.Err != nil {
			failed++
			log.Error("document failed", slog.Int("document", o.Index), slog.String("err", o.Err.Error()))
			continue
		}
		if i > 0 && out == export.Text {
			fmt.Fprintln(stdout, *sep)
		}
		if err := export.Encode(stdout, out, export.FromSummary(o.Summary)); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(docs))
	}
	return nil
}
