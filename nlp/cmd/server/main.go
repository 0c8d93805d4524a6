package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/oarkflow/textrank/nlp/config"
	"github.com/oarkflow/textrank/nlp/logging"
	"github.com/oarkflow/textrank/nlp/server"
	"github.com/oarkflow/textrank/nlp/summarization"
)

func main() {
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	cfgPath := flag.String("config", "", "config file (.yaml, .json, .toml or .bcl)")
	envFile := flag.String("env", ".env", "dotenv file with TEXTRANK_* overrides")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			slog.Error("load config", slog.String("err", err.Error()))
			os.Exit(1)
		}
	}
	if err := cfg.LoadEnv(*envFile); err != nil {
		slog.Error("load env", slog.String("err", err.Error()))
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Address = *addr
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		slog.Error("setup logging", slog.String("err", err.Error()))
		os.Exit(1)
	}
	slog.SetDefault(log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	s, err := summarization.New(cfg.Summarizer, log, reg)
	if err != nil {
		log.Error("invalid summarizer config", slog.String("err", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *cfgPath != "" {
		go func() {
			err := config.Watch(ctx, *cfgPath, func(c *config.Config, err error) {
				if err != nil {
					log.Error("reload config", slog.String("err", err.Error()))
					return
				}
				if err := c.ApplyEnv(); err != nil {
					log.Error("reload config", slog.String("err", err.Error()))
					return
				}
				if err := s.SetConfig(c.Summarizer); err != nil {
					log.Error("rejected reloaded config", slog.String("err", err.Error()))
					return
				}
				log.Info("summarizer config reloaded", slog.String("file", *cfgPath))
			})
			if err != nil {
				log.Error("config watcher stopped", slog.String("err", err.Error()))
			}
		}()
	}

	app := server.New(cfg.Server, s, log, reg)
	log.Info("starting server", slog.String("addr", cfg.Server.Address))
	if err := server.Run(ctx, app, cfg.Server.Address); err != nil {
		log.Error("server stopped", slog.String("err", err.Error()))
		os.Exit(1)
	}
	log.Info("server stopped")
}
