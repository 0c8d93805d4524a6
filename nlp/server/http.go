package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/oarkflow/xid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/oarkflow/textrank/nlp/config"
	"github.com/oarkflow/textrank/nlp/export"
	"github.com/oarkflow/textrank/nlp/segmenter"
	"github.com/oarkflow/textrank/nlp/summarization"
	"github.com/oarkflow/textrank/nlp/textrank"
)

const shutdownTimeout = 5 * time.Second

type SummarizeRequest struct {
	Text                 string              `json:"text"`
	Sentences            []textrank.Sentence `json:"sentences"`
	ExtractAmount        *int                `json:"extract_amount"`
	DampingFactor        *float64            `json:"damping_factor"`
	Similarity           *string             `json:"similarity"`
	SummaryFormat        *string             `json:"summary_format"`
	ConvergenceThreshold *float64            `json:"convergence_threshold"`
	MaxIterations        *int                `json:"max_iterations"`
	UpdateMode           *string             `json:"update_mode"`
	FoldDiacritics       *bool               `json:"fold_diacritics"`
}

// apply overlays the fields present in the request on cfg.
func (r *SummarizeRequest) apply(cfg config.Summarizer) config.Summarizer {
	if r.ExtractAmount != nil {
		cfg.ExtractAmount = *r.ExtractAmount
	}
	if r.DampingFactor != nil {
		cfg.DampingFactor = *r.DampingFactor
	}
	if r.Similarity != nil {
		cfg.Similarity = *r.Similarity
	}
	if r.SummaryFormat != nil {
		cfg.SummaryFormat = *r.SummaryFormat
	}
	if r.ConvergenceThreshold != nil {
		cfg.ConvergenceThreshold = *r.ConvergenceThreshold
	}
	if r.MaxIterations != nil {
		cfg.MaxIterations = *r.MaxIterations
	}
	if r.UpdateMode != nil {
		cfg.UpdateMode = *r.UpdateMode
	}
	if r.FoldDiacritics != nil {
		cfg.FoldDiacritics = *r.FoldDiacritics
	}
	return cfg
}

type SegmentRequest struct {
	Text           string `json:"text"`
	FoldDiacritics bool   `json:"fold_diacritics"`
}

type handler struct {
	summarizer *summarization.Summarizer
	log        *slog.Logger
}

// New builds the HTTP API. gatherer backs /metrics and may be nil.
func New(cfg config.Server, s *summarization.Summarizer, log *slog.Logger, gatherer prometheus.Gatherer) *fiber.App {
	if log == nil {
		log = slog.Default()
	}
	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		ReadTimeout:           time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(cfg.WriteTimeout) * time.Second,
		IdleTimeout:           time.Duration(cfg.IdleTimeout) * time.Second,
		BodyLimit:             cfg.BodyLimit,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return xid.New().String()
		},
	}))
	app.Use(logger.New())
	if cfg.Compress {
		app.Use(compress.New())
	}
	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{Max: cfg.RateLimit, Expiration: time.Minute}))
	}

	h := &handler{summarizer: s, log: log}
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	app.Get("/config", func(c *fiber.Ctx) error {
		return c.JSON(s.Config())
	})
	app.Post("/summarize", h.summarize)
	app.Post("/segment", h.segment)
	return app
}

func (h *handler) summarize(c *fiber.Ctx) error {
	var req SummarizeRequest
	if err := decode(c.Body(), summarizeRequestSchema, &req); err != nil {
		return err
	}
	out, err := responseFormat(c)
	if err != nil {
		return err
	}
	ctx := c.UserContext()
	cfg := req.apply(h.summarizer.Config())

	var sum *textrank.Summary
	if len(req.Sentences) > 0 {
		sum, err = h.summarizer.SummarizeSentences(ctx, req.Sentences, cfg)
	} else {
		sum, err = h.summarizer.SummarizeWith(ctx, req.Text, cfg)
	}
	if err != nil {
		if errors.Is(err, textrank.ErrInvalidInput) || errors.Is(err, textrank.ErrInvalidArgument) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		h.log.ErrorContext(ctx, "summarize failed",
			slog.Any("request_id", c.Locals("requestid")),
			slog.String("err", err.Error()))
		return err
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, out, export.FromSummary(sum)); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, export.ContentType(out))
	return c.Send(buf.Bytes())
}

func (h *handler) segment(c *fiber.Ctx) error {
	var req SegmentRequest
	if err := decode(c.Body(), segmentRequestSchema, &req); err != nil {
		return err
	}
	sentences := segmenter.Segment(req.Text, req.FoldDiacritics)
	if sentences == nil {
		sentences = []textrank.Sentence{}
	}
	return c.JSON(fiber.Map{"sentences": sentences})
}

// decode validates body against schema before unmarshalling it into v.
func decode(body []byte, schema *jsonschema.Schema, v any) error {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON: "+err.Error())
	}
	if err := schema.Validate(doc); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// responseFormat honours ?format= first and the Accept header second.
func responseFormat(c *fiber.Ctx) (export.Format, error) {
	if q := c.Query("format"); q != "" {
		f, err := export.ParseFormat(q)
		if err != nil {
			return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return f, nil
	}
	switch accepted := c.Accepts(fiber.MIMEApplicationJSON, "application/yaml", "application/msgpack", fiber.MIMETextPlain); {
	case accepted == "application/yaml":
		return export.YAML, nil
	case accepted == "application/msgpack":
		return export.MsgPack, nil
	case strings.HasPrefix(accepted, fiber.MIMETextPlain):
		return export.Text, nil
	}
	return export.JSON, nil
}

// Run serves app on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, app *fiber.App, addr string) error {
	errC := make(chan error, 1)
	go func() {
		errC <- app.Listen(addr)
	}()
	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(sctx)
	}
}
