package archwize

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/archwize/archwize/internal/logging"
	"github.com/archwize/archwize/internal/metrics"
	"github.com/archwize/archwize/internal/upstream"
	"github.com/archwize/archwize/pkg/mermaid"
	"github.com/archwize/archwize/pkg/prompt"
)

// Version is the release version of the service.
const Version = "0.1.0"

// Cache stores rendered diagram source keyed by prompt and orientation.
// Implementations live in the serving layer; the pipeline itself is stateless.
type Cache interface {
	Get(ctx context.Context, prompt string, orientation mermaid.Orientation) (string, bool, error)
	Set(ctx context.Context, prompt string, orientation mermaid.Orientation, code string) error
}

// Service is the high-level entry point: it turns a free-form prompt into
// valid Mermaid flowchart source, calling the upstream model and repairing or
// replacing whatever comes back.
type Service struct {
	generator     upstream.Generator
	cache         Cache
	logger        *slog.Logger
	topicOverride bool
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithGenerator injects the upstream text generator. Without one the service
// always answers from topic templates.
func WithGenerator(g upstream.Generator) Option {
	return func(s *Service) {
		s.generator = g
	}
}

// WithHuggingFace wires the default Hugging Face client. An empty URL keeps
// the standard endpoint; the token may be empty for anonymous use.
func WithHuggingFace(token, url string, hc *http.Client) Option {
	opts := []upstream.Option{}
	if url != "" {
		opts = append(opts, upstream.WithURL(url))
	}
	if hc != nil {
		opts = append(opts, upstream.WithHTTPClient(hc))
	}
	return WithGenerator(upstream.New(token, opts...))
}

// WithCache enables the response cache.
func WithCache(c Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithTopicOverride toggles the wholesale template replacement for checkout
// prompts. On by default.
func WithTopicOverride(enabled bool) Option {
	return func(s *Service) {
		s.topicOverride = enabled
	}
}

// New creates a Service.
func New(opts ...Option) *Service {
	s := &Service{
		logger:        logging.NewNop(),
		topicOverride: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces flowchart source for the prompt. It is total: upstream
// failures and unrepairable output both degrade to a topic template, so every
// prompt yields a complete, renderable diagram.
func (s *Service) Generate(ctx context.Context, userPrompt string, orientation mermaid.Orientation) string {
	if s.cache != nil {
		code, ok, err := s.cache.Get(ctx, userPrompt, orientation)
		if err != nil {
			s.logger.Warn("cache lookup failed", "error", err)
		} else if ok {
			metrics.Generations.WithLabelValues(metrics.OutcomeCached).Inc()
			return code
		}
	}

	code := s.generate(ctx, userPrompt, orientation)

	// Checkout-style model output proved unreliable even after repair, so a
	// checkout prompt always gets the canned diagram, whatever came back.
	if s.topicOverride && mermaid.Classify(userPrompt) == mermaid.TopicCheckout {
		code = mermaid.Template(mermaid.TopicCheckout, orientation)
		metrics.Generations.WithLabelValues(metrics.OutcomeOverride).Inc()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userPrompt, orientation, code); err != nil {
			s.logger.Warn("cache store failed", "error", err)
		}
	}
	return code
}

func (s *Service) generate(ctx context.Context, userPrompt string, orientation mermaid.Orientation) string {
	if s.generator == nil {
		metrics.Generations.WithLabelValues(metrics.OutcomeFallback).Inc()
		return mermaid.Fallback(userPrompt, orientation)
	}

	raw, err := s.generator.GenerateText(ctx, prompt.Build(userPrompt, orientation))
	if err != nil {
		s.logger.Warn("upstream generation failed", "error", err)
		metrics.UpstreamErrors.Inc()
		metrics.Generations.WithLabelValues(metrics.OutcomeFallback).Inc()
		return mermaid.Fallback(userPrompt, orientation)
	}

	code, err := mermaid.Repair(raw, orientation)
	if err != nil {
		s.logger.Info("model output held no usable diagram", "error", err)
		metrics.Generations.WithLabelValues(metrics.OutcomeFallback).Inc()
		return mermaid.Fallback(userPrompt, orientation)
	}
	metrics.Generations.WithLabelValues(metrics.OutcomeRepaired).Inc()
	return code
}
