package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "ouma-web/internal/errors"

	"go.uber.org/zap"
)

// ===========================================================================
// Translator
// Machine translation of native (zh) catalog text into English.
// ===========================================================================

// Translator translates text into the target language
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// Config HTTP translator settings
type Config struct {
	Endpoint string
	Source   string
	Timeout  time.Duration
}

// HTTPTranslator calls a Google-style "translate_a/single" endpoint
type HTTPTranslator struct {
	endpoint   string
	source     string
	httpClient *http.Client
}

// NewHTTPTranslator creates an HTTPTranslator
func NewHTTPTranslator(cfg Config) *HTTPTranslator {
	source := cfg.Source
	if source == "" {
		source = "auto"
	}
	return &HTTPTranslator{
		endpoint:   cfg.Endpoint,
		source:     source,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Translate sends text to the endpoint and joins the translated segments
func (t *HTTPTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", t.source)
	q.Set("tl", target)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w: %w", apperrors.ErrExternal, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate: status %d: %w", resp.StatusCode, apperrors.ErrExternal)
	}

	return parseSegments(body)
}

// parseSegments decodes [[["translated","source",...],...],...]
func parseSegments(body []byte) (string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty response: %w", apperrors.ErrExternal)
	}

	var segments [][]any
	if err := json.Unmarshal(raw[0], &segments); err != nil {
		return "", fmt.Errorf("parse segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			sb.WriteString(s)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no translated text: %w", apperrors.ErrExternal)
	}
	return sb.String(), nil
}

// NopTranslator returns its input unchanged
type NopTranslator struct{}

func (NopTranslator) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

// Safe wraps a Translator so failures degrade to the original text
type Safe struct {
	inner  Translator
	target string
	logger *zap.Logger
}

// NewSafe creates a Safe translator for the given target language
func NewSafe(inner Translator, target string, logger *zap.Logger) *Safe {
	return &Safe{inner: inner, target: target, logger: logger}
}

// ToTarget returns the translation of text, or text itself on any error.
// Empty input gives empty output without calling the service.
func (s *Safe) ToTarget(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	out, err := s.inner.Translate(ctx, text, s.target)
	if err != nil {
		s.logger.Warn("translation failed, keeping original text", zap.Error(err))
		return text
	}
	if out == "" {
		return text
	}
	return out
}
