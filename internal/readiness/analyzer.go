package readiness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"kube-drover.io/drover/internal/config"
	"kube-drover.io/drover/internal/domain"
)

// Analyzer asks an external model endpoint for an upgrade-readiness verdict.
type Analyzer interface {
	Analyze(ctx context.Context, bundle *domain.ReadinessBundle) (*domain.Verdict, error)
}

// HTTPAnalyzer implements Analyzer against a JSON-over-HTTP endpoint.
type HTTPAnalyzer struct {
	endpoint string
	model    string
	client   *http.Client
}

// NewHTTPAnalyzer creates an HTTPAnalyzer from config. Returns nil when no
// endpoint is configured; callers treat a nil analyzer as "no verdict".
func NewHTTPAnalyzer(cfg config.AnalyzerConfig) *HTTPAnalyzer {
	if cfg.Endpoint == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPAnalyzer{
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		client:   &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	Model  string                  `json:"model,omitempty"`
	Bundle *domain.ReadinessBundle `json:"bundle"`
}

// Analyze submits the bundle and decodes the verdict.
func (a *HTTPAnalyzer) Analyze(ctx context.Context, bundle *domain.ReadinessBundle) (*domain.Verdict, error) {
	body, err := json.Marshal(analyzeRequest{Model: a.model, Bundle: bundle})
	if err != nil {
		return nil, fmt.Errorf("encode readiness bundle: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build analyzer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call analyzer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("analyzer returned %d: %s", resp.StatusCode, payload)
	}

	var verdict domain.Verdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return nil, fmt.Errorf("decode analyzer verdict: %w", err)
	}
	if verdict.Verdict == "" {
		return nil, fmt.Errorf("analyzer returned an empty verdict")
	}
	return &verdict, nil
}
