package readiness

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kube-drover.io/drover/internal/config"
	"kube-drover.io/drover/internal/domain"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/provider"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestCollector_Collect(t *testing.T) {
	inspector := &provider.MockInspector{
		Snap: &domain.ClusterSnapshot{
			Nodes: map[string]domain.NodeObservation{
				"cp-0": {Ready: true, Version: "v1.30.2+rke2r1"},
				"w-0":  {Ready: false, Version: "v1.30.2+rke2r1"},
			},
			CollectedAt: time.Now(),
		},
		Etcd: true,
	}

	bundle, err := NewCollector(inspector).Collect(context.Background(), 7, []byte("kubeconfig"), "v1.31.4+rke2r1")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if bundle.ClusterID != 7 {
		t.Errorf("ClusterID = %d, want 7", bundle.ClusterID)
	}
	if bundle.TargetVersion != "v1.31.4+rke2r1" {
		t.Errorf("TargetVersion = %q", bundle.TargetVersion)
	}
	if len(bundle.Nodes) != 2 {
		t.Errorf("Nodes = %d entries, want 2", len(bundle.Nodes))
	}
	if bundle.EtcdHealthy == nil || !*bundle.EtcdHealthy {
		t.Errorf("EtcdHealthy = %v, want true", bundle.EtcdHealthy)
	}
}

func TestCollector_EtcdProbeFailureIsNotFatal(t *testing.T) {
	inspector := &provider.MockInspector{
		Snap:    &domain.ClusterSnapshot{Nodes: map[string]domain.NodeObservation{}},
		EtcdErr: errors.New("connection refused"),
	}

	bundle, err := NewCollector(inspector).Collect(context.Background(), 1, nil, "v1.31.0+rke2r1")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if bundle.EtcdHealthy != nil {
		t.Errorf("EtcdHealthy = %v, want nil when the probe fails", *bundle.EtcdHealthy)
	}
}

func TestCollector_SnapshotFailure(t *testing.T) {
	inspector := &provider.MockInspector{SnapErr: errors.New("unauthorized")}
	if _, err := NewCollector(inspector).Collect(context.Background(), 1, nil, "v1.31.0+rke2r1"); err == nil {
		t.Fatal("Collect() expected error when the snapshot fails")
	}
}

func TestHTTPAnalyzer_Analyze(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Bundle == nil || req.Bundle.TargetVersion != "v1.31.4+rke2r1" {
			t.Errorf("unexpected bundle: %+v", req.Bundle)
		}
		_ = json.NewEncoder(w).Encode(domain.Verdict{
			Verdict:  "caution",
			Risks:    []string{"one worker is not ready"},
			Blockers: nil,
		})
	}))
	defer srv.Close()

	analyzer := NewHTTPAnalyzer(config.AnalyzerConfig{Endpoint: srv.URL, Model: "readiness-v2", Timeout: 5 * time.Second})
	verdict, err := analyzer.Analyze(context.Background(), &domain.ReadinessBundle{TargetVersion: "v1.31.4+rke2r1"})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if verdict.Verdict != "caution" {
		t.Errorf("Verdict = %q, want caution", verdict.Verdict)
	}
}

func TestHTTPAnalyzer_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	analyzer := NewHTTPAnalyzer(config.AnalyzerConfig{Endpoint: srv.URL, Timeout: 5 * time.Second})
	if _, err := analyzer.Analyze(context.Background(), &domain.ReadinessBundle{}); err == nil {
		t.Fatal("Analyze() expected error on non-200 response")
	}
}

func TestNewHTTPAnalyzer_NoEndpoint(t *testing.T) {
	if a := NewHTTPAnalyzer(config.AnalyzerConfig{}); a != nil {
		t.Errorf("NewHTTPAnalyzer() = %v, want nil without an endpoint", a)
	}
}
