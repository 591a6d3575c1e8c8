package domain

import "time"

// NodeObservation is what the live inspector reports about one node.
type NodeObservation struct {
	Ready   bool   `json:"ready"`
	Version string `json:"version,omitempty"`
}

// ClusterSnapshot is a point-in-time inspection result keyed by node address.
// Missing entries mean "no information"; reconciliation must not touch the
// corresponding node rows.
type ClusterSnapshot struct {
	Nodes       map[string]NodeObservation `json:"nodes"`
	CollectedAt time.Time                  `json:"collected_at"`
}

// Verdict is the readiness analyzer's judgement on an upgrade candidate.
type Verdict struct {
	Verdict    string   `json:"verdict"` // "ready", "not_ready", "caution"
	Blockers   []string `json:"blockers,omitempty"`
	Risks      []string `json:"risks,omitempty"`
	ActionPlan []string `json:"action_plan,omitempty"`
}

// ReadinessBundle is the diagnostics payload submitted to the analyzer.
type ReadinessBundle struct {
	ClusterID     int                        `json:"cluster_id"`
	TargetVersion string                     `json:"target_version"`
	Nodes         map[string]NodeObservation `json:"nodes"`
	EtcdHealthy   *bool                      `json:"etcd_healthy,omitempty"`
	CollectedAt   time.Time                  `json:"collected_at"`
}
