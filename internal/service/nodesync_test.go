package service

import (
	"testing"

	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/internal/domain"
)

func TestReduceNodeStatus(t *testing.T) {
	ready := domain.NodeObservation{Ready: true}
	notReady := domain.NodeObservation{Ready: false}

	tests := []struct {
		name        string
		current     node.Status
		obs         domain.NodeObservation
		want        node.Status
		wantChanged bool
	}{
		{"pending ready", node.StatusPENDING, ready, node.StatusACTIVE, true},
		{"installing ready", node.StatusINSTALLING, ready, node.StatusACTIVE, true},
		{"failed recovers when ready", node.StatusFAILED, ready, node.StatusACTIVE, true},
		{"active stays active", node.StatusACTIVE, ready, node.StatusACTIVE, false},
		{"pending not ready", node.StatusPENDING, notReady, node.StatusFAILED, true},
		{"installing not ready", node.StatusINSTALLING, notReady, node.StatusFAILED, true},
		{"active not ready", node.StatusACTIVE, notReady, node.StatusFAILED, true},
		{"failed stays failed", node.StatusFAILED, notReady, node.StatusFAILED, false},
		{"removed never advances", node.StatusREMOVED, ready, node.StatusREMOVED, false},
		{"removed never regresses", node.StatusREMOVED, notReady, node.StatusREMOVED, false},
		{"draining untouched", node.StatusDRAINING, ready, node.StatusDRAINING, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := ReduceNodeStatus(tt.current, tt.obs)
			if got != tt.want || changed != tt.wantChanged {
				t.Errorf("ReduceNodeStatus(%s) = (%s, %v), want (%s, %v)",
					tt.current, got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}

func TestLookupObservation(t *testing.T) {
	snapshot := domain.ClusterSnapshot{
		Nodes: map[string]domain.NodeObservation{
			"10.0.0.1":    {Ready: true},
			"203.0.113.5": {Ready: true},
			"w-by-name":   {Ready: false},
		},
	}

	internal := mkNode(1, "cp-0", "10.0.0.1", node.RoleInitialMaster, node.StatusPENDING)
	if obs, ok := lookupObservation(snapshot, internal); !ok || !obs.Ready {
		t.Error("expected match on internal IP")
	}

	external := mkNode(2, "cp-1", "10.0.0.2", node.RoleMaster, node.StatusPENDING)
	external.ExternalIP = "203.0.113.5"
	external.UseExternalIP = true
	if obs, ok := lookupObservation(snapshot, external); !ok || !obs.Ready {
		t.Error("expected match on external IP")
	}

	byName := mkNode(3, "w-by-name", "10.0.9.9", node.RoleWorker, node.StatusACTIVE)
	if obs, ok := lookupObservation(snapshot, byName); !ok || obs.Ready {
		t.Error("expected fallback match on hostname")
	}

	missing := mkNode(4, "ghost", "10.0.8.8", node.RoleWorker, node.StatusACTIVE)
	if _, ok := lookupObservation(snapshot, missing); ok {
		t.Error("unmatched node should report no observation")
	}
}
