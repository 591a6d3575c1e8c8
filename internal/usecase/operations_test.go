package usecase

import (
	"context"
	"testing"
	"time"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/node"
	"kube-drover.io/drover/internal/domain"
	apperrors "kube-drover.io/drover/internal/pkg/errors"
	"kube-drover.io/drover/internal/pkg/worker"
	"kube-drover.io/drover/internal/service"
)

func specNode(role domain.NodeRole) domain.NodeSpec {
	return domain.NodeSpec{Role: role}
}

func rowNode(id int, role node.Role) *ent.Node {
	return &ent.Node{ID: id, Role: role}
}

func TestStageNodes(t *testing.T) {
	tests := []struct {
		name         string
		specs        []domain.NodeSpec
		created      []*ent.Node
		wantFirst    []int
		wantFollowup []int
	}{
		{
			name:      "workers only run in one stage",
			specs:     []domain.NodeSpec{specNode(domain.RoleWorker), specNode(domain.RoleWorker)},
			created:   []*ent.Node{rowNode(1, node.RoleWorker), rowNode(2, node.RoleWorker)},
			wantFirst: []int{1, 2},
		},
		{
			name:      "masters only run in one stage",
			specs:     []domain.NodeSpec{specNode(domain.RoleMaster)},
			created:   []*ent.Node{rowNode(1, node.RoleMaster)},
			wantFirst: []int{1},
		},
		{
			name:  "mixed request defers workers",
			specs: []domain.NodeSpec{specNode(domain.RoleMaster), specNode(domain.RoleWorker), specNode(domain.RoleMaster)},
			created: []*ent.Node{
				rowNode(1, node.RoleMaster), rowNode(2, node.RoleWorker), rowNode(3, node.RoleMaster),
			},
			wantFirst:    []int{1, 3},
			wantFollowup: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, followup := stageNodes(service.PlanAddNodes(tt.specs), tt.created)
			if got := nodeIDs(first); !equalInts(got, tt.wantFirst) {
				t.Errorf("first = %v, want %v", got, tt.wantFirst)
			}
			if got := nodeIDs(followup); !equalInts(got, tt.wantFollowup) {
				t.Errorf("followup = %v, want %v", got, tt.wantFollowup)
			}
		})
	}
}

func TestProbe_PooledFanout(t *testing.T) {
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize:   2,
		ProvisionPoolSize: 1,
	})
	if err != nil {
		t.Fatalf("new pools: %v", err)
	}
	defer pools.Shutdown()

	// Port 1 on loopback refuses immediately, so every probe yields an
	// advisory. A pool smaller than the address list forces queueing.
	prober := service.NewProber(1, 200*time.Millisecond)
	ops := NewOperations(nil, nil, nil, prober, pools.General, OperationArgs{})

	specs := []domain.NodeSpec{
		{Hostname: "a", InternalIP: "127.0.0.1"},
		{Hostname: "b", InternalIP: "127.0.0.1"},
		{Hostname: "c", InternalIP: "127.0.0.1"},
		{Hostname: "d", InternalIP: "127.0.0.1"},
		{Hostname: "e", InternalIP: "127.0.0.1"},
	}
	advisories := ops.probeSpecs(context.Background(), specs)
	if len(advisories) != len(specs) {
		t.Fatalf("advisories = %d, want %d", len(advisories), len(specs))
	}
}

func TestProbe_CancelledContextReturns(t *testing.T) {
	prober := service.NewProber(1, 200*time.Millisecond)
	ops := NewOperations(nil, nil, nil, prober, nil, OperationArgs{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		ops.probe(ctx, []string{"127.0.0.1", "127.0.0.1"})
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("probe did not return after context cancellation")
	}
}

func TestCodeForRule(t *testing.T) {
	tests := []struct {
		rule string
		want string
	}{
		{service.RuleBootstrapPrerequisite, apperrors.CodeBootstrapNotReady},
		{service.RuleSafeMasterRemoval, apperrors.CodeUnsafeMasterRemoval},
		{service.RuleRemovalConfirmation, apperrors.CodeConfirmationRequired},
		{service.RuleNodeUniqueness, apperrors.CodeNodeDuplicate},
		{service.RuleInitialMaster, apperrors.CodeInitialMasterRule},
		{"something_else", apperrors.CodeGuardrailRejected},
	}
	for _, tt := range tests {
		if got := codeForRule(tt.rule); got != tt.want {
			t.Errorf("codeForRule(%q) = %q, want %q", tt.rule, got, tt.want)
		}
	}
}

func TestOrEmpty(t *testing.T) {
	if got := orEmpty(nil); got == nil || len(got) != 0 {
		t.Errorf("orEmpty(nil) = %v, want empty slice", got)
	}
	if got := orEmpty([]int{1}); len(got) != 1 {
		t.Errorf("orEmpty([1]) = %v", got)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
