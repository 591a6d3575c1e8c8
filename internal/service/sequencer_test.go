package service

import (
	"testing"

	"kube-drover.io/drover/internal/domain"
)

func TestPlanAddNodes(t *testing.T) {
	master := domain.NodeSpec{Hostname: "cp-1", InternalIP: "10.0.0.2", Role: domain.RoleMaster}
	workerA := domain.NodeSpec{Hostname: "w-1", InternalIP: "10.0.1.1", Role: domain.RoleWorker}
	workerB := domain.NodeSpec{Hostname: "w-2", InternalIP: "10.0.1.2", Role: domain.RoleWorker}

	tests := []struct {
		name       string
		specs      []domain.NodeSpec
		wantStages int
		wantFirst  []string
		wantSecond []string
	}{
		{
			name:       "mixed request splits masters first",
			specs:      []domain.NodeSpec{workerA, master, workerB},
			wantStages: 2,
			wantFirst:  []string{"cp-1"},
			wantSecond: []string{"w-1", "w-2"},
		},
		{
			name:       "workers only is a single stage",
			specs:      []domain.NodeSpec{workerA, workerB},
			wantStages: 1,
			wantFirst:  []string{"w-1", "w-2"},
		},
		{
			name:       "masters only is a single stage",
			specs:      []domain.NodeSpec{master},
			wantStages: 1,
			wantFirst:  []string{"cp-1"},
		},
		{
			name:       "empty request yields empty plan",
			specs:      nil,
			wantStages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanAddNodes(tt.specs)
			if len(plan.Stages) != tt.wantStages {
				t.Fatalf("len(Stages) = %d, want %d", len(plan.Stages), tt.wantStages)
			}
			checkHostnames(t, "first stage", plan.First(), tt.wantFirst)
			checkHostnames(t, "second stage", plan.Followup(), tt.wantSecond)
		})
	}
}

func TestPlanAddNodes_InitialMasterCountsAsMaster(t *testing.T) {
	plan := PlanAddNodes([]domain.NodeSpec{
		{Hostname: "w-1", InternalIP: "10.0.1.1", Role: domain.RoleWorker},
		{Hostname: "cp-0", InternalIP: "10.0.0.1", Role: domain.RoleInitialMaster},
	})
	if !plan.TwoStage() {
		t.Fatal("expected a two-stage plan")
	}
	if plan.First()[0].Hostname != "cp-0" {
		t.Errorf("first stage = %q, want cp-0", plan.First()[0].Hostname)
	}
}

func checkHostnames(t *testing.T, label string, nodes []domain.NodeSpec, want []string) {
	t.Helper()
	if len(nodes) != len(want) {
		t.Fatalf("%s: len = %d, want %d", label, len(nodes), len(want))
	}
	for i, w := range want {
		if nodes[i].Hostname != w {
			t.Errorf("%s[%d] = %q, want %q", label, i, nodes[i].Hostname, w)
		}
	}
}
