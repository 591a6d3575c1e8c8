package main

import (
	"testing"

	"kube-drover.io/drover/internal/domain"
	"kube-drover.io/drover/internal/service"
)

func TestDemoNodeSpecs_SatisfyCreationRules(t *testing.T) {
	t.Parallel()

	specs := demoNodeSpecs()
	if len(specs) != 3 {
		t.Fatalf("demoNodeSpecs count = %d, want 3", len(specs))
	}

	var initialMasters int
	for _, spec := range specs {
		if spec.Hostname == "" || spec.InternalIP == "" {
			t.Fatalf("spec %+v missing hostname or address", spec)
		}
		if spec.Role == domain.RoleInitialMaster {
			initialMasters++
		}
	}
	if initialMasters != 1 {
		t.Fatalf("initial masters = %d, want exactly 1", initialMasters)
	}

	if res := service.CheckNodeUniqueness(nil, specs); !res.Valid {
		t.Fatalf("seeded specs violate uniqueness: %s", res.Reason)
	}
}

func TestDemoNodeSpecs_TwoStagePlan(t *testing.T) {
	t.Parallel()

	// Mixed roles must split into a master stage and a worker stage.
	plan := service.PlanAddNodes(demoNodeSpecs())
	if !plan.TwoStage() {
		t.Fatalf("plan stages = %d, want 2", len(plan.Stages))
	}
}
