package service

import "kube-drover.io/drover/internal/domain"

// PlanAddNodes partitions a heterogeneous add-nodes request into ordered
// homogeneous stages: all master-role additions first, worker-role additions
// second. Workers must only register once the expanded control plane has
// settled, so the second stage runs under its own chained job after the
// first reaches SUCCESS.
//
// This is a classification, not a validation: it never rejects.
func PlanAddNodes(specs []domain.NodeSpec) domain.SequencePlan {
	var masters, workers []domain.NodeSpec
	for _, spec := range specs {
		if spec.Role.IsMaster() {
			masters = append(masters, spec)
		} else {
			workers = append(workers, spec)
		}
	}

	var plan domain.SequencePlan
	if len(masters) > 0 {
		plan.Stages = append(plan.Stages, domain.SequenceStage{Nodes: masters})
	}
	if len(workers) > 0 {
		plan.Stages = append(plan.Stages, domain.SequenceStage{Nodes: workers})
	}
	return plan
}
