package domain

// SequenceStage is one homogeneous slice of an add-nodes request.
type SequenceStage struct {
	Nodes []NodeSpec
}

// SequencePlan is the ordered execution plan for an add-nodes request.
// Stage order is significant: masters always precede workers.
type SequencePlan struct {
	Stages []SequenceStage
}

// TwoStage reports whether the plan chains a second job.
func (p SequencePlan) TwoStage() bool {
	return len(p.Stages) == 2
}

// First returns the node set executed under the initial job.
func (p SequencePlan) First() []NodeSpec {
	if len(p.Stages) == 0 {
		return nil
	}
	return p.Stages[0].Nodes
}

// Followup returns the node set deferred to the chained job, or nil.
func (p SequencePlan) Followup() []NodeSpec {
	if len(p.Stages) < 2 {
		return nil
	}
	return p.Stages[1].Nodes
}
