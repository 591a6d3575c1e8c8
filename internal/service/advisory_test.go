package service

import (
	"context"
	"net"
	"testing"
	"time"

	"kube-drover.io/drover/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "json")
}

func TestProbeSupervisor_Reachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	prober := NewProber(port, time.Second)

	if adv := prober.ProbeSupervisor(context.Background(), "127.0.0.1"); adv != nil {
		t.Errorf("ProbeSupervisor() = %v, want nil for reachable port", adv)
	}
}

func TestProbeSupervisor_Unreachable(t *testing.T) {
	// Grab a port and close it again so nothing listens there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	prober := NewProber(port, 200*time.Millisecond)

	adv := prober.ProbeSupervisor(context.Background(), "127.0.0.1")
	if adv == nil {
		t.Fatal("ProbeSupervisor() = nil, want advisory for closed port")
	}
	if adv.Rule != RuleBootstrapPrerequisite {
		t.Errorf("Rule = %q, want %q", adv.Rule, RuleBootstrapPrerequisite)
	}
}
