package service

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"

	"kube-drover.io/drover/internal/domain"
	"kube-drover.io/drover/internal/pkg/logger"
)

// Prober performs best-effort connectivity probes before operations.
//
// Probe results are advisory only: they are logged and returned on a channel
// separate from the guardrail verdict, and never gate an operation. A host
// that refuses the probe may still be reachable by the playbook runner.
type Prober struct {
	port    int
	timeout time.Duration
}

// NewProber creates a Prober for the given supervisor port.
func NewProber(port int, timeout time.Duration) *Prober {
	return &Prober{port: port, timeout: timeout}
}

// ProbeSupervisor dials the node's supervisor port. Returns nil when the
// port answered, or an Advisory describing the failure.
func (p *Prober) ProbeSupervisor(ctx context.Context, address string) *domain.Advisory {
	dialer := net.Dialer{Timeout: p.timeout}
	target := net.JoinHostPort(address, fmt.Sprintf("%d", p.port))

	conn, err := dialer.DialContext(ctx, "tcp", target)
	if err != nil {
		logger.Warn("Supervisor port probe failed",
			zap.String("target", target),
			zap.Error(err),
		)
		return &domain.Advisory{
			Rule:    RuleBootstrapPrerequisite,
			Message: fmt.Sprintf("supervisor port %s did not answer: %v", target, err),
		}
	}
	conn.Close()
	return nil
}
