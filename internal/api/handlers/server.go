// Package handlers implements the HTTP API for Drover.
//
// Handlers bind and validate requests, delegate to services and usecases,
// and hand errors to the ErrorHandler middleware via c.Error(). Route
// registration lives in internal/app.
package handlers

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/internal/service"
	"kube-drover.io/drover/internal/usecase"
)

// Server holds all API handler dependencies.
type Server struct {
	client      *ent.Client
	pool        *pgxpool.Pool
	clusters    *service.ClusterService
	credentials *service.CredentialService
	status      *service.StatusCache
	operations  *usecase.Operations
	canceller   *usecase.JobCanceller
}

// ServerDeps holds all dependencies for creating a Server.
// Manual DI, no Wire/Dig.
type ServerDeps struct {
	EntClient   *ent.Client
	Pool        *pgxpool.Pool
	Clusters    *service.ClusterService
	Credentials *service.CredentialService
	Status      *service.StatusCache
	Operations  *usecase.Operations
	Canceller   *usecase.JobCanceller
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:      deps.EntClient,
		pool:        deps.Pool,
		clusters:    deps.Clusters,
		credentials: deps.Credentials,
		status:      deps.Status,
		operations:  deps.Operations,
		canceller:   deps.Canceller,
	}
}
