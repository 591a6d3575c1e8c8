// Package app is the composition root: manual DI, orchestration only.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"kube-drover.io/drover/internal/api/handlers"
	"kube-drover.io/drover/internal/config"
	"kube-drover.io/drover/internal/infrastructure"
	"kube-drover.io/drover/internal/jobs"
	"kube-drover.io/drover/internal/pkg/secrets"
	"kube-drover.io/drover/internal/pkg/worker"
	"kube-drover.io/drover/internal/provider"
	"kube-drover.io/drover/internal/readiness"
	"kube-drover.io/drover/internal/service"
	"kube-drover.io/drover/internal/usecase"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	box, err := secrets.New(cfg.Security.EncryptionKey)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init secrets box: %w", err)
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:   cfg.Worker.GeneralPoolSize,
		ProvisionPoolSize: cfg.Worker.ProvisionPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	// Services.
	clusters := service.NewClusterService(db.EntClient, box)
	credentials := service.NewCredentialService(db.EntClient, box)
	guardrails := service.NewGuardrails(db.EntClient)
	nodeSync := service.NewNodeSync(db.EntClient)
	inspector := provider.NewKubeInspector(cfg.Inspector.RequestTimeout)
	statusCache := service.NewStatusCache(db.EntClient, clusters, inspector, nodeSync, cfg.Inspector.CacheTTL)
	prober := service.NewProber(cfg.Inspector.ProbePort, cfg.Inspector.ProbeTimeout)
	runner := provider.NewAnsibleRunner(cfg.Ansible)
	collector := readiness.NewCollector(inspector)

	var analyzer readiness.Analyzer
	if a := readiness.NewHTTPAnalyzer(cfg.Analyzer); a != nil {
		analyzer = a
	}

	// Usecases. The lock gets its River client after worker registration.
	lock := usecase.NewOperationLock(db.Pool, nil)
	operations := usecase.NewOperations(db.EntClient, lock, guardrails, prober, pools.General, usecase.OperationArgs{
		Provision: func(jobID int) river.JobArgs {
			return jobs.ProvisionArgs{JobID: jobID}
		},
		UpgradeCheck: func(jobID int, targetVersion string) river.JobArgs {
			return jobs.UpgradeCheckArgs{JobID: jobID, TargetVersion: targetVersion}
		},
	})
	canceller := usecase.NewJobCanceller(db.EntClient, runner, lock)

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewProvisionWorker(db.EntClient, runner, credentials, clusters, statusCache, lock))
	river.AddWorker(workers, jobs.NewUpgradeCheckWorker(db.EntClient, clusters, collector, analyzer, lock))

	if err := db.InitRiverClient(workers, cfg.River, map[string]river.QueueConfig{
		jobs.QueueProvisioning: {MaxWorkers: cfg.Worker.ProvisionPoolSize},
	}); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	lock.AttachRiver(db.RiverClient)

	server := handlers.NewServer(handlers.ServerDeps{
		EntClient:   db.EntClient,
		Pool:        db.Pool,
		Clusters:    clusters,
		Credentials: credentials,
		Status:      statusCache,
		Operations:  operations,
		Canceller:   canceller,
	})

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server),
		DB:     db,
		Pools:  pools,
	}, nil
}
