// Package main provides development data seeding for Drover.
//
// Seeding is idempotent: existing rows are left alone, so the command is
// safe to run repeatedly against the same database.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/cluster"
	"kube-drover.io/drover/ent/credential"
	"kube-drover.io/drover/internal/config"
	"kube-drover.io/drover/internal/domain"
	"kube-drover.io/drover/internal/infrastructure"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/pkg/secrets"
	"kube-drover.io/drover/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	box, err := secrets.New(cfg.Security.EncryptionKey)
	if err != nil {
		return fmt.Errorf("init secrets box: %w", err)
	}

	logger.Info("Starting data seeding...")

	// Database and River migrations are expected to be executed before seeding.
	credID, err := seedDemoCredential(ctx, db.EntClient, box)
	if err != nil {
		return fmt.Errorf("seed credential: %w", err)
	}
	if err := seedDemoCluster(ctx, db.EntClient, box, credID); err != nil {
		return fmt.Errorf("seed cluster: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// seedDemoCredential creates a placeholder SSH password credential for local
// experiments. The secret is deliberately unusable against real hosts.
func seedDemoCredential(ctx context.Context, client *ent.Client, box *secrets.Box) (int, error) {
	existing, err := client.Credential.Query().
		Where(credential.NameEQ("demo-ssh")).
		Only(ctx)
	if err == nil {
		logger.Info("Demo credential already present", zap.Int("credential_id", existing.ID))
		return existing.ID, nil
	}
	if !ent.IsNotFound(err) {
		return 0, err
	}

	creds := service.NewCredentialService(client, box)
	created, err := creds.CreateCredential(ctx, service.CreateCredentialInput{
		Name:        "demo-ssh",
		Kind:        credential.KindSSHPassword,
		Username:    "root",
		Secret:      "change-me",
		Description: "Placeholder credential seeded for development",
	})
	if err != nil {
		return 0, err
	}
	return created.ID, nil
}

// seedDemoCluster creates a three node demo cluster in the staged state.
func seedDemoCluster(ctx context.Context, client *ent.Client, box *secrets.Box, credID int) error {
	exists, err := client.Cluster.Query().
		Where(cluster.NameEQ("demo")).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		logger.Info("Demo cluster already present")
		return nil
	}

	clusters := service.NewClusterService(client, box)
	created, err := clusters.CreateCluster(ctx, service.CreateClusterInput{
		Name:              "demo",
		Description:       "Seeded development cluster",
		Kind:              cluster.KindNew,
		KubernetesVersion: "v1.31.4+rke2r1",
		CredentialID:      &credID,
		Nodes:             demoNodeSpecs(),
	})
	if err != nil {
		return err
	}

	logger.Info("Demo cluster seeded",
		zap.Int("cluster_id", created.ID),
		zap.Int("nodes", len(demoNodeSpecs())),
	)
	return nil
}

// demoNodeSpecs returns the node layout of the seeded cluster: one initial
// master, one additional master and one worker.
func demoNodeSpecs() []domain.NodeSpec {
	return []domain.NodeSpec{
		{Hostname: "demo-m1", InternalIP: "192.0.2.11", Role: domain.RoleInitialMaster},
		{Hostname: "demo-m2", InternalIP: "192.0.2.12", Role: domain.RoleMaster},
		{Hostname: "demo-w1", InternalIP: "192.0.2.21", Role: domain.RoleWorker},
	}
}
