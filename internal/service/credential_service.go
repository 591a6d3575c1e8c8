package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kube-drover.io/drover/ent"
	"kube-drover.io/drover/ent/credential"
	apperrors "kube-drover.io/drover/internal/pkg/errors"
	"kube-drover.io/drover/internal/pkg/logger"
	"kube-drover.io/drover/internal/pkg/secrets"
)

// CredentialService manages SSH credentials. Secret material is encrypted
// at rest and only decrypted for the duration of a single operation.
type CredentialService struct {
	client *ent.Client
	box    *secrets.Box
}

// NewCredentialService creates a new CredentialService.
func NewCredentialService(client *ent.Client, box *secrets.Box) *CredentialService {
	return &CredentialService{client: client, box: box}
}

// CreateCredentialInput carries a credential creation request.
type CreateCredentialInput struct {
	Name        string
	Kind        credential.Kind
	Username    string
	Secret      string
	Description string
}

// CreateCredential stores a new credential with its secret encrypted.
func (s *CredentialService) CreateCredential(ctx context.Context, in CreateCredentialInput) (*ent.Credential, error) {
	if in.Secret == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "credential secret must not be empty")
	}
	sealed, err := s.box.Seal([]byte(in.Secret))
	if err != nil {
		return nil, fmt.Errorf("encrypt credential secret: %w", err)
	}

	create := s.client.Credential.Create().
		SetName(in.Name).
		SetKind(in.Kind).
		SetUsername(in.Username).
		SetEncryptedSecret(sealed)
	if in.Description != "" {
		create.SetDescription(in.Description)
	}

	cred, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, apperrors.Conflict(apperrors.CodeCredentialExists,
				fmt.Sprintf("credential %q already exists", in.Name))
		}
		return nil, fmt.Errorf("create credential: %w", err)
	}

	logger.Info("Credential created",
		zap.Int("credential_id", cred.ID),
		zap.String("name", cred.Name),
		zap.String("kind", string(cred.Kind)),
	)
	return cred, nil
}

// GetCredential fetches a credential by ID. The encrypted secret stays sealed.
func (s *CredentialService) GetCredential(ctx context.Context, credentialID int) (*ent.Credential, error) {
	cred, err := s.client.Credential.Get(ctx, credentialID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeCredentialNotFound, "credential not found")
		}
		return nil, fmt.Errorf("query credential: %w", err)
	}
	return cred, nil
}

// ListCredentials returns all credentials ordered by name.
func (s *CredentialService) ListCredentials(ctx context.Context) ([]*ent.Credential, error) {
	creds, err := s.client.Credential.Query().
		Order(ent.Asc(credential.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query credentials: %w", err)
	}
	return creds, nil
}

// UpdateCredentialInput carries mutable credential fields. A nil Secret
// keeps the existing secret.
type UpdateCredentialInput struct {
	Username    *string
	Secret      *string
	Description *string
}

// UpdateCredential updates credential metadata and optionally rotates the secret.
func (s *CredentialService) UpdateCredential(ctx context.Context, credentialID int, in UpdateCredentialInput) (*ent.Credential, error) {
	update := s.client.Credential.UpdateOneID(credentialID)
	if in.Username != nil {
		update.SetUsername(*in.Username)
	}
	if in.Description != nil {
		update.SetDescription(*in.Description)
	}
	if in.Secret != nil {
		if *in.Secret == "" {
			return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "credential secret must not be empty")
		}
		sealed, err := s.box.Seal([]byte(*in.Secret))
		if err != nil {
			return nil, fmt.Errorf("encrypt credential secret: %w", err)
		}
		update.SetEncryptedSecret(sealed)
	}

	cred, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeCredentialNotFound, "credential not found")
		}
		return nil, fmt.Errorf("update credential: %w", err)
	}
	return cred, nil
}

// DeleteCredential removes a credential. Deletion is refused while any
// cluster or node still references it.
func (s *CredentialService) DeleteCredential(ctx context.Context, credentialID int) error {
	cred, err := s.client.Credential.Query().
		Where(credential.IDEQ(credentialID)).
		WithClusters().
		WithNodes().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeCredentialNotFound, "credential not found")
		}
		return fmt.Errorf("query credential: %w", err)
	}
	if len(cred.Edges.Clusters) > 0 || len(cred.Edges.Nodes) > 0 {
		return apperrors.Conflict(apperrors.CodeValidationFailed,
			"credential is still referenced by clusters or nodes")
	}

	if err := s.client.Credential.DeleteOneID(credentialID).Exec(ctx); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	logger.Info("Credential deleted", zap.Int("credential_id", credentialID), zap.String("name", cred.Name))
	return nil
}

// RevealedCredential is a decrypted credential handed to the playbook
// runner. Callers must not persist it.
type RevealedCredential struct {
	Kind     credential.Kind
	Username string
	Secret   string
}

// Reveal decrypts a credential for one operation.
func (s *CredentialService) Reveal(ctx context.Context, credentialID int) (*RevealedCredential, error) {
	cred, err := s.GetCredential(ctx, credentialID)
	if err != nil {
		return nil, err
	}
	plain, err := s.box.Open(cred.EncryptedSecret)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCredentialDecrypt,
			"failed to decrypt credential secret", 500)
	}
	return &RevealedCredential{
		Kind:     cred.Kind,
		Username: cred.Username,
		Secret:   string(plain),
	}, nil
}
