package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kube-drover.io/drover/ent/credential"
	apperrors "kube-drover.io/drover/internal/pkg/errors"
	"kube-drover.io/drover/internal/service"
)

type createCredentialRequest struct {
	Name        string `json:"name" binding:"required"`
	Kind        string `json:"kind" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Secret      string `json:"secret" binding:"required"`
	Description string `json:"description"`
}

// CreateCredential handles POST /credentials.
func (s *Server) CreateCredential(c *gin.Context) {
	var req createCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"invalid credential payload", http.StatusBadRequest))
		return
	}
	kind := credential.Kind(req.Kind)
	if err := credential.KindValidator(kind); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"kind must be one of: ssh_key, ssh_password"))
		return
	}

	cred, err := s.credentials.CreateCredential(c.Request.Context(), service.CreateCredentialInput{
		Name:        req.Name,
		Kind:        kind,
		Username:    req.Username,
		Secret:      req.Secret,
		Description: req.Description,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, credentialToAPI(cred))
}

// ListCredentials handles GET /credentials.
func (s *Server) ListCredentials(c *gin.Context) {
	creds, err := s.credentials.ListCredentials(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	items := make([]APICredential, 0, len(creds))
	for _, cred := range creds {
		items = append(items, credentialToAPI(cred))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// GetCredential handles GET /credentials/:id.
func (s *Server) GetCredential(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cred, err := s.credentials.GetCredential(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, credentialToAPI(cred))
}

type updateCredentialRequest struct {
	Username    *string `json:"username"`
	Secret      *string `json:"secret"`
	Description *string `json:"description"`
}

// UpdateCredential handles PATCH /credentials/:id.
func (s *Server) UpdateCredential(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.CodeValidationFailed,
			"invalid credential payload", http.StatusBadRequest))
		return
	}

	cred, err := s.credentials.UpdateCredential(c.Request.Context(), id, service.UpdateCredentialInput{
		Username:    req.Username,
		Secret:      req.Secret,
		Description: req.Description,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, credentialToAPI(cred))
}

// DeleteCredential handles DELETE /credentials/:id.
func (s *Server) DeleteCredential(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.credentials.DeleteCredential(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
