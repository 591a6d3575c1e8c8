package errors

import "net/http"

// Error code constants.
// Errors carry code + params; messages are English and stable for logs.

// Cluster error codes.
const (
	CodeClusterNotFound = "CLUSTER_NOT_FOUND"
	CodeClusterExists   = "CLUSTER_ALREADY_EXISTS"
	CodeClusterBusy     = "CLUSTER_BUSY"
)

// Guardrail error codes.
const (
	CodeGuardrailRejected    = "GUARDRAIL_REJECTED"
	CodeBootstrapNotReady    = "BOOTSTRAP_MASTER_NOT_READY"
	CodeUnsafeMasterRemoval  = "UNSAFE_MASTER_REMOVAL"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeNodeDuplicate        = "NODE_IDENTITY_DUPLICATE"
)

// Node error codes.
const (
	CodeNodeNotFound      = "NODE_NOT_FOUND"
	CodeNodeStateInvalid  = "NODE_STATE_INVALID"
	CodeNodeSetEmpty      = "NODE_SET_EMPTY"
	CodeInitialMasterRule = "INITIAL_MASTER_RULE_VIOLATION"
)

// Job error codes.
const (
	CodeJobNotFound     = "JOB_NOT_FOUND"
	CodeJobNotCancelled = "JOB_NOT_CANCELLABLE"
	CodeJobExecFailed   = "JOB_EXECUTION_FAILED"
)

// Credential error codes.
const (
	CodeCredentialNotFound = "CREDENTIAL_NOT_FOUND"
	CodeCredentialExists   = "CREDENTIAL_ALREADY_EXISTS"
	CodeCredentialDecrypt  = "CREDENTIAL_DECRYPT_FAILED"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeNameInvalid         = "NAME_INVALID"
)

// Convenience constructors using predefined codes.

// ErrClusterBusy reports that another operation holds the cluster lock.
// Params identify the holder so callers can inspect the owning job.
func ErrClusterBusy(heldBy string, jobID int) *AppError {
	return (&AppError{
		Code:       CodeClusterBusy,
		Message:    "another operation is already running on this cluster",
		HTTPStatus: http.StatusConflict,
	}).WithParams(map[string]interface{}{
		"held_by": heldBy,
		"job_id":  jobID,
	})
}

// ErrGuardrailRejected reports a failed pre-operation safety check.
// The rule name and reason identify the violated invariant.
func ErrGuardrailRejected(code, rule, reason string) *AppError {
	return (&AppError{
		Code:       code,
		Message:    reason,
		HTTPStatus: http.StatusUnprocessableEntity,
	}).WithParams(map[string]interface{}{
		"rule": rule,
	})
}

// ErrClusterNotFound creates a cluster not found error.
func ErrClusterNotFound(clusterID int) *AppError {
	return (&AppError{
		Code:       CodeClusterNotFound,
		Message:    "cluster not found",
		HTTPStatus: http.StatusNotFound,
	}).WithParams(map[string]interface{}{
		"cluster_id": clusterID,
	})
}

// ErrJobNotFound creates a job not found error.
func ErrJobNotFound(jobID int) *AppError {
	return (&AppError{
		Code:       CodeJobNotFound,
		Message:    "job not found",
		HTTPStatus: http.StatusNotFound,
	}).WithParams(map[string]interface{}{
		"job_id": jobID,
	})
}
