package contract

import "errors"

var (
	ErrModelInvoke      = errors.New("model invoke failed")
	ErrSchemaViolation  = errors.New("model response violates schema")
	ErrValidation       = errors.New("validation failed")
	ErrGuardrailTripped = errors.New("input guardrail tripped")
	ErrConfiguration    = errors.New("configuration error")
	ErrHistoryStore     = errors.New("history store failure")
)
