package shared

import (
	"fmt"
	"regexp"
	"strings"
)

// ContractKind tags a contract violation so callers and tests can tell
// "caller misused the API" (precondition) apart from "should never
// happen" bugs (invariant).
type ContractKind string

const (
	PreconditionViolation  ContractKind = "precondition"
	PostconditionViolation ContractKind = "postcondition"
	InvariantViolation     ContractKind = "invariant"
)

// ContractError is a fail-fast violation: the first broken contract
// aborts the operation with a single field-scoped message.
type ContractError struct {
	Kind    ContractKind
	Field   string
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s violated [%s]: %s", e.Kind, e.Field, e.Message)
}

func Require(condition bool, field, message string) error {
	if !condition {
		return &ContractError{Kind: PreconditionViolation, Field: field, Message: message}
	}
	return nil
}

func Ensure(condition bool, field, message string) error {
	if !condition {
		return &ContractError{Kind: PostconditionViolation, Field: field, Message: message}
	}
	return nil
}

func Invariant(condition bool, field, message string) error {
	if !condition {
		return &ContractError{Kind: InvariantViolation, Field: field, Message: message}
	}
	return nil
}

func RequireNotEmpty(value, field, message string) error {
	return Require(strings.TrimSpace(value) != "", field, message)
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
