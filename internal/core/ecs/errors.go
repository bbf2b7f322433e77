package ecs

import "fmt"

// ==============================================
// ManagerError - precondition-violation diagnostics
// ==============================================

// ManagerError describes a precondition violation raised by the ECS
// substrate: an invalid handle, a duplicate AddComponent, or a missing
// GetComponent. Per spec §7 these are fatal — the caller is expected to
// have checked Validate/Has before calling — so ManagerError is always
// delivered via panic, never returned.
type ManagerError struct {
	Code      string
	Message   string
	Operation string
}

func (e *ManagerError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("[%s] %s (op: %s)", e.Code, e.Message, e.Operation)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Error codes for the preconditions spec §7 treats as fatal.
const (
	ErrInvalidHandle         = "INVALID_HANDLE"          // null, stale, or cross-Manager handle
	ErrComponentExists       = "COMPONENT_EXISTS"        // AddComponent on a type the entity already owns
	ErrComponentNotFound     = "COMPONENT_NOT_FOUND"     // GetComponent for a type the entity does not own
	ErrTooManyComponentTypes = "TOO_MANY_COMPONENT_TYPES" // AddComponent would exceed ManagerConfig.MaxComponentTypes
)

func panicInvalidHandle(op string) {
	panic(&ManagerError{
		Code:      ErrInvalidHandle,
		Message:   "entity handle failed validation",
		Operation: op,
	})
}

func panicComponentExists(op string) {
	panic(&ManagerError{
		Code:      ErrComponentExists,
		Message:   "entity already owns a component of this type",
		Operation: op,
	})
}

func panicComponentNotFound(op string) {
	panic(&ManagerError{
		Code:      ErrComponentNotFound,
		Message:   "entity does not own a component of this type",
		Operation: op,
	})
}

func panicTooManyComponentTypes(op string) {
	panic(&ManagerError{
		Code:      ErrTooManyComponentTypes,
		Message:   "registering this component type would exceed ManagerConfig.MaxComponentTypes",
		Operation: op,
	})
}
