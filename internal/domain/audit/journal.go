// Package audit defines the change-journal contract shared by all bounded
// contexts. Every mutating operation records who did what to which entity;
// the journal is best-effort and never fails the business operation.
package audit

import (
	"context"
)

// Action is the type of journaled operation.
type Action string

const (
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
	ActionStatusChange Action = "status_change"
)

// Entry is a single journal record.
type Entry struct {
	// EntityType names the bounded context ("individual", "legal_entity", ...)
	EntityType string

	// EntityUID is the aggregate identifier in canonical string form
	EntityUID string

	// Action is what happened
	Action Action

	// ActorUID is the acting user/person, empty when anonymous
	ActorUID string

	// Payload is the serializable change description (marshaled by the journal)
	Payload any
}

// Journal records entries. Implementations decide storage and compression.
type Journal interface {
	Record(ctx context.Context, entry Entry)
}

// Nop is a Journal that discards entries. Used in tests and when the
// journal is disabled.
type Nop struct{}

// Record implements Journal.
func (Nop) Record(ctx context.Context, entry Entry) {}
