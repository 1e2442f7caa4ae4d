// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// EntityKey identifies one representation of a document.
type EntityKey struct {
	Id             string
	IsActiveEntity bool
}

// Draft returns the key of the draft representation with the same Id.
func (k EntityKey) Draft() EntityKey {
	return EntityKey{Id: k.Id, IsActiveEntity: false}
}

// Active returns the key of the active representation with the same Id.
func (k EntityKey) Active() EntityKey {
	return EntityKey{Id: k.Id, IsActiveEntity: true}
}

// DraftHandle addresses a remote entity created or resolved by the client.
// Path is the resource path relative to the service root.
type DraftHandle struct {
	Path string
	Key  EntityKey
}

// IsZero reports whether h addresses nothing.
func (h DraftHandle) IsZero() bool {
	return h.Path == ""
}

// LifecycleKind enumerates the lifecycle states of a document held by the
// client.
type LifecycleKind int

const (
	// NotPersisted means no remote representation exists.
	NotPersisted LifecycleKind = iota
	// LocalDraftPending means this session created a remote draft that has not
	// been activated yet. The draft must be reused on the next save.
	LocalDraftPending
	// Active means an active representation exists and is authoritative.
	Active
)

// String implements fmt.Stringer.
func (k LifecycleKind) String() string {
	switch k {
	case NotPersisted:
		return "NotPersisted"
	case LocalDraftPending:
		return "LocalDraftPending"
	case Active:
		return "Active"
	default:
		return fmt.Sprintf("LifecycleKind(%d)", int(k))
	}
}

// LifecycleState is the tagged lifecycle value passed into and returned from a
// save. Draft is only set for LocalDraftPending.
type LifecycleState struct {
	Kind  LifecycleKind
	Draft DraftHandle
}

// StateNotPersisted returns the NotPersisted state.
func StateNotPersisted() LifecycleState {
	return LifecycleState{Kind: NotPersisted}
}

// StateLocalDraftPending returns the LocalDraftPending state retaining draft.
func StateLocalDraftPending(draft DraftHandle) LifecycleState {
	return LifecycleState{Kind: LocalDraftPending, Draft: draft}
}

// StateActive returns the Active state.
func StateActive() LifecycleState {
	return LifecycleState{Kind: Active}
}

// String implements fmt.Stringer.
func (s LifecycleState) String() string {
	if s.Kind == LocalDraftPending {
		return fmt.Sprintf("%s(%s)", s.Kind, s.Draft.Path)
	}
	return s.Kind.String()
}
