package service

import "errors"

var (
	// ErrEventContextRequired means no event could be resolved for the request
	ErrEventContextRequired = errors.New("event context required")
	// ErrNotFound covers both a missing resource and one the principal may
	// not see. The two cases are deliberately indistinguishable so responses
	// never confirm that a resource exists under someone else's event.
	ErrNotFound = errors.New("not found")
	// ErrNoEventsVisible means the principal has no event to fall back to
	ErrNoEventsVisible = errors.New("no events found")
	// ErrSessionWrite means the session snapshot could not be persisted.
	// The request must fail rather than answer with stale session state.
	ErrSessionWrite = errors.New("session write failed")
	// ErrDispatchFailed means the broker did not acknowledge a message
	ErrDispatchFailed = errors.New("message dispatch failed")
	// ErrNoReachableContact means the guest has no usable contact details
	ErrNoReachableContact = errors.New("guest has no reachable contact")
	// ErrDuplicateDedupKey means a dedup key was reused within the event for
	// a different guest than the one it originally keyed
	ErrDuplicateDedupKey = errors.New("dedup key already used")
)
