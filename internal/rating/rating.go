// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package rating models the optimistic-update lifecycle of a single saved
// prompt's star rating. The UI shows the newly selected value immediately
// while the network request is in flight; on failure the previous value is
// restored. The machine transitions only through its defined events, and at
// most one mutation is ever in flight per record: overlapping selections are
// rejected rather than queued.
package rating

// State identifies the machine's position in the rating lifecycle.
type State int

const (
	// Idle means no rating request is in flight.
	Idle State = iota
	// Pending means a rating request is in flight; the new value is shown
	// optimistically and the previous value is retained for rollback.
	Pending
)

// Unrated is the displayed value when a prompt has no rating yet.
const Unrated = 0

// Machine is the tagged-state value driving a single record's rating flow.
// The zero value is an Idle, unrated machine.
type Machine struct {
	state    State
	current  int // last confirmed rating, Unrated if none
	pending  int // value in flight, valid only in Pending
	previous int // rollback target, valid only in Pending
}

// NewMachine returns an Idle machine with the given confirmed rating
// (Unrated for a prompt that has never been rated).
func NewMachine(current int) *Machine {
	return &Machine{state: Idle, current: current}
}

// State returns the machine's current state.
func (m *Machine) State() State { return m.state }

// Displayed returns the rating the UI should show right now: the in-flight
// value while Pending, the confirmed value otherwise.
func (m *Machine) Displayed() int {
	if m.state == Pending {
		return m.pending
	}
	return m.current
}

// Select handles the user picking a star value. It reports whether a network
// request should be issued. No request is issued when the selection equals
// the currently displayed rating (a no-op click) or while another request is
// still pending.
func (m *Machine) Select(value int) bool {
	if m.state == Pending {
		return false
	}
	if value == m.current {
		return false
	}

	m.previous = m.current
	m.pending = value
	m.state = Pending
	return true
}

// Succeed confirms the in-flight value. A Succeed outside Pending is ignored.
func (m *Machine) Succeed() {
	if m.state != Pending {
		return
	}
	m.current = m.pending
	m.state = Idle
}

// Fail rolls the displayed value back to the pre-request rating. A Fail
// outside Pending is ignored.
func (m *Machine) Fail() {
	if m.state != Pending {
		return
	}
	m.current = m.previous
	m.state = Idle
}
