// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

import "sync"

// Component owns the ordered candidate list of one ICE component (RTP, RTCP, ...).
// No two candidates in a Component share a transport address.
// It is safe for concurrent use.
type Component struct {
	id uint16

	mu         sync.RWMutex
	candidates []Candidate
	byAddress  map[TransportAddress]Candidate
	byID       map[string]Candidate
}

// NewComponent creates an empty Component with the given component ID.
func NewComponent(id uint16) *Component {
	return &Component{
		id:        id,
		byAddress: map[TransportAddress]Candidate{},
		byID:      map[string]Candidate{},
	}
}

// ID returns the component ID, 1 for RTP, 2 for RTCP.
func (c *Component) ID() uint16 {
	return c.id
}

// AddCandidate appends cand unless a candidate with the same address is
// already present or cand belongs to another component. It reports whether
// cand was added.
func (c *Component) AddCandidate(cand Candidate) bool {
	if cand == nil || cand.Component() != c.id {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byAddress[cand.Address()]; ok {
		return false
	}
	c.candidates = append(c.candidates, cand)
	c.byAddress[cand.Address()] = cand
	c.byID[cand.ID()] = cand

	return true
}

// Candidates returns a snapshot of every candidate in insertion order.
func (c *Component) Candidates() []Candidate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Candidate, len(c.candidates))
	copy(out, c.candidates)

	return out
}

// HostCandidates returns a snapshot of the host candidates in insertion order.
func (c *Component) HostCandidates() []Candidate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Candidate
	for _, cand := range c.candidates {
		if cand.Type() == CandidateTypeHost {
			out = append(out, cand)
		}
	}

	return out
}

// Candidate returns the candidate with the given ID, or nil. It resolves
// the BaseID of derived candidates.
func (c *Component) Candidate(id string) Candidate {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.byID[id]
}

// ContainsAddress reports whether a candidate already uses addr.
func (c *Component) ContainsAddress(addr TransportAddress) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.byAddress[addr]

	return ok
}
