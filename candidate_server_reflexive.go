// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

import "fmt"

// CandidateServerReflexive is how a base candidate appears from outside a NAT.
// Mapping harvesters produce it without talking to a STUN server.
type CandidateServerReflexive struct {
	candidateBase

	harvester string
}

// NewCandidateServerReflexive creates a new server reflexive candidate at
// address derived from base. harvester names the producer and is only used
// for diagnostics and foundation computation.
func NewCandidateServerReflexive(
	address TransportAddress,
	base Candidate,
	harvester string,
) (*CandidateServerReflexive, error) {
	if address.IsZero() {
		return nil, fmt.Errorf("%w: server reflexive candidate without address", ErrInvalidTransportAddress)
	}
	if base == nil {
		return nil, fmt.Errorf("%w: server reflexive candidate without base", ErrInvalidTransportAddress)
	}

	baseAddr := base.Address()

	return &CandidateServerReflexive{
		candidateBase: candidateBase{
			id:            globalCandidateIDGenerator.Generate(),
			address:       address,
			candidateType: CandidateTypeServerReflexive,
			component:     base.Component(),
			baseID:        base.ID(),
			relatedAddress: &CandidateRelatedAddress{
				Address: baseAddr.Host(),
				Port:    baseAddr.Port(),
			},
			foundationKey: harvester,
		},
		harvester: harvester,
	}, nil
}

// Harvester returns the name of the harvester that produced the candidate.
func (c *CandidateServerReflexive) Harvester() string {
	return c.harvester
}
