// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

import "fmt"

// CandidateHost is a candidate of type host
type CandidateHost struct {
	candidateBase
}

// NewCandidateHost creates a new host candidate bound to address for the given component.
func NewCandidateHost(address TransportAddress, component uint16) (*CandidateHost, error) {
	if address.IsZero() {
		return nil, fmt.Errorf("%w: host candidate without address", ErrInvalidTransportAddress)
	}

	id := globalCandidateIDGenerator.Generate()

	return &CandidateHost{
		candidateBase: candidateBase{
			id:            id,
			address:       address,
			candidateType: CandidateTypeHost,
			component:     component,
			baseID:        id,
		},
	}, nil
}
