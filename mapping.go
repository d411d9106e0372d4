// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

import "github.com/pion/logging"

// MappingHarvester derives server reflexive candidates from the host
// candidates of a Component by substituting a public mask for a local face.
//
// Harvest never blocks, performs no I/O and never mutates the Component:
// it only returns new candidates, which the caller merges. Implementations
// must be safe for concurrent use.
type MappingHarvester interface {
	// Name identifies the harvester in logs.
	Name() string
	// Face is the local side of the mapping.
	Face() TransportAddress
	// Mask is the public side of the mapping.
	Mask() TransportAddress
	// MatchPort reports whether host candidates must be bound to Face's port.
	MatchPort() bool

	// Harvest returns the mapped candidates for component.
	Harvest(component *Component) []Candidate

	// PublicAddressMatches reports whether addr has the host of Mask.
	PublicAddressMatches(addr TransportAddress) bool

	// String renders the face and mask for logs.
	String() string
}

// mapAddress applies a face/mask rule to addr. The second return value is
// false when addr is not eligible.
func mapAddress(face, mask TransportAddress, matchPort bool, addr TransportAddress) (TransportAddress, bool) {
	if addr.transport != face.transport || !addr.HostEqual(face) {
		return TransportAddress{}, false
	}
	if matchPort && addr.port != face.port {
		return TransportAddress{}, false
	}

	port := addr.port
	if matchPort {
		port = face.port
	}

	return addr.withHostPort(mask.host, port), true
}

// harvestMapping is the shared harvesting algorithm of every MappingHarvester.
func harvestMapping(h MappingHarvester, component *Component, log logging.LeveledLogger) []Candidate {
	if component == nil {
		return nil
	}

	face, mask, matchPort := h.Face(), h.Mask(), h.MatchPort()

	var harvested []Candidate
	seen := map[TransportAddress]struct{}{}
	for _, host := range component.HostCandidates() {
		mapped, ok := mapAddress(face, mask, matchPort, host.Address())
		if !ok {
			continue
		}

		if _, dup := seen[mapped]; dup || component.ContainsAddress(mapped) {
			log.Tracef("%s: %s already present in component %d", h.Name(), mapped, component.ID())

			continue
		}

		cand, err := NewCandidateServerReflexive(mapped, host, h.Name())
		if err != nil {
			// mapped and host are never zero here.
			log.Warnf("%s: failed to create candidate for %s: %v", h.Name(), host, err)

			continue
		}

		seen[mapped] = struct{}{}
		harvested = append(harvested, cand)
		log.Debugf("%s: mapped %s to %s", h.Name(), host.Address(), mapped)
	}

	return harvested
}
