// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

import (
	"fmt"

	"github.com/pion/logging"
)

// DefaultStaticMappingName is the name of a StaticMappingHarvester built without WithName.
const DefaultStaticMappingName = "static_mapping"

// StaticMappingOption configures a StaticMappingHarvester.
type StaticMappingOption func(*StaticMappingHarvester) error

// WithName sets the name used in logs. An empty name keeps the default.
func WithName(name string) StaticMappingOption {
	return func(h *StaticMappingHarvester) error {
		if name != "" {
			h.name = name
		}

		return nil
	}
}

// WithMatchPort restricts the mapping to host candidates bound to the face port.
// Without it the whole face host is masked and host candidate ports are kept.
func WithMatchPort(matchPort bool) StaticMappingOption {
	return func(h *StaticMappingHarvester) error {
		h.matchPort = matchPort

		return nil
	}
}

// WithLoggerFactory sets the logger factory for the harvester.
func WithLoggerFactory(loggerFactory logging.LoggerFactory) StaticMappingOption {
	return func(h *StaticMappingHarvester) error {
		if loggerFactory != nil {
			h.loggerFactory = loggerFactory
		}

		return nil
	}
}

// StaticMappingHarvester masks host candidates with a face/mask pair fixed at
// construction, for servers behind a NAT or in a DMZ with a static mapping.
//
// For example, a server bound to 192.168.0.1 behind a NAT with public IP
// 93.184.216.119 and host candidate 192.168.0.1:5000/udp gets the server
// reflexive candidate 93.184.216.119:5000/udp.
//
// Harvesting is instant: it adds no gathering latency.
type StaticMappingHarvester struct {
	face      TransportAddress
	mask      TransportAddress
	name      string
	matchPort bool

	loggerFactory logging.LoggerFactory
	log           logging.LeveledLogger
}

// NewStaticMappingHarvester validates face and mask and creates the harvester.
// Every returned error satisfies errors.Is(err, ErrInvalidMappingConfig).
func NewStaticMappingHarvester(
	face, mask TransportAddress,
	opts ...StaticMappingOption,
) (*StaticMappingHarvester, error) {
	if err := validateMapping(face, mask); err != nil {
		return nil, &configError{err: err}
	}

	harvester := &StaticMappingHarvester{
		face: face,
		mask: mask,
		name: DefaultStaticMappingName,
	}
	for _, opt := range opts {
		if err := opt(harvester); err != nil {
			return nil, &configError{err: err}
		}
	}

	if harvester.loggerFactory == nil {
		harvester.loggerFactory = logging.NewDefaultLoggerFactory()
	}
	harvester.log = harvester.loggerFactory.NewLogger("icemap")

	return harvester, nil
}

func validateMapping(face, mask TransportAddress) error {
	if !face.valid() {
		return fmt.Errorf("%w: face %s", ErrInvalidTransportAddress, face)
	}
	if !mask.valid() {
		return fmt.Errorf("%w: mask %s", ErrInvalidTransportAddress, mask)
	}
	if face.transport != mask.transport {
		return fmt.Errorf("%w: face %s is %s, mask %s is %s",
			ErrMappingTransportMismatch, face, face.transport, mask, mask.transport)
	}

	return nil
}

// Name returns the harvester name.
func (h *StaticMappingHarvester) Name() string { return h.name }

// Face returns the local address.
func (h *StaticMappingHarvester) Face() TransportAddress { return h.face }

// Mask returns the public address.
func (h *StaticMappingHarvester) Mask() TransportAddress { return h.mask }

// MatchPort reports whether the face port is part of the match.
func (h *StaticMappingHarvester) MatchPort() bool { return h.matchPort }

// Harvest returns one server reflexive candidate for every host candidate of
// component matching the face, skipping addresses the component already has.
func (h *StaticMappingHarvester) Harvest(component *Component) []Candidate {
	return harvestMapping(h, component, h.log)
}

// PublicAddressMatches reports whether addr has the mask host.
func (h *StaticMappingHarvester) PublicAddressMatches(addr TransportAddress) bool {
	return h.mask.HostEqual(addr)
}

func (h *StaticMappingHarvester) String() string {
	return fmt.Sprintf("StaticMappingHarvester(name=%s, face=%s, mask=%s, matchPort=%t)",
		h.name, h.face, h.mask, h.matchPort)
}
