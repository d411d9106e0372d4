// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

import (
	"context"
	"errors"
	"fmt"

	"github.com/pion/logging"
	"github.com/pion/stun/v3"
	"golang.org/x/sync/errgroup"
)

// HarvesterSetOption configures a HarvesterSet.
type HarvesterSetOption func(*HarvesterSet) error

// WithMappingHarvesters appends harvesters to the set, in order.
func WithMappingHarvesters(harvesters ...MappingHarvester) HarvesterSetOption {
	return func(s *HarvesterSet) error {
		s.pending = append(s.pending, harvesters...)

		return nil
	}
}

// WithHarvesterSetLoggerFactory sets the logger factory for the set.
func WithHarvesterSetLoggerFactory(loggerFactory logging.LoggerFactory) HarvesterSetOption {
	return func(s *HarvesterSet) error {
		if loggerFactory != nil {
			s.loggerFactory = loggerFactory
		}

		return nil
	}
}

// HarvesterSet is the ordered collection of mapping harvesters an Agent
// gathers with. It is immutable once built, so independent Agents can each
// own one and a single set can serve many components concurrently.
type HarvesterSet struct {
	harvesters []MappingHarvester

	pending       []MappingHarvester
	loggerFactory logging.LoggerFactory
	log           logging.LeveledLogger
}

// NewHarvesterSet builds a HarvesterSet. Harvesters whose face equals their
// mask, and harvesters repeating the transport, face host and mask host of an
// earlier one, are discarded.
func NewHarvesterSet(opts ...HarvesterSetOption) (*HarvesterSet, error) {
	set := &HarvesterSet{}
	for _, opt := range opts {
		if err := opt(set); err != nil {
			return nil, err
		}
	}

	if set.loggerFactory == nil {
		set.loggerFactory = logging.NewDefaultLoggerFactory()
	}
	set.log = set.loggerFactory.NewLogger("icemap")

	for _, h := range set.pending {
		set.maybeAdd(h)
	}
	set.pending = nil

	for _, h := range set.harvesters {
		set.log.Infof("Using %s", h)
	}

	return set, nil
}

func (s *HarvesterSet) maybeAdd(harvester MappingHarvester) {
	if harvester == nil {
		return
	}

	face, mask := harvester.Face(), harvester.Mask()
	if face.IsZero() || mask.IsZero() || face == mask {
		s.log.Warnf("Discarding a mapping harvester: %s", harvester)

		return
	}

	for _, kept := range s.harvesters {
		if face.Transport() == kept.Face().Transport() &&
			face.HostEqual(kept.Face()) && mask.HostEqual(kept.Mask()) {
			s.log.Warnf("Discarding a mapping harvester with duplicate addresses: %s. Kept: %s", harvester, kept)

			return
		}
	}

	s.harvesters = append(s.harvesters, harvester)
}

// Harvesters returns the harvesters of the set in order.
func (s *HarvesterSet) Harvesters() []MappingHarvester {
	out := make([]MappingHarvester, len(s.harvesters))
	copy(out, s.harvesters)

	return out
}

// Len returns the number of harvesters.
func (s *HarvesterSet) Len() int {
	return len(s.harvesters)
}

// Harvest runs every harvester against component, in order, and returns the
// union of their candidates. Two harvesters yielding the same address produce
// one candidate, the first one.
func (s *HarvesterSet) Harvest(component *Component) []Candidate {
	if component == nil {
		return nil
	}

	var union []Candidate
	seen := map[TransportAddress]struct{}{}
	for _, h := range s.harvesters {
		for _, cand := range h.Harvest(component) {
			if _, dup := seen[cand.Address()]; dup {
				s.log.Tracef("%s: dropping duplicate %s", h.Name(), cand.Address())

				continue
			}
			seen[cand.Address()] = struct{}{}
			union = append(union, cand)
		}
	}

	return union
}

// Gather harvests every component concurrently and merges the results into
// them. It returns the number of candidates added. Candidates that became
// duplicates between harvesting and merging are dropped.
func (s *HarvesterSet) Gather(ctx context.Context, components ...*Component) (int, error) {
	for _, c := range components {
		if c == nil {
			return 0, ErrNilComponent
		}
	}

	added := make([]int, len(components))
	grp, ctx := errgroup.WithContext(ctx)
	for i, component := range components {
		i, component := i, component

		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			for _, cand := range s.Harvest(component) {
				if component.AddCandidate(cand) {
					added[i]++
				}
			}
			s.log.Debugf("Gathered %d mapped candidates for component %d", added[i], component.ID())

			return nil
		})
	}

	err := grp.Wait()

	total := 0
	for _, n := range added {
		total += n
	}

	return total, err
}

// FindHarvesterForAddress returns the first harvester whose mask host matches
// publicAddress, or nil.
func (s *HarvesterSet) FindHarvesterForAddress(publicAddress TransportAddress) MappingHarvester {
	for _, h := range s.harvesters {
		if h.PublicAddressMatches(publicAddress) {
			return h
		}
	}

	return nil
}

// FindHarvesterForMessage reads the reflexive address a STUN server reported
// in a Binding success response and returns the harvester that already
// masks it. It returns nil and no error when no harvester matches.
func (s *HarvesterSet) FindHarvesterForMessage(msg *stun.Message) (MappingHarvester, error) {
	addr, err := mappedAddressFromMessage(msg)
	if err != nil {
		return nil, err
	}

	return s.FindHarvesterForAddress(addr), nil
}

func mappedAddressFromMessage(msg *stun.Message) (TransportAddress, error) {
	if msg == nil {
		return TransportAddress{}, ErrNoMappedAddress
	}

	var xorAddr stun.XORMappedAddress
	if err := xorAddr.GetFrom(msg); err == nil {
		return NewTransportAddress(xorAddr.IP.String(), xorAddr.Port, TransportUDP)
	} else if !errors.Is(err, stun.ErrAttributeNotFound) {
		return TransportAddress{}, fmt.Errorf("%w: %w", ErrNoMappedAddress, err)
	}

	var addr stun.MappedAddress
	if err := addr.GetFrom(msg); err != nil {
		return TransportAddress{}, fmt.Errorf("%w: %w", ErrNoMappedAddress, err)
	}

	return NewTransportAddress(addr.IP.String(), addr.Port, TransportUDP)
}
