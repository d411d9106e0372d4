// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

import (
	"fmt"
	"hash/crc32"
	"strconv"
)

const (
	defaultLocalPreference     = 65535
	defaultTCPPreferenceOffset = 27

	// ComponentRTP indicates that the candidate is used for RTP
	ComponentRTP  uint16 = 1
	// ComponentRTCP indicates that the candidate is used for RTCP
	ComponentRTCP uint16 = 2
)

// Candidate represents an ICE candidate
type Candidate interface {
	// ID is a unique identifier for this candidate within its Component.
	ID() string
	Address() TransportAddress
	Type() CandidateType
	Component() uint16

	// BaseID is the ID of the candidate this one was derived from. Host
	// candidates are their own base.
	BaseID() string
	RelatedAddress() *CandidateRelatedAddress

	Foundation() string
	Priority() uint32
	String() string
	Equal(other Candidate) bool
}

// CandidateRelatedAddress convey transport addresses related to the
// candidate, useful for diagnostics and other purposes.
type CandidateRelatedAddress struct {
	Address string
	Port    int
}

// String makes CandidateRelatedAddress printable
func (c *CandidateRelatedAddress) String() string {
	if c == nil {
		return ""
	}

	return fmt.Sprintf(" related %s:%d", c.Address, c.Port)
}

// Equal allows comparing two CandidateRelatedAddresses.
// The CandidateRelatedAddress are allowed to be nil.
func (c *CandidateRelatedAddress) Equal(other *CandidateRelatedAddress) bool {
	if c == nil && other == nil {
		return true
	}

	return c != nil && other != nil &&
		c.Address == other.Address &&
		c.Port == other.Port
}

type candidateBase struct {
	id             string
	address        TransportAddress
	candidateType  CandidateType
	component      uint16
	baseID         string
	relatedAddress *CandidateRelatedAddress

	// foundationKey distinguishes candidates of the same type and base host
	// that were produced by different harvesters.
	foundationKey string
}

// ID returns Candidate ID
func (c *candidateBase) ID() string {
	return c.id
}

// Address returns the transport address of the candidate
func (c *candidateBase) Address() TransportAddress {
	return c.address
}

// Type returns candidate type
func (c *candidateBase) Type() CandidateType {
	return c.candidateType
}

// Component returns candidate component
func (c *candidateBase) Component() uint16 {
	return c.component
}

func (c *candidateBase) BaseID() string {
	return c.baseID
}

// RelatedAddress returns *CandidateRelatedAddress
func (c *candidateBase) RelatedAddress() *CandidateRelatedAddress {
	return c.relatedAddress
}

// Foundation groups candidates sharing type, base host, transport and
// harvester, see RFC 8445 5.1.1.3.
func (c *candidateBase) Foundation() string {
	baseHost := c.address.Host()
	if c.relatedAddress != nil {
		baseHost = c.relatedAddress.Address
	}

	key := c.candidateType.String() + baseHost + c.address.Transport().String() + c.foundationKey

	return strconv.FormatUint(uint64(crc32.ChecksumIEEE([]byte(key))), 10)
}

// Priority computes the priority for this ICE Candidate
// See: https://www.rfc-editor.org/rfc/rfc8445#section-5.1.2.1
func (c *candidateBase) Priority() uint32 {
	// The local preference MUST be an integer from 0 (lowest preference) to
	// 65535 (highest preference) inclusive.  When there is only a single IP
	// address, this value SHOULD be set to 65535.
	return (1<<24)*uint32(c.candidateType.Preference(c.address.Transport())) +
		(1<<8)*uint32(defaultLocalPreference) +
		uint32(256-int(c.component))
}

// String makes the candidateBase printable
func (c *candidateBase) String() string {
	return fmt.Sprintf("%s %d %s%s", c.candidateType, c.component, c.address, c.relatedAddress)
}

// Equal is used to compare two candidateBases
func (c *candidateBase) Equal(other Candidate) bool {
	if other == nil {
		return false
	}

	return c.candidateType == other.Type() &&
		c.address == other.Address() &&
		c.component == other.Component() &&
		c.relatedAddress.Equal(other.RelatedAddress())
}
