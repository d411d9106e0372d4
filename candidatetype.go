// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

// CandidateType represents the type of candidate
type CandidateType byte

// CandidateType enum
const (
	CandidateTypeUnspecified CandidateType = iota
	CandidateTypeHost
	CandidateTypeServerReflexive
	CandidateTypePeerReflexive
	CandidateTypeRelay
)

// String makes CandidateType printable
func (c CandidateType) String() string {
	switch c {
	case CandidateTypeHost:
		return "host"
	case CandidateTypeServerReflexive:
		return "srflx"
	case CandidateTypePeerReflexive:
		return "prflx"
	case CandidateTypeRelay:
		return "relay"
	case CandidateTypeUnspecified:
		return "Unknown candidate type"
	}

	return "Unknown candidate type"
}

// Preference returns the preference weight of a CandidateType
//
// 4.1.2.2.  Guidelines for Choosing Type and Local Preferences
// The RECOMMENDED values are 126 for host candidates, 100
// for server reflexive candidates, 110 for peer reflexive candidates,
// and 0 for relayed candidates.
//
// Statically mapped candidates are server reflexive, so they rank exactly
// where a STUN-discovered mapping of the same host candidate would.
func (c CandidateType) Preference(transport Transport) uint16 {
	var result uint16
	switch c {
	case CandidateTypeHost:
		result = 126
	case CandidateTypePeerReflexive:
		result = 110
	case CandidateTypeServerReflexive:
		result = 100
	case CandidateTypeRelay, CandidateTypeUnspecified:
		return 0
	default:
		return 0
	}
	if transport == TransportTCP {
		return result - defaultTCPPreferenceOffset
	}

	return result
}
