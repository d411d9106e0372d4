// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

import "errors"

var (
	// ErrInvalidMappingConfig is the class of every error returned while
	// constructing a mapping harvester. Check with errors.Is.
	ErrInvalidMappingConfig = errors.New("invalid mapping harvester configuration")

	// ErrInvalidTransportAddress indicates a transport address without a host,
	// with a port outside 1-65535 or with an unknown transport.
	ErrInvalidTransportAddress = errors.New("invalid transport address")

	// ErrMappingTransportMismatch indicates a face and a mask with different transports.
	ErrMappingTransportMismatch = errors.New("face and mask transports differ")

	// ErrUnknownTransport indicates a transport name other than udp or tcp.
	ErrUnknownTransport = errors.New("unknown transport")

	// ErrNoMappedAddress indicates a STUN message carrying neither
	// XOR-MAPPED-ADDRESS nor MAPPED-ADDRESS.
	ErrNoMappedAddress = errors.New("stun message has no mapped address")

	// ErrNilComponent is returned by Gather when handed a nil component.
	ErrNilComponent = errors.New("component is nil")

	errInvalidStaticMapping = errors.New("invalid static mapping")
)

// configError marks err as a configuration error while keeping its own chain intact.
type configError struct {
	err error
}

func (e *configError) Error() string {
	return e.err.Error()
}

func (e *configError) Unwrap() []error {
	return []error{ErrInvalidMappingConfig, e.err}
}
