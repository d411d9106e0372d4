// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// Transport is the transport protocol of a TransportAddress.
type Transport byte

// Transport enum
const (
	TransportUnspecified Transport = iota
	TransportUDP
	TransportTCP
)

// NewTransport parses a transport name, case-insensitively.
func NewTransport(raw string) (Transport, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "udp":
		return TransportUDP, nil
	case "tcp":
		return TransportTCP, nil
	default:
		return TransportUnspecified, fmt.Errorf("%w: %q", ErrUnknownTransport, raw)
	}
}

func (t Transport) String() string {
	switch t {
	case TransportUDP:
		return "udp"
	case TransportTCP:
		return "tcp"
	case TransportUnspecified:
		return "unspecified"
	}

	return "unspecified"
}

func (t Transport) valid() bool {
	return t == TransportUDP || t == TransportTCP
}

// TransportAddress is an immutable host, port and transport triple.
// Two addresses are equal when all three parts are equal, so the type
// can be compared with == and used as a map key.
type TransportAddress struct {
	host      string
	port      uint16
	transport Transport
}

// NewTransportAddress validates and returns a TransportAddress. A literal IP
// host is canonicalised, anything else is kept as a hostname and never resolved.
func NewTransportAddress(host string, port int, transport Transport) (TransportAddress, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return TransportAddress{}, fmt.Errorf("%w: empty host", ErrInvalidTransportAddress)
	}
	if port < 1 || port > 65535 {
		return TransportAddress{}, fmt.Errorf("%w: port %d out of range", ErrInvalidTransportAddress, port)
	}
	if !transport.valid() {
		return TransportAddress{}, fmt.Errorf("%w: transport %s", ErrInvalidTransportAddress, transport)
	}

	if ip, err := netip.ParseAddr(strings.Trim(host, "[]")); err == nil {
		host = ip.Unmap().String()
	}

	return TransportAddress{host: host, port: uint16(port), transport: transport}, nil
}

// ParseTransportAddress parses "host:port" or "host:port/transport". The
// transport defaults to udp.
func ParseTransportAddress(raw string) (TransportAddress, error) {
	hostPort, proto, found := strings.Cut(strings.TrimSpace(raw), "/")
	transport := TransportUDP
	if found {
		var err error
		if transport, err = NewTransport(proto); err != nil {
			return TransportAddress{}, fmt.Errorf("%w: %w", ErrInvalidTransportAddress, err)
		}
	}

	host, portStr, err := net.SplitHostPort(hostPort)
	if err != nil {
		return TransportAddress{}, fmt.Errorf("%w: %w", ErrInvalidTransportAddress, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return TransportAddress{}, fmt.Errorf("%w: port %q", ErrInvalidTransportAddress, portStr)
	}

	return NewTransportAddress(host, port, transport)
}

// Host returns the IP literal or hostname.
func (a TransportAddress) Host() string { return a.host }

// Port returns the port.
func (a TransportAddress) Port() int { return int(a.port) }

// Transport returns the transport protocol.
func (a TransportAddress) Transport() Transport { return a.transport }

// IP returns the host as an IP when it is a literal.
func (a TransportAddress) IP() (netip.Addr, bool) {
	ip, err := netip.ParseAddr(a.host)

	return ip, err == nil
}

// valid reports whether a is a well-formed address, as NewTransportAddress builds.
func (a TransportAddress) valid() bool {
	return a.host != "" && a.port != 0 && a.transport.valid()
}

// IsZero reports whether a was never constructed.
func (a TransportAddress) IsZero() bool {
	return a == TransportAddress{}
}

// Equal reports structural equality.
func (a TransportAddress) Equal(other TransportAddress) bool {
	return a == other
}

// HostEqual reports whether both addresses share the same host, ignoring
// port and transport.
func (a TransportAddress) HostEqual(other TransportAddress) bool {
	return a.host == other.host
}

func (a TransportAddress) withHostPort(host string, port uint16) TransportAddress {
	return TransportAddress{host: host, port: port, transport: a.transport}
}

// String renders the address as host:port/transport.
func (a TransportAddress) String() string {
	if a.IsZero() {
		return "<nil>"
	}

	return net.JoinHostPort(a.host, strconv.Itoa(int(a.port))) + "/" + a.transport.String()
}
