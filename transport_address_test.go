// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAddr(t *testing.T, raw string) TransportAddress {
	t.Helper()

	addr, err := ParseTransportAddress(raw)
	require.NoError(t, err)

	return addr
}

func TestNewTransport(t *testing.T) {
	for raw, want := range map[string]Transport{"udp": TransportUDP, "UDP": TransportUDP, " tcp ": TransportTCP} {
		got, err := NewTransport(raw)
		require.NoError(t, err)
		assert.Equal(t, want, got, raw)
	}

	_, err := NewTransport("sctp")
	assert.ErrorIs(t, err, ErrUnknownTransport)
	assert.Equal(t, "unspecified", TransportUnspecified.String())
}

func TestNewTransportAddress(t *testing.T) {
	addr, err := NewTransportAddress("192.168.0.1", 5000, TransportUDP)
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.1", addr.Host())
	assert.Equal(t, 5000, addr.Port())
	assert.Equal(t, TransportUDP, addr.Transport())
	assert.Equal(t, "192.168.0.1:5000/udp", addr.String())

	ip, ok := addr.IP()
	assert.True(t, ok)
	assert.True(t, ip.Is4())

	t.Run("canonical IP", func(t *testing.T) {
		mapped, err := NewTransportAddress("::ffff:192.168.0.1", 5000, TransportUDP)
		require.NoError(t, err)
		assert.Equal(t, addr, mapped)

		v6, err := NewTransportAddress("[2001:DB8::1]", 5000, TransportTCP)
		require.NoError(t, err)
		assert.Equal(t, "2001:db8::1", v6.Host())
		assert.Equal(t, "[2001:db8::1]:5000/tcp", v6.String())
	})

	t.Run("hostname kept verbatim", func(t *testing.T) {
		named, err := NewTransportAddress("turn.example.org", 3478, TransportUDP)
		require.NoError(t, err)
		assert.Equal(t, "turn.example.org", named.Host())

		_, ok := named.IP()
		assert.False(t, ok)
	})

	for _, tc := range []struct {
		name      string
		host      string
		port      int
		transport Transport
	}{
		{"empty host", "", 5000, TransportUDP},
		{"zero port", "10.0.0.1", 0, TransportUDP},
		{"port too large", "10.0.0.1", 65536, TransportUDP},
		{"negative port", "10.0.0.1", -1, TransportUDP},
		{"no transport", "10.0.0.1", 5000, TransportUnspecified},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTransportAddress(tc.host, tc.port, tc.transport)
			assert.ErrorIs(t, err, ErrInvalidTransportAddress)
		})
	}
}

func TestParseTransportAddress(t *testing.T) {
	addr := mustAddr(t, "93.184.216.119:5000")
	assert.Equal(t, TransportUDP, addr.Transport())

	addr = mustAddr(t, "93.184.216.119:5000/TCP")
	assert.Equal(t, TransportTCP, addr.Transport())

	addr = mustAddr(t, "[::1]:443/tcp")
	assert.Equal(t, "::1", addr.Host())

	for _, raw := range []string{"93.184.216.119", "93.184.216.119:http", "93.184.216.119:5000/sctp", ":5000"} {
		_, err := ParseTransportAddress(raw)
		assert.ErrorIs(t, err, ErrInvalidTransportAddress, raw)
	}
}

func TestTransportAddressEquality(t *testing.T) {
	udp := mustAddr(t, "192.168.0.1:5000/udp")
	tcp := mustAddr(t, "192.168.0.1:5000/tcp")
	other := mustAddr(t, "192.168.0.1:6000/udp")

	assert.True(t, udp.Equal(mustAddr(t, "192.168.0.1:5000")))
	assert.False(t, udp.Equal(tcp))
	assert.False(t, udp.Equal(other))
	assert.True(t, udp.HostEqual(tcp))
	assert.True(t, udp.HostEqual(other))

	var zero TransportAddress
	assert.True(t, zero.IsZero())
	assert.False(t, zero.valid())
	assert.True(t, udp.valid())
	assert.Equal(t, "<nil>", zero.String())
}
