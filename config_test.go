// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const testHarvestConfig = `
static-mappings:
  - name: dmz
    local-address: 192.168.0.1
    public-address: 93.184.216.119
    local-port: 5000
    public-port: 5000
  - local-address: 10.0.0.1
    public-address: 93.184.216.120
    transport: tcp
`

func TestParseHarvestConfig(t *testing.T) {
	cfg, err := ParseHarvestConfig([]byte(testHarvestConfig))
	require.NoError(t, err)
	require.Len(t, cfg.StaticMappings, 2)

	dmz := cfg.StaticMappings[0]
	assert.Equal(t, "dmz", dmz.Name)
	require.NotNil(t, dmz.LocalPort)
	assert.Equal(t, 5000, *dmz.LocalPort)

	assert.Nil(t, cfg.StaticMappings[1].LocalPort)
	assert.Equal(t, "tcp", cfg.StaticMappings[1].Transport)

	_, err = ParseHarvestConfig([]byte("static-mappings: {"))
	assert.Error(t, err)
}

func TestLoadHarvestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testHarvestConfig), 0o600))

	cfg, err := LoadHarvestConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.StaticMappings, 2)

	_, err = LoadHarvestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStaticMappingFromConfig(t *testing.T) {
	cfg, err := ParseHarvestConfig([]byte(testHarvestConfig))
	require.NoError(t, err)

	dmz, err := cfg.StaticMappings[0].Harvester(logging.NewDefaultLoggerFactory())
	require.NoError(t, err)
	assert.Equal(t, "dmz", dmz.Name())
	assert.True(t, dmz.MatchPort())
	assert.Equal(t, "192.168.0.1:5000/udp", dmz.Face().String())
	assert.Equal(t, "93.184.216.119:5000/udp", dmz.Mask().String())

	subnet, err := cfg.StaticMappings[1].Harvester(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultStaticMappingName, subnet.Name())
	assert.False(t, subnet.MatchPort())
	assert.Equal(t, "10.0.0.1:9/tcp", subnet.Face().String())

	// Without local-port every port of the face host is masked.
	component := newTestComponent(t, "10.0.0.1:443/tcp")
	assert.Equal(t, []string{"93.184.216.120:443/tcp"}, addresses(subnet.Harvest(component)))
}

func TestNewHarvesterSetFromConfig(t *testing.T) {
	cfg, err := ParseHarvestConfig([]byte(testHarvestConfig))
	require.NoError(t, err)

	set, err := NewHarvesterSetFromConfig(cfg, logging.NewDefaultLoggerFactory())
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	empty, err := NewHarvesterSetFromConfig(nil, nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

func TestNewHarvesterSetFromConfigBothTransports(t *testing.T) {
	cfg, err := ParseHarvestConfig([]byte(`
static-mappings:
  - local-address: 192.168.0.1
    public-address: 93.184.216.119
  - local-address: 192.168.0.1
    public-address: 93.184.216.119
    transport: tcp
`))
	require.NoError(t, err)

	set, err := NewHarvesterSetFromConfig(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	component := newTestComponent(t, "192.168.0.1:443/tcp", "192.168.0.1:5000/udp")
	assert.ElementsMatch(t,
		[]string{"93.184.216.119:443/tcp", "93.184.216.119:5000/udp"},
		addresses(set.Harvest(component)))
}

func TestNewHarvesterSetFromConfigInvalid(t *testing.T) {
	badPort := 70000
	cfg := &HarvestConfig{StaticMappings: []StaticMapping{
		{Name: "no-local", PublicAddress: "93.184.216.119"},
		{Name: "bad-port", LocalAddress: "10.0.0.1", PublicAddress: "93.184.216.119", PublicPort: &badPort},
		{Name: "bad-transport", LocalAddress: "10.0.0.1", PublicAddress: "93.184.216.119", Transport: "sctp"},
		{Name: "ok", LocalAddress: "10.0.0.1", PublicAddress: "93.184.216.119"},
	}}

	set, err := NewHarvesterSetFromConfig(cfg, nil)
	assert.Nil(t, set)
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	for _, e := range errs {
		assert.ErrorIs(t, e, ErrInvalidMappingConfig)
		assert.ErrorIs(t, e, errInvalidStaticMapping)
	}
	assert.ErrorIs(t, errs[0], ErrInvalidTransportAddress)
	assert.Contains(t, errs[1].Error(), "bad-port")
	assert.ErrorIs(t, errs[2], ErrUnknownTransport)
}
