// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package icemap

import (
	"fmt"
	"os"

	"github.com/pion/logging"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// discardPort fills in a missing port. Without local-port the face port is
// never compared, so any valid value does.
const discardPort = 9

// HarvestConfig is the file form of a harvester set:
//
//	static-mappings:
//	  - name: dmz
//	    local-address: 192.168.0.1
//	    public-address: 93.184.216.119
//	    local-port: 5000
//	    public-port: 5000
//	    transport: udp
type HarvestConfig struct {
	StaticMappings []StaticMapping `yaml:"static-mappings"`
}

// StaticMapping is one configured face/mask pair. Setting LocalPort turns on
// port matching.
type StaticMapping struct {
	Name          string `yaml:"name,omitempty"`
	LocalAddress  string `yaml:"local-address"`
	PublicAddress string `yaml:"public-address"`
	LocalPort     *int   `yaml:"local-port,omitempty"`
	PublicPort    *int   `yaml:"public-port,omitempty"`
	// Transport is udp or tcp, udp when empty.
	Transport     string `yaml:"transport,omitempty"`
}

func (m StaticMapping) String() string {
	return fmt.Sprintf("StaticMapping(name=%s, local=%s, public=%s)", m.Name, m.LocalAddress, m.PublicAddress)
}

// LoadHarvestConfig reads a YAML HarvestConfig from path.
func LoadHarvestConfig(path string) (*HarvestConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read harvest config: %w", err)
	}

	return ParseHarvestConfig(data)
}

// ParseHarvestConfig decodes a YAML HarvestConfig.
func ParseHarvestConfig(data []byte) (*HarvestConfig, error) {
	var cfg HarvestConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse harvest config: %w", err)
	}

	return &cfg, nil
}

// Harvester builds the StaticMappingHarvester described by m.
func (m StaticMapping) Harvester(loggerFactory logging.LoggerFactory) (*StaticMappingHarvester, error) {
	transport := TransportUDP
	if m.Transport != "" {
		var err error
		if transport, err = NewTransport(m.Transport); err != nil {
			return nil, &configError{err: fmt.Errorf("%w: %s: %w", errInvalidStaticMapping, m, err)}
		}
	}

	localPort, publicPort := discardPort, discardPort
	if m.LocalPort != nil {
		localPort = *m.LocalPort
	}
	if m.PublicPort != nil {
		publicPort = *m.PublicPort
	}

	face, err := NewTransportAddress(m.LocalAddress, localPort, transport)
	if err != nil {
		return nil, &configError{err: fmt.Errorf("%w: %s: local: %w", errInvalidStaticMapping, m, err)}
	}
	mask, err := NewTransportAddress(m.PublicAddress, publicPort, transport)
	if err != nil {
		return nil, &configError{err: fmt.Errorf("%w: %s: public: %w", errInvalidStaticMapping, m, err)}
	}

	return NewStaticMappingHarvester(face, mask,
		WithName(m.Name),
		WithMatchPort(m.LocalPort != nil),
		WithLoggerFactory(loggerFactory),
	)
}

// NewHarvesterSetFromConfig builds a HarvesterSet from every static mapping in
// cfg. All invalid mappings are reported together and no set is returned.
func NewHarvesterSetFromConfig(cfg *HarvestConfig, loggerFactory logging.LoggerFactory) (*HarvesterSet, error) {
	if loggerFactory == nil {
		loggerFactory = logging.NewDefaultLoggerFactory()
	}
	log := loggerFactory.NewLogger("icemap")

	var (
		harvesters []MappingHarvester
		errs       error
	)
	if cfg != nil {
		for _, mapping := range cfg.StaticMappings {
			log.Infof("Adding a static mapping: %s", mapping)

			h, err := mapping.Harvester(loggerFactory)
			if err != nil {
				errs = multierr.Append(errs, err)

				continue
			}
			harvesters = append(harvesters, h)
		}
	}
	if errs != nil {
		return nil, errs
	}

	return NewHarvesterSet(
		WithMappingHarvesters(harvesters...),
		WithHarvesterSetLoggerFactory(loggerFactory),
	)
}
