// Copyright 2021 Diem Core Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package configuration

import (
	"fmt"

	"github.com/diem/rosetta-proxy/diem"
	"github.com/diem/rosetta-proxy/rosetta/failure"
	"github.com/diem/rosetta-proxy/rosetta/identifier"
	"github.com/diem/rosetta-proxy/rosetta/meta"
)

const (
	// RosettaVersion is the version of the Rosetta specification this
	// middleware implements.
	RosettaVersion = "1.4.4"

	// NodeVersion is the version of the Diem full node this middleware was
	// built against.
	NodeVersion = "1.2.0"

	// MiddlewareVersion is the version of this middleware.
	MiddlewareVersion = "0.1.0"
)

// Configuration is the immutable startup configuration of the proxy. It
// holds the network identity, the catalogs advertised on /network/options
// and the chain ID used by the gateway. A single instance is shared by all
// request handlers.
type Configuration struct {
	network    identifier.Network
	chainID    uint8
	version    meta.Version
	statuses   []meta.StatusDefinition
	operations []string
	errors     []meta.ErrorDefinition
}

// New creates the configuration for the given named network. The network
// must be one of the named Diem chains, as it determines the chain ID the
// gateway pins its responses to.
func New(network string) (*Configuration, error) {

	chainID, ok := diem.ChainIDs[network]
	if !ok {
		return nil, fmt.Errorf("unknown network name (network: %s)", network)
	}

	netID := identifier.Network{
		Blockchain: diem.Blockchain,
		Network:    network,
	}

	version := meta.Version{
		RosettaVersion:    RosettaVersion,
		NodeVersion:       NodeVersion,
		MiddlewareVersion: MiddlewareVersion,
	}

	statuses := make([]meta.StatusDefinition, 0, len(diem.VMStatuses))
	for _, status := range diem.VMStatuses {
		statuses = append(statuses, meta.StatusDefinition{
			Status:     status,
			Successful: status == diem.StatusExecuted,
		})
	}

	errors := []meta.ErrorDefinition{
		ErrorInternal,
		ErrorInvalidEncoding,
		ErrorInvalidFormat,
		ErrorInvalidNetwork,
		ErrorUnknownAccount,
		ErrorHistoricBalance,
		ErrorInvalidIntent,
		ErrorInvalidSignature,
		ErrorInvalidSignatureType,
		ErrorInvalidSignatureCount,
		ErrorUnknownCurrency,
		ErrorInvalidScript,
		ErrorInvalidPayload,
		ErrorInvalidSerialization,
		ErrorGateway,
	}

	c := Configuration{
		network:    netID,
		chainID:    chainID,
		version:    version,
		statuses:   statuses,
		operations: diem.OperationTypes,
		errors:     errors,
	}

	return &c, nil
}

// Network returns the network identifier the proxy is configured for.
func (c *Configuration) Network() identifier.Network {
	return c.network
}

// ChainID returns the on-chain identifier of the configured network.
func (c *Configuration) ChainID() uint8 {
	return c.chainID
}

// Version returns the version information advertised by the proxy.
func (c *Configuration) Version() meta.Version {
	return c.version
}

// Statuses returns the operation status definitions for the network.
func (c *Configuration) Statuses() []meta.StatusDefinition {
	return c.statuses
}

// Operations returns the supported operation types for the network.
func (c *Configuration) Operations() []string {
	return c.operations
}

// Errors returns the error catalog of the API.
func (c *Configuration) Errors() []meta.ErrorDefinition {
	return c.errors
}

// Check validates a request's network identifier against the configured
// network. Every endpoint applies this gate before any other processing.
func (c *Configuration) Check(network identifier.Network) error {

	if network.Blockchain != c.network.Blockchain {
		return failure.InvalidNetwork{
			Description: failure.NewDescription("invalid network identifier blockchain",
				failure.WithString("blockchain", network.Blockchain),
				failure.WithString("blockchain_want", c.network.Blockchain),
			),
			Blockchain: network.Blockchain,
			Network:    network.Network,
		}
	}

	if network.Network != c.network.Network {
		return failure.InvalidNetwork{
			Description: failure.NewDescription("invalid network identifier network",
				failure.WithString("network", network.Network),
				failure.WithString("network_want", c.network.Network),
			),
			Blockchain: network.Blockchain,
			Network:    network.Network,
		}
	}

	return nil
}
