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

package mocks

import (
	"errors"

	"github.com/diem/rosetta-proxy/diem"
	"github.com/diem/rosetta-proxy/rosetta/identifier"
	"github.com/diem/rosetta-proxy/rosetta/object"
)

// Generic fixtures shared between tests. They carry plausible but
// arbitrary values; tests that care about a specific field should override
// the relevant mock function instead.
var (
	GenericError = errors.New("dummy error")

	GenericAddress        = "d44fb9bc1809ef2d3b7a0be5d23165ab"
	GenericCounterparty   = "46db232847516a93b1bb6b9b7dc8b369"
	GenericBlockHash      = "b7e3f6bbb1b28a81a1c59483913b9fd6e6be79309ca1d4dfef1dbca85000cb62"
	GenericTransactionHex = "deadbeef"
	GenericPayloadHex     = "cafef00d"
	GenericTimestamp      = int64(1632143371000)

	GenericCurrency = identifier.Currency{
		Symbol:   diem.Symbol,
		Decimals: diem.Decimals,
	}

	GenericNetwork = identifier.Network{
		Blockchain: diem.Blockchain,
		Network:    "testnet",
	}

	GenericAccountID = identifier.Account{
		Address: GenericAddress,
	}

	GenericTransactionID = identifier.Transaction{
		Hash: GenericBlockHash,
	}

	GenericBlock = identifier.Block{
		Index: 41337,
		Hash:  GenericBlockHash,
	}

	GenericGenesis = identifier.Block{
		Index: 0,
		Hash:  "7c4f6b332c5e95241d5ee7d880f5a1e05513b6cba7296bc6098f20a4d2774b83",
	}

	GenericAccount = diem.Account{
		SequenceNumber: 7,
		Balances: []diem.Balance{
			{Amount: 1_000_000, Currency: diem.Symbol},
		},
	}

	GenericMetadata = diem.Metadata{
		ChainID:   2,
		Version:   41337,
		Timestamp: 1632143371000000,
	}

	GenericAccountMetadata = object.Metadata{
		ChainID:        2,
		SequenceNumber: 7,
	}

	GenericAmount = object.Amount{
		Value:    "1000000",
		Currency: GenericCurrency,
	}

	GenericSigningPayload = object.SigningPayload{
		Address:       GenericAddress,
		HexBytes:      GenericPayloadHex,
		SignatureType: "ed25519",
	}

	GenericOperations = []object.Operation{
		{
			ID:        identifier.Operation{Index: 0},
			Type:      diem.OperationSent,
			AccountID: &identifier.Account{Address: GenericAddress},
			Amount: &object.Amount{
				Value:    "-1000000",
				Currency: GenericCurrency,
			},
		},
		{
			ID:         identifier.Operation{Index: 1},
			RelatedIDs: []identifier.Operation{{Index: 0}},
			Type:       diem.OperationReceived,
			AccountID:  &identifier.Account{Address: GenericCounterparty},
			Amount: &object.Amount{
				Value:    "1000000",
				Currency: GenericCurrency,
			},
		},
	}
)
