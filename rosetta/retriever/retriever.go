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

package retriever

import (
	"fmt"

	"github.com/diem/rosetta-proxy/diem"
	"github.com/diem/rosetta-proxy/rosetta/failure"
	"github.com/diem/rosetta-proxy/rosetta/identifier"
	"github.com/diem/rosetta-proxy/rosetta/object"
)

// Gateway represents the chain access the retriever needs.
type Gateway interface {
	AccountWithMetadata(address string) (*diem.Account, diem.Metadata, error)
	CurrentMetadata() (diem.Metadata, error)
	Transactions(start uint64, limit uint64) ([]diem.TransactionInfo, error)
}

// Retriever answers read-only queries about the chain: account metadata for
// transaction construction, account balances and network status.
type Retriever struct {
	gateway Gateway
}

// New creates a new retriever on top of the given gateway.
func New(gateway Gateway) *Retriever {
	r := Retriever{
		gateway: gateway,
	}
	return &r
}

// AccountMetadata returns the on-chain metadata needed to construct a
// transaction for the given account: the chain ID and the account's current
// sequence number.
func (r *Retriever) AccountMetadata(address string) (object.Metadata, error) {

	account, meta, err := r.gateway.AccountWithMetadata(address)
	if err != nil {
		return object.Metadata{}, failure.GatewayFailure{
			Description: failure.NewDescription("could not get account from chain",
				failure.WithErr(err)),
		}
	}
	if account == nil {
		return object.Metadata{}, failure.UnknownAccount{
			Description: failure.NewDescription("account does not exist on chain"),
			Address:     address,
		}
	}

	metadata := object.Metadata{
		ChainID:        meta.ChainID,
		SequenceNumber: account.SequenceNumber,
	}

	return metadata, nil
}

// Balances returns the current balances of the given account, along with
// the ledger block they were read at.
func (r *Retriever) Balances(account identifier.Account) (identifier.Block, []object.Amount, error) {

	acc, meta, err := r.gateway.AccountWithMetadata(account.Address)
	if err != nil {
		return identifier.Block{}, nil, failure.GatewayFailure{
			Description: failure.NewDescription("could not get account from chain",
				failure.WithErr(err)),
		}
	}
	if acc == nil {
		return identifier.Block{}, nil, failure.UnknownAccount{
			Description: failure.NewDescription("account does not exist on chain"),
			Address:     account.Address,
		}
	}

	block, err := r.blockAt(meta.Version)
	if err != nil {
		return identifier.Block{}, nil, err
	}

	amounts := make([]object.Amount, 0, len(acc.Balances))
	for _, balance := range acc.Balances {
		amounts = append(amounts, object.Amount{
			Value: fmt.Sprint(balance.Amount),
			Currency: identifier.Currency{
				Symbol:   balance.Currency,
				Decimals: diem.Decimals,
			},
		})
	}

	return block, amounts, nil
}

// Status returns the current ledger block, its timestamp in milliseconds
// and the genesis block of the chain.
func (r *Retriever) Status() (identifier.Block, int64, identifier.Block, error) {

	meta, err := r.gateway.CurrentMetadata()
	if err != nil {
		return identifier.Block{}, 0, identifier.Block{}, failure.GatewayFailure{
			Description: failure.NewDescription("could not get chain metadata",
				failure.WithErr(err)),
		}
	}

	current, err := r.blockAt(meta.Version)
	if err != nil {
		return identifier.Block{}, 0, identifier.Block{}, err
	}
	genesis, err := r.blockAt(0)
	if err != nil {
		return identifier.Block{}, 0, identifier.Block{}, err
	}

	// Ledger timestamps are in microseconds; Rosetta wants milliseconds.
	timestamp := int64(meta.Timestamp / 1000)

	return current, timestamp, genesis, nil
}

// blockAt resolves the ledger version into a block identifier. Each
// transaction is its own block, so the block hash is the hash of the
// transaction at that version.
func (r *Retriever) blockAt(version uint64) (identifier.Block, error) {

	txs, err := r.gateway.Transactions(version, 1)
	if err != nil {
		return identifier.Block{}, failure.GatewayFailure{
			Description: failure.NewDescription("could not get transaction from chain",
				failure.WithErr(err),
				failure.WithUint64("version", version)),
		}
	}
	if len(txs) == 0 {
		return identifier.Block{}, failure.GatewayFailure{
			Description: failure.NewDescription("no transaction at ledger version",
				failure.WithUint64("version", version)),
		}
	}

	block := identifier.Block{
		Index: txs[0].Version,
		Hash:  txs[0].Hash,
	}

	return block, nil
}
