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

package diem

import (
	"fmt"

	"github.com/diem/client-sdk-go/diemclient"
	"github.com/diem/client-sdk-go/diemtypes"
)

// Account is the chain's view of an account, reduced to the fields this
// proxy needs.
type Account struct {
	SequenceNumber uint64
	Balances       []Balance
}

// Balance is the amount of one currency held by an account.
type Balance struct {
	Amount   uint64
	Currency string
}

// Metadata is the chain's view of the current ledger state.
type Metadata struct {
	ChainID   uint8
	Version   uint64
	Timestamp uint64
}

// TransactionInfo identifies a committed transaction by ledger version and
// hash.
type TransactionInfo struct {
	Version uint64
	Hash    string
}

// Gateway provides read and submit access to a Diem full node over its
// JSON-RPC API. It is immutable after construction and safe for concurrent
// use.
type Gateway struct {
	client diemclient.Client
}

// NewGateway creates a gateway against the full node at the given endpoint.
// The chain ID pins the network; responses from a different network are
// rejected by the underlying client.
func NewGateway(chainID uint8, endpoint string) *Gateway {
	g := Gateway{
		client: diemclient.New(chainID, endpoint),
	}
	return &g
}

// AccountWithMetadata retrieves an account together with the current ledger
// metadata. The account is nil if it does not exist on chain.
func (g *Gateway) AccountWithMetadata(address string) (*Account, Metadata, error) {

	addr, err := ParseAddress(address)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("could not parse account address: %w", err)
	}

	acc, err := g.client.GetAccount(addr)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("could not get account: %w", err)
	}

	meta, err := g.client.GetMetadata()
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("could not get metadata: %w", err)
	}

	metadata := Metadata{
		ChainID:   uint8(meta.ChainId),
		Version:   meta.Version,
		Timestamp: meta.Timestamp,
	}

	if acc == nil {
		return nil, metadata, nil
	}

	account := Account{
		SequenceNumber: acc.SequenceNumber,
	}
	for _, balance := range acc.Balances {
		account.Balances = append(account.Balances, Balance{
			Amount:   balance.Amount,
			Currency: balance.Currency,
		})
	}

	return &account, metadata, nil
}

// CurrentMetadata retrieves the current ledger metadata.
func (g *Gateway) CurrentMetadata() (Metadata, error) {

	meta, err := g.client.GetMetadata()
	if err != nil {
		return Metadata{}, fmt.Errorf("could not get metadata: %w", err)
	}

	metadata := Metadata{
		ChainID:   uint8(meta.ChainId),
		Version:   meta.Version,
		Timestamp: meta.Timestamp,
	}

	return metadata, nil
}

// Transactions retrieves committed transactions starting at the given
// ledger version.
func (g *Gateway) Transactions(start uint64, limit uint64) ([]TransactionInfo, error) {

	txs, err := g.client.GetTransactions(start, limit, false)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}

	infos := make([]TransactionInfo, 0, len(txs))
	for _, tx := range txs {
		infos = append(infos, TransactionInfo{
			Version: tx.Version,
			Hash:    tx.Hash,
		})
	}

	return infos, nil
}

// Submit sends a signed transaction to the full node for inclusion in the
// chain.
func (g *Gateway) Submit(signed *diemtypes.SignedTransaction) error {
	err := g.client.SubmitTransaction(signed)
	if err != nil {
		return fmt.Errorf("could not submit transaction: %w", err)
	}
	return nil
}
