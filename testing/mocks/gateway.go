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
	"testing"

	"github.com/diem/rosetta-proxy/diem"
)

type Gateway struct {
	AccountWithMetadataFunc func(address string) (*diem.Account, diem.Metadata, error)
	CurrentMetadataFunc     func() (diem.Metadata, error)
	TransactionsFunc        func(start uint64, limit uint64) ([]diem.TransactionInfo, error)
}

func BaselineGateway(t *testing.T) *Gateway {
	t.Helper()

	g := Gateway{
		AccountWithMetadataFunc: func(string) (*diem.Account, diem.Metadata, error) {
			return &GenericAccount, GenericMetadata, nil
		},
		CurrentMetadataFunc: func() (diem.Metadata, error) {
			return GenericMetadata, nil
		},
		TransactionsFunc: func(start uint64, limit uint64) ([]diem.TransactionInfo, error) {
			return []diem.TransactionInfo{{Version: start, Hash: GenericBlockHash}}, nil
		},
	}

	return &g
}

func (g *Gateway) AccountWithMetadata(address string) (*diem.Account, diem.Metadata, error) {
	return g.AccountWithMetadataFunc(address)
}

func (g *Gateway) CurrentMetadata() (diem.Metadata, error) {
	return g.CurrentMetadataFunc()
}

func (g *Gateway) Transactions(start uint64, limit uint64) ([]diem.TransactionInfo, error) {
	return g.TransactionsFunc(start, limit)
}
