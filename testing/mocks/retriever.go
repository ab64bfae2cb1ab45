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

	"github.com/diem/rosetta-proxy/rosetta/identifier"
	"github.com/diem/rosetta-proxy/rosetta/object"
)

type Retriever struct {
	AccountMetadataFunc func(address string) (object.Metadata, error)
	BalancesFunc        func(account identifier.Account) (identifier.Block, []object.Amount, error)
	StatusFunc          func() (identifier.Block, int64, identifier.Block, error)
}

func BaselineRetriever(t *testing.T) *Retriever {
	t.Helper()

	r := Retriever{
		AccountMetadataFunc: func(string) (object.Metadata, error) {
			return GenericAccountMetadata, nil
		},
		BalancesFunc: func(identifier.Account) (identifier.Block, []object.Amount, error) {
			return GenericBlock, []object.Amount{GenericAmount}, nil
		},
		StatusFunc: func() (identifier.Block, int64, identifier.Block, error) {
			return GenericBlock, GenericTimestamp, GenericGenesis, nil
		},
	}

	return &r
}

func (r *Retriever) AccountMetadata(address string) (object.Metadata, error) {
	return r.AccountMetadataFunc(address)
}

func (r *Retriever) Balances(account identifier.Account) (identifier.Block, []object.Amount, error) {
	return r.BalancesFunc(account)
}

func (r *Retriever) Status() (identifier.Block, int64, identifier.Block, error) {
	return r.StatusFunc()
}
