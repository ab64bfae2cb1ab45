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

package rosetta

import (
	"github.com/diem/rosetta-proxy/rosetta/identifier"
	"github.com/diem/rosetta-proxy/rosetta/object"
)

// Retriever reads the chain state this API needs: construction metadata
// for accounts, current balances and network status.
type Retriever interface {
	AccountMetadata(address string) (object.Metadata, error)
	Balances(account identifier.Account) (identifier.Block, []object.Amount, error)
	Status() (identifier.Block, int64, identifier.Block, error)
}
