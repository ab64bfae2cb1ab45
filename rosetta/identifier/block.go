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

package identifier

// Block identifies a point in chain history. Diem has no blocks in the
// Rosetta sense, so the ledger version takes the place of the block index
// and the transaction hash at that version the place of the block hash.
type Block struct {
	Index uint64 `json:"index"`
	Hash  string `json:"hash"`
}
