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

package object

// Metadata carries the on-chain information needed to construct a
// transaction. It is produced by the /construction/metadata endpoint and
// passed back opaquely by the caller to /construction/payloads.
type Metadata struct {
	ChainID        uint8  `json:"chain_id"`
	SequenceNumber uint64 `json:"sequence_number"`
}

// Options is the query produced by /construction/preprocess and consumed by
// /construction/metadata. It names the account whose sequence number must
// be fetched.
type Options struct {
	SenderAddress string `json:"sender_address"`
}
