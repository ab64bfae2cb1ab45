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

import (
	"github.com/diem/rosetta-proxy/rosetta/identifier"
)

// Operation is a single signed-amount line item within a transaction. A
// peer-to-peer transfer is expressed as exactly two operations, a
// `sentpayment` and a `receivedpayment`, whose amounts net to zero. Account
// and amount are pointers because the Rosetta API allows operations without
// them; the construction pipeline rejects such operations explicitly.
type Operation struct {
	ID         identifier.Operation   `json:"operation_identifier"`
	RelatedIDs []identifier.Operation `json:"related_operations,omitempty"`
	Type       string                 `json:"type"`
	Status     string                 `json:"status"`
	AccountID  *identifier.Account    `json:"account,omitempty"`
	Amount     *Amount                `json:"amount,omitempty"`
}
