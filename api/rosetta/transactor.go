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
	"github.com/diem/rosetta-proxy/rosetta/transactor"
)

// Transactor can construct transactions from Rosetta operations, derive
// signing payloads, combine signatures, decode transactions back into
// operations, compute transaction hashes and submit signed transactions.
type Transactor interface {
	DeriveAccount(key object.PublicKey) (identifier.Account, error)
	DeriveTransfer(operations []object.Operation) (transactor.Transfer, error)
	CompileTransaction(transfer transactor.Transfer, metadata object.Metadata) (string, error)
	SigningPayload(unsigned string) (object.SigningPayload, error)
	AttachSignatures(unsigned string, signatures []object.Signature) (string, error)
	ParseTransaction(payload string, signed bool) ([]object.Operation, []identifier.Account, error)
	TransactionIdentifier(signed string) (identifier.Transaction, error)
	SubmitTransaction(signed string) (identifier.Transaction, error)
}
