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
	"github.com/diem/rosetta-proxy/rosetta/transactor"
)

type Transactor struct {
	DeriveAccountFunc         func(key object.PublicKey) (identifier.Account, error)
	DeriveTransferFunc        func(operations []object.Operation) (transactor.Transfer, error)
	CompileTransactionFunc    func(transfer transactor.Transfer, metadata object.Metadata) (string, error)
	SigningPayloadFunc        func(unsigned string) (object.SigningPayload, error)
	AttachSignaturesFunc      func(unsigned string, signatures []object.Signature) (string, error)
	ParseTransactionFunc      func(payload string, signed bool) ([]object.Operation, []identifier.Account, error)
	TransactionIdentifierFunc func(signed string) (identifier.Transaction, error)
	SubmitTransactionFunc     func(signed string) (identifier.Transaction, error)
}

func BaselineTransactor(t *testing.T) *Transactor {
	t.Helper()

	tr := Transactor{
		DeriveAccountFunc: func(object.PublicKey) (identifier.Account, error) {
			return GenericAccountID, nil
		},
		DeriveTransferFunc: func([]object.Operation) (transactor.Transfer, error) {
			return transactor.Transfer{}, nil
		},
		CompileTransactionFunc: func(transactor.Transfer, object.Metadata) (string, error) {
			return GenericPayloadHex, nil
		},
		SigningPayloadFunc: func(string) (object.SigningPayload, error) {
			return GenericSigningPayload, nil
		},
		AttachSignaturesFunc: func(string, []object.Signature) (string, error) {
			return GenericPayloadHex, nil
		},
		ParseTransactionFunc: func(string, bool) ([]object.Operation, []identifier.Account, error) {
			return GenericOperations, nil, nil
		},
		TransactionIdentifierFunc: func(string) (identifier.Transaction, error) {
			return GenericTransactionID, nil
		},
		SubmitTransactionFunc: func(string) (identifier.Transaction, error) {
			return GenericTransactionID, nil
		},
	}

	return &tr
}

func (t *Transactor) DeriveAccount(key object.PublicKey) (identifier.Account, error) {
	return t.DeriveAccountFunc(key)
}

func (t *Transactor) DeriveTransfer(operations []object.Operation) (transactor.Transfer, error) {
	return t.DeriveTransferFunc(operations)
}

func (t *Transactor) CompileTransaction(transfer transactor.Transfer, metadata object.Metadata) (string, error) {
	return t.CompileTransactionFunc(transfer, metadata)
}

func (t *Transactor) SigningPayload(unsigned string) (object.SigningPayload, error) {
	return t.SigningPayloadFunc(unsigned)
}

func (t *Transactor) AttachSignatures(unsigned string, signatures []object.Signature) (string, error) {
	return t.AttachSignaturesFunc(unsigned, signatures)
}

func (t *Transactor) ParseTransaction(payload string, signed bool) ([]object.Operation, []identifier.Account, error) {
	return t.ParseTransactionFunc(payload, signed)
}

func (t *Transactor) TransactionIdentifier(signed string) (identifier.Transaction, error) {
	return t.TransactionIdentifierFunc(signed)
}

func (t *Transactor) SubmitTransaction(signed string) (identifier.Transaction, error) {
	return t.SubmitTransactionFunc(signed)
}
