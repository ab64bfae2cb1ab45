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

package transactor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diem/rosetta-proxy/diem"
	"github.com/diem/rosetta-proxy/rosetta/failure"
	"github.com/diem/rosetta-proxy/rosetta/identifier"
	"github.com/diem/rosetta-proxy/rosetta/object"
	"github.com/diem/rosetta-proxy/rosetta/transactor"
	"github.com/diem/rosetta-proxy/testing/mocks"
)

func transferOperations(t *testing.T) []object.Operation {
	t.Helper()

	operations := []object.Operation{
		{
			ID:        identifier.Operation{Index: 0},
			Type:      diem.OperationSent,
			AccountID: &identifier.Account{Address: mocks.GenericAddress},
			Amount: &object.Amount{
				Value:    "-100",
				Currency: mocks.GenericCurrency,
			},
		},
		{
			ID:        identifier.Operation{Index: 1},
			Type:      diem.OperationReceived,
			AccountID: &identifier.Account{Address: mocks.GenericCounterparty},
			Amount: &object.Amount{
				Value:    "100",
				Currency: mocks.GenericCurrency,
			},
		},
	}

	return operations
}

func TestTransactor_DeriveTransfer(t *testing.T) {
	tr := transactor.New(mocks.BaselineSubmitter(t))

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		transfer, err := tr.DeriveTransfer(transferOperations(t))

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericAddress, transfer.Sender.Hex())
		assert.Equal(t, mocks.GenericCounterparty, transfer.Receiver.Hex())
		assert.Equal(t, uint64(100), transfer.Amount)
		assert.Equal(t, diem.Symbol, transfer.Currency)
	})

	t.Run("operation order does not matter", func(t *testing.T) {
		t.Parallel()

		operations := transferOperations(t)
		operations[0], operations[1] = operations[1], operations[0]

		transfer, err := tr.DeriveTransfer(operations)

		require.NoError(t, err)
		assert.Equal(t, mocks.GenericAddress, transfer.Sender.Hex())
		assert.Equal(t, mocks.GenericCounterparty, transfer.Receiver.Hex())
	})

	t.Run("handles too few operations", func(t *testing.T) {
		t.Parallel()

		_, err := tr.DeriveTransfer(transferOperations(t)[:1])

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.InvalidOperations{})
	})

	t.Run("handles too many operations", func(t *testing.T) {
		t.Parallel()

		operations := transferOperations(t)
		operations = append(operations, operations[0])

		_, err := tr.DeriveTransfer(operations)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.InvalidOperations{})
	})

	t.Run("handles duplicate operation types", func(t *testing.T) {
		t.Parallel()

		operations := transferOperations(t)
		operations[1].Type = diem.OperationSent

		_, err := tr.DeriveTransfer(operations)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.InvalidIntent{})
	})

	t.Run("handles unrelated operation types", func(t *testing.T) {
		t.Parallel()

		operations := transferOperations(t)
		operations[0].Type = "mint"

		_, err := tr.DeriveTransfer(operations)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.InvalidIntent{})
	})

	t.Run("handles missing account", func(t *testing.T) {
		t.Parallel()

		operations := transferOperations(t)
		operations[0].AccountID = nil

		_, err := tr.DeriveTransfer(operations)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.InvalidIntent{})
	})

	t.Run("handles missing amount", func(t *testing.T) {
		t.Parallel()

		operations := transferOperations(t)
		operations[1].Amount = nil

		_, err := tr.DeriveTransfer(operations)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.InvalidIntent{})
	})

	t.Run("handles currency mismatch", func(t *testing.T) {
		t.Parallel()

		operations := transferOperations(t)
		operations[1].Amount.Currency.Symbol = "XUS"

		_, err := tr.DeriveTransfer(operations)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.InvalidIntent{})
	})

	t.Run("handles malformed amount", func(t *testing.T) {
		t.Parallel()

		operations := transferOperations(t)
		operations[0].Amount.Value = "minus one hundred"

		_, err := tr.DeriveTransfer(operations)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.InvalidIntent{})
	})

	t.Run("handles sender with credit amount", func(t *testing.T) {
		t.Parallel()

		operations := transferOperations(t)
		operations[0].Amount.Value = "100"
		operations[1].Amount.Value = "-100"

		_, err := tr.DeriveTransfer(operations)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.InvalidIntent{})
	})

	t.Run("handles amounts that do not net to zero", func(t *testing.T) {
		t.Parallel()

		operations := transferOperations(t)
		operations[1].Amount.Value = "99"

		_, err := tr.DeriveTransfer(operations)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.InvalidIntent{})
	})

	t.Run("handles malformed sender address", func(t *testing.T) {
		t.Parallel()

		operations := transferOperations(t)
		operations[0].AccountID.Address = "not-an-address"

		_, err := tr.DeriveTransfer(operations)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.InvalidIntent{})
	})

	t.Run("handles malformed receiver address", func(t *testing.T) {
		t.Parallel()

		operations := transferOperations(t)
		operations[1].AccountID.Address = "not-an-address"

		_, err := tr.DeriveTransfer(operations)

		assert.Error(t, err)
		assert.ErrorAs(t, err, &failure.InvalidIntent{})
	})
}
