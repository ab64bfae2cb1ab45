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

package transactor

import (
	"github.com/diem/client-sdk-go/diemtypes"

	"github.com/diem/rosetta-proxy/diem"
	"github.com/diem/rosetta-proxy/rosetta/failure"
	"github.com/diem/rosetta-proxy/rosetta/object"
)

// Transfer is the canonical intent of a peer-to-peer payment, reduced from
// a pair of operations. It lives for the duration of a single request.
type Transfer struct {
	Sender   diemtypes.AccountAddress
	Receiver diemtypes.AccountAddress
	Amount   uint64
	Currency string
}

// DeriveTransfer reduces a list of operations to a transfer intent. The
// list must contain exactly one sentpayment and one receivedpayment
// operation, in either order, with accounts and amounts present, matching
// currencies and amounts that net to zero, the sent side being the debit.
func (t *Transactor) DeriveTransfer(operations []object.Operation) (Transfer, error) {

	if len(operations) != requiredOperations {
		return Transfer{}, failure.InvalidOperations{
			Description: failure.NewDescription("invalid number of operations"),
			Want:        requiredOperations,
			Have:        uint(len(operations)),
		}
	}

	// Identify the two sides by their type tag; the array order carries no
	// meaning.
	first, second := operations[0], operations[1]
	var send, receive object.Operation
	switch {
	case first.Type == diem.OperationSent && second.Type == diem.OperationReceived:
		send, receive = first, second
	case first.Type == diem.OperationReceived && second.Type == diem.OperationSent:
		send, receive = second, first
	default:
		return Transfer{}, failure.InvalidIntent{
			Description: failure.NewDescription("operations do not represent a transfer",
				failure.WithString("first_type", first.Type),
				failure.WithString("second_type", second.Type),
			),
		}
	}

	if send.AccountID == nil || send.Amount == nil || receive.AccountID == nil || receive.Amount == nil {
		return Transfer{}, failure.InvalidIntent{
			Description: failure.NewDescription("operation accounts or amounts missing"),
		}
	}

	if send.Amount.Currency.Symbol != receive.Amount.Currency.Symbol {
		return Transfer{}, failure.InvalidIntent{
			Description: failure.NewDescription("operation currencies do not match",
				failure.WithString("send_currency", send.Amount.Currency.Symbol),
				failure.WithString("receive_currency", receive.Amount.Currency.Symbol),
			),
		}
	}

	sendValue, err := ParseValue(send.Amount.Value)
	if err != nil {
		return Transfer{}, failure.InvalidIntent{
			Description: failure.NewDescription("could not parse send amount",
				failure.WithString("amount", send.Amount.Value),
				failure.WithErr(err),
			),
		}
	}
	receiveValue, err := ParseValue(receive.Amount.Value)
	if err != nil {
		return Transfer{}, failure.InvalidIntent{
			Description: failure.NewDescription("could not parse receive amount",
				failure.WithString("amount", receive.Amount.Value),
				failure.WithErr(err),
			),
		}
	}

	// The sender side must be the debit; sending a negative amount is not a
	// thing.
	if sendValue.Kind != KindDebit {
		return Transfer{}, failure.InvalidIntent{
			Description: failure.NewDescription("sender amount must be a debit",
				failure.WithString("amount", send.Amount.Value),
			),
		}
	}

	if !sendValue.Reconciles(receiveValue) {
		return Transfer{}, failure.InvalidIntent{
			Description: failure.NewDescription("send and receive amounts do not net to zero",
				failure.WithString("send_amount", send.Amount.Value),
				failure.WithString("receive_amount", receive.Amount.Value),
			),
		}
	}

	sender, err := diem.ParseAddress(send.AccountID.Address)
	if err != nil {
		return Transfer{}, failure.InvalidIntent{
			Description: failure.NewDescription("could not parse sender address",
				failure.WithString("address", send.AccountID.Address),
				failure.WithErr(err),
			),
		}
	}
	receiver, err := diem.ParseAddress(receive.AccountID.Address)
	if err != nil {
		return Transfer{}, failure.InvalidIntent{
			Description: failure.NewDescription("could not parse receiver address",
				failure.WithString("address", receive.AccountID.Address),
				failure.WithErr(err),
			),
		}
	}

	transfer := Transfer{
		Sender:   sender,
		Receiver: receiver,
		Amount:   sendValue.Magnitude,
		Currency: send.Amount.Currency.Symbol,
	}

	return transfer, nil
}
