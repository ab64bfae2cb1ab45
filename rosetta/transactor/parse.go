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
	"crypto/ed25519"
	"fmt"

	"github.com/diem/client-sdk-go/diemtypes"
	"github.com/diem/client-sdk-go/stdlib"

	"github.com/diem/rosetta-proxy/diem"
	"github.com/diem/rosetta-proxy/rosetta/failure"
	"github.com/diem/rosetta-proxy/rosetta/identifier"
	"github.com/diem/rosetta-proxy/rosetta/object"
)

// ParseTransaction decodes a previously constructed transaction back into
// the operations it would perform, so callers can confirm the transaction
// matches their original intent. In signed mode the transaction signature
// is verified and the sender is returned as the signer; in unsigned mode no
// signers are returned.
func (t *Transactor) ParseTransaction(payload string, signed bool) ([]object.Operation, []identifier.Account, error) {

	var rawTx *diemtypes.RawTransaction
	var signers []identifier.Account
	if signed {
		signedTx, err := t.decodeSignedTransaction(payload)
		if err != nil {
			return nil, nil, err
		}
		err = checkSignature(signedTx)
		if err != nil {
			return nil, nil, err
		}
		rawTx = &signedTx.RawTxn
		signers = []identifier.Account{{Address: rawTx.Sender.Hex()}}
	} else {
		_, decoded, err := t.decodeRawTransaction(payload)
		if err != nil {
			return nil, nil, err
		}
		rawTx = decoded
	}

	script, ok := rawTx.Payload.(*diemtypes.TransactionPayload__Script)
	if !ok {
		return nil, nil, failure.InvalidPayload{
			Description: failure.NewDescription("transaction payload is not a script"),
		}
	}

	call, err := stdlib.DecodeScript(&script.Value)
	if err != nil {
		return nil, nil, failure.InvalidScript{
			Description: failure.NewDescription("could not decode transaction script",
				failure.WithErr(err)),
		}
	}
	transfer, ok := call.(*stdlib.ScriptCall__PeerToPeerWithMetadata)
	if !ok {
		return nil, nil, failure.InvalidScript{
			Description: failure.NewDescription("transaction script is not a peer-to-peer transfer"),
		}
	}

	symbol, ok := diem.CurrencySymbol(transfer.Currency)
	if !ok || symbol != diem.Symbol {
		return nil, nil, failure.UnknownCurrency{
			Description: failure.NewDescription("transaction currency is not supported"),
			Symbol:      symbol,
		}
	}

	currency := identifier.Currency{
		Symbol:   diem.Symbol,
		Decimals: diem.Decimals,
	}
	sendID := identifier.Operation{Index: 0}
	operations := []object.Operation{
		{
			ID:        sendID,
			Type:      diem.OperationSent,
			AccountID: &identifier.Account{Address: rawTx.Sender.Hex()},
			Amount: &object.Amount{
				Value:    fmt.Sprintf("-%d", transfer.Amount),
				Currency: currency,
			},
		},
		{
			ID:         identifier.Operation{Index: 1},
			RelatedIDs: []identifier.Operation{sendID},
			Type:       diem.OperationReceived,
			AccountID:  &identifier.Account{Address: transfer.Payee.Hex()},
			Amount: &object.Amount{
				Value:    fmt.Sprintf("%d", transfer.Amount),
				Currency: currency,
			},
		},
	}

	return operations, signers, nil
}

// checkSignature verifies the authenticator of a signed transaction against
// the signing message of its raw transaction.
func checkSignature(signedTx *diemtypes.SignedTransaction) error {

	switch auth := signedTx.Authenticator.(type) {

	case *diemtypes.TransactionAuthenticator__Ed25519:

		data, err := signedTx.RawTxn.BcsSerialize()
		if err != nil {
			return fmt.Errorf("could not serialize raw transaction: %w", err)
		}

		publicKey := []byte(auth.PublicKey)
		if len(publicKey) != ed25519.PublicKeySize {
			return failure.InvalidSignature{
				Description: failure.NewDescription("invalid public key length",
					failure.WithInt("have_length", len(publicKey)),
					failure.WithInt("want_length", ed25519.PublicKeySize)),
			}
		}

		message := diem.SigningMessage(data)
		if !ed25519.Verify(ed25519.PublicKey(publicKey), message, []byte(auth.Signature)) {
			return failure.InvalidSignature{
				Description: failure.NewDescription("transaction signature is not valid"),
			}
		}

		return nil

	case *diemtypes.TransactionAuthenticator__MultiEd25519:

		return failure.InvalidSignatureType{
			Description: failure.NewDescription("multi-signature transactions are not supported"),
		}

	default:

		return failure.InvalidSignatureType{
			Description: failure.NewDescription("unknown transaction authenticator"),
		}
	}
}
