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
	"encoding/hex"
	"fmt"
	"time"

	"github.com/diem/client-sdk-go/diemtypes"
	"github.com/diem/client-sdk-go/stdlib"

	"github.com/diem/rosetta-proxy/diem"
	"github.com/diem/rosetta-proxy/rosetta/failure"
	"github.com/diem/rosetta-proxy/rosetta/identifier"
	"github.com/diem/rosetta-proxy/rosetta/object"
)

const (
	requiredOperations = 2 // transfers are made of two operations (debit & credit)
	requiredSignatures = 1 // transactions carry exactly one signature

	// Signature scheme markers as defined by the Rosetta specification.
	signatureEd25519 = "ed25519"
	curveEdwards25519 = "edwards25519"

	// Fixed gas policy for constructed transactions.
	maxGasAmount = 10_000
	gasUnitPrice = 0

	// Constructed transactions expire shortly after creation.
	expiryWindow = 10 * time.Second
)

// Submitter can send a signed transaction to the chain.
type Submitter interface {
	Submit(signed *diemtypes.SignedTransaction) error
}

// Transactor implements the construction pipeline: it derives addresses
// and transfer intents, assembles and serializes raw transactions, derives
// signing payloads, reattaches signatures, decodes transactions back into
// operations, computes transaction identifiers and submits signed
// transactions. It holds no per-request state.
type Transactor struct {
	submit Submitter
}

// New creates a new transactor that submits transactions through the given
// submitter.
func New(submit Submitter) *Transactor {
	t := Transactor{
		submit: submit,
	}
	return &t
}

// DeriveAccount computes the account identifier controlled by the given
// public key.
func (t *Transactor) DeriveAccount(key object.PublicKey) (identifier.Account, error) {

	publicKey, err := hex.DecodeString(key.HexBytes)
	if err != nil {
		return identifier.Account{}, failure.InvalidSerialization{
			Description: failure.NewDescription("could not decode public key hex",
				failure.WithErr(err)),
			Kind: "Ed25519PublicKey",
		}
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return identifier.Account{}, failure.InvalidSerialization{
			Description: failure.NewDescription("invalid public key length",
				failure.WithInt("have_length", len(publicKey)),
				failure.WithInt("want_length", ed25519.PublicKeySize)),
			Kind: "Ed25519PublicKey",
		}
	}

	account := identifier.Account{
		Address: diem.DeriveAddress(publicKey),
	}

	return account, nil
}

// CompileTransaction assembles the unsigned raw transaction for the given
// transfer and construction metadata and serializes it to canonical bytes,
// returned as hex. The caller carries these bytes between stages; the
// signing payload is later derived from the exact same bytes.
func (t *Transactor) CompileTransaction(transfer Transfer, metadata object.Metadata) (string, error) {

	script := stdlib.EncodePeerToPeerWithMetadataScript(
		diem.CurrencyTag(transfer.Currency),
		transfer.Receiver,
		transfer.Amount,
		nil,
		nil,
	)

	expiry := time.Now().Add(expiryWindow).Unix()
	rawTx := diemtypes.RawTransaction{
		Sender:                  transfer.Sender,
		SequenceNumber:          metadata.SequenceNumber,
		Payload:                 &diemtypes.TransactionPayload__Script{Value: script},
		MaxGasAmount:            maxGasAmount,
		GasUnitPrice:            gasUnitPrice,
		GasCurrencyCode:         transfer.Currency,
		ExpirationTimestampSecs: uint64(expiry),
		ChainId:                 diemtypes.ChainId(metadata.ChainID),
	}

	data, err := rawTx.BcsSerialize()
	if err != nil {
		return "", fmt.Errorf("could not serialize raw transaction: %w", err)
	}

	return hex.EncodeToString(data), nil
}

// SigningPayload derives the exact byte sequence that must be signed to
// authorize the given unsigned transaction. The bytes to sign are the
// domain-separation seed followed by the canonical transaction bytes,
// unchanged from the input.
func (t *Transactor) SigningPayload(unsigned string) (object.SigningPayload, error) {

	data, rawTx, err := t.decodeRawTransaction(unsigned)
	if err != nil {
		return object.SigningPayload{}, err
	}

	payload := object.SigningPayload{
		Address:       rawTx.Sender.Hex(),
		HexBytes:      hex.EncodeToString(diem.SigningMessage(data)),
		SignatureType: signatureEd25519,
	}

	return payload, nil
}

// AttachSignatures combines an unsigned transaction with a caller-supplied
// signature into a signed transaction, returned as canonical bytes in hex.
// Exactly one Ed25519 signature over the Edwards25519 curve is accepted.
// The signature is not cryptographically verified here; verification
// happens when the signed transaction is parsed.
func (t *Transactor) AttachSignatures(unsigned string, signatures []object.Signature) (string, error) {

	_, rawTx, err := t.decodeRawTransaction(unsigned)
	if err != nil {
		return "", err
	}

	if len(signatures) != requiredSignatures {
		return "", failure.InvalidSignatureCount{
			Description: failure.NewDescription("invalid number of signatures"),
			Want:        requiredSignatures,
			Have:        uint(len(signatures)),
		}
	}

	signature := signatures[0]
	if signature.SignatureType != signatureEd25519 || signature.PublicKey.CurveType != curveEdwards25519 {
		return "", failure.InvalidSignatureType{
			Description: failure.NewDescription("unsupported signature scheme",
				failure.WithString("have_signature_type", signature.SignatureType),
				failure.WithString("have_curve_type", signature.PublicKey.CurveType),
				failure.WithString("want_signature_type", signatureEd25519),
				failure.WithString("want_curve_type", curveEdwards25519),
			),
		}
	}

	publicKey, err := hex.DecodeString(signature.PublicKey.HexBytes)
	if err != nil || len(publicKey) != ed25519.PublicKeySize {
		return "", failure.InvalidSerialization{
			Description: failure.NewDescription("could not decode public key"),
			Kind:        "Ed25519PublicKey",
		}
	}
	sigBytes, err := hex.DecodeString(signature.HexBytes)
	if err != nil || len(sigBytes) != ed25519.SignatureSize {
		return "", failure.InvalidSerialization{
			Description: failure.NewDescription("could not decode signature"),
			Kind:        "Ed25519Signature",
		}
	}

	signedTx := diemtypes.SignedTransaction{
		RawTxn: *rawTx,
		Authenticator: &diemtypes.TransactionAuthenticator__Ed25519{
			PublicKey: diemtypes.Ed25519PublicKey(publicKey),
			Signature: diemtypes.Ed25519Signature(sigBytes),
		},
	}

	data, err := signedTx.BcsSerialize()
	if err != nil {
		return "", fmt.Errorf("could not serialize signed transaction: %w", err)
	}

	return hex.EncodeToString(data), nil
}

// TransactionIdentifier computes the canonical transaction identifier of a
// signed transaction. Identical signed bytes always yield the identical
// identifier.
func (t *Transactor) TransactionIdentifier(signed string) (identifier.Transaction, error) {

	signedTx, err := t.decodeSignedTransaction(signed)
	if err != nil {
		return identifier.Transaction{}, err
	}

	hash, err := diem.TransactionHash(signedTx)
	if err != nil {
		return identifier.Transaction{}, fmt.Errorf("could not hash transaction: %w", err)
	}

	return identifier.Transaction{Hash: hash}, nil
}

// SubmitTransaction sends a signed transaction to the chain and returns its
// transaction identifier.
func (t *Transactor) SubmitTransaction(signed string) (identifier.Transaction, error) {

	signedTx, err := t.decodeSignedTransaction(signed)
	if err != nil {
		return identifier.Transaction{}, err
	}

	err = t.submit.Submit(signedTx)
	if err != nil {
		return identifier.Transaction{}, failure.GatewayFailure{
			Description: failure.NewDescription("could not submit transaction",
				failure.WithErr(err)),
		}
	}

	hash, err := diem.TransactionHash(signedTx)
	if err != nil {
		return identifier.Transaction{}, fmt.Errorf("could not hash transaction: %w", err)
	}

	return identifier.Transaction{Hash: hash}, nil
}

func (t *Transactor) decodeRawTransaction(payload string) ([]byte, *diemtypes.RawTransaction, error) {

	data, err := hex.DecodeString(payload)
	if err != nil {
		return nil, nil, failure.InvalidSerialization{
			Description: failure.NewDescription("could not decode transaction hex",
				failure.WithErr(err)),
			Kind: "hex",
		}
	}

	rawTx, err := diemtypes.BcsDeserializeRawTransaction(data)
	if err != nil {
		return nil, nil, failure.InvalidSerialization{
			Description: failure.NewDescription("could not deserialize raw transaction",
				failure.WithErr(err)),
			Kind: "RawTransaction",
		}
	}

	return data, &rawTx, nil
}

func (t *Transactor) decodeSignedTransaction(payload string) (*diemtypes.SignedTransaction, error) {

	data, err := hex.DecodeString(payload)
	if err != nil {
		return nil, failure.InvalidSerialization{
			Description: failure.NewDescription("could not decode transaction hex",
				failure.WithErr(err)),
			Kind: "hex",
		}
	}

	signedTx, err := diemtypes.BcsDeserializeSignedTransaction(data)
	if err != nil {
		return nil, failure.InvalidSerialization{
			Description: failure.NewDescription("could not deserialize signed transaction",
				failure.WithErr(err)),
			Kind: "SignedTransaction",
		}
	}

	return &signedTx, nil
}
