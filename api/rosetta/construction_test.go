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

package rosetta_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/diem/rosetta-proxy/api/rosetta"
	"github.com/diem/rosetta-proxy/diem"
	"github.com/diem/rosetta-proxy/rosetta/configuration"
	"github.com/diem/rosetta-proxy/rosetta/failure"
	"github.com/diem/rosetta-proxy/rosetta/identifier"
	"github.com/diem/rosetta-proxy/rosetta/object"
	"github.com/diem/rosetta-proxy/rosetta/transactor"
	"github.com/diem/rosetta-proxy/testing/mocks"
)

func testContext(t *testing.T, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	return ctx, rec
}

func baselineConstruction(t *testing.T) (*api.Construction, *mocks.Transactor, *mocks.Retriever) {
	t.Helper()

	config, err := configuration.New("testnet")
	require.NoError(t, err)

	transact := mocks.BaselineTransactor(t)
	retrieve := mocks.BaselineRetriever(t)
	construction := api.NewConstruction(config, transact, retrieve)

	return construction, transact, retrieve
}

// assertRosettaError checks that the handler failed with the given HTTP
// status and Rosetta error code.
func assertRosettaError(t *testing.T, err error, status int, code uint) {
	t.Helper()

	require.Error(t, err)

	echoErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, status, echoErr.Code)

	rosettaErr, ok := echoErr.Message.(api.Error)
	require.True(t, ok)
	assert.Equal(t, code, rosettaErr.Code)
}

func TestConstruction_Derive(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		construction, _, _ := baselineConstruction(t)

		ctx, rec := testContext(t, api.DeriveRequest{
			NetworkID: mocks.GenericNetwork,
			PublicKey: object.PublicKey{HexBytes: "aa", CurveType: "edwards25519"},
		})

		err := construction.Derive(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res api.DeriveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, mocks.GenericAccountID, res.AccountID)
	})

	t.Run("handles missing public key", func(t *testing.T) {
		t.Parallel()

		construction, _, _ := baselineConstruction(t)

		ctx, _ := testContext(t, api.DeriveRequest{
			NetworkID: mocks.GenericNetwork,
		})

		err := construction.Derive(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorInvalidFormat.Code)
	})

	t.Run("handles wrong network", func(t *testing.T) {
		t.Parallel()

		construction, _, _ := baselineConstruction(t)

		ctx, _ := testContext(t, api.DeriveRequest{
			NetworkID: identifier.Network{Blockchain: "diem", Network: "mainnet"},
			PublicKey: object.PublicKey{HexBytes: "aa", CurveType: "edwards25519"},
		})

		err := construction.Derive(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorInvalidNetwork.Code)
	})

	t.Run("handles malformed key", func(t *testing.T) {
		t.Parallel()

		construction, transact, _ := baselineConstruction(t)
		transact.DeriveAccountFunc = func(object.PublicKey) (identifier.Account, error) {
			return identifier.Account{}, failure.InvalidSerialization{
				Description: failure.NewDescription("could not decode public key hex"),
				Kind:        "Ed25519PublicKey",
			}
		}

		ctx, _ := testContext(t, api.DeriveRequest{
			NetworkID: mocks.GenericNetwork,
			PublicKey: object.PublicKey{HexBytes: "zz", CurveType: "edwards25519"},
		})

		err := construction.Derive(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorInvalidSerialization.Code)
	})
}

func TestConstruction_Preprocess(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		construction, transact, _ := baselineConstruction(t)
		transact.DeriveTransferFunc = func(operations []object.Operation) (transactor.Transfer, error) {
			assert.Equal(t, mocks.GenericOperations, operations)
			sender, err := diem.ParseAddress(mocks.GenericAddress)
			require.NoError(t, err)
			return transactor.Transfer{Sender: sender}, nil
		}

		ctx, rec := testContext(t, api.PreprocessRequest{
			NetworkID:  mocks.GenericNetwork,
			Operations: mocks.GenericOperations,
		})

		err := construction.Preprocess(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res api.PreprocessResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, mocks.GenericAddress, res.Options.SenderAddress)
	})

	t.Run("handles invalid operations", func(t *testing.T) {
		t.Parallel()

		construction, transact, _ := baselineConstruction(t)
		transact.DeriveTransferFunc = func([]object.Operation) (transactor.Transfer, error) {
			return transactor.Transfer{}, failure.InvalidOperations{
				Description: failure.NewDescription("invalid number of operations"),
				Want:        2,
				Have:        1,
			}
		}

		ctx, _ := testContext(t, api.PreprocessRequest{
			NetworkID: mocks.GenericNetwork,
		})

		err := construction.Preprocess(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorInvalidIntent.Code)
	})
}

func TestConstruction_Metadata(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		construction, _, retrieve := baselineConstruction(t)
		retrieve.AccountMetadataFunc = func(address string) (object.Metadata, error) {
			assert.Equal(t, mocks.GenericAddress, address)
			return mocks.GenericAccountMetadata, nil
		}

		ctx, rec := testContext(t, api.MetadataRequest{
			NetworkID: mocks.GenericNetwork,
			Options:   object.Options{SenderAddress: mocks.GenericAddress},
		})

		err := construction.Metadata(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res api.MetadataResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, mocks.GenericAccountMetadata, res.Metadata)
	})

	t.Run("handles unknown account", func(t *testing.T) {
		t.Parallel()

		construction, _, retrieve := baselineConstruction(t)
		retrieve.AccountMetadataFunc = func(string) (object.Metadata, error) {
			return object.Metadata{}, failure.UnknownAccount{
				Description: failure.NewDescription("account does not exist on chain"),
				Address:     mocks.GenericAddress,
			}
		}

		ctx, _ := testContext(t, api.MetadataRequest{
			NetworkID: mocks.GenericNetwork,
			Options:   object.Options{SenderAddress: mocks.GenericAddress},
		})

		err := construction.Metadata(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorUnknownAccount.Code)
	})

	t.Run("handles short sender address", func(t *testing.T) {
		t.Parallel()

		construction, _, _ := baselineConstruction(t)

		ctx, _ := testContext(t, api.MetadataRequest{
			NetworkID: mocks.GenericNetwork,
			Options:   object.Options{SenderAddress: "abcdef"},
		})

		err := construction.Metadata(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorInvalidFormat.Code)
	})
}

func TestConstruction_Payloads(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		construction, _, _ := baselineConstruction(t)

		ctx, rec := testContext(t, api.PayloadsRequest{
			NetworkID:  mocks.GenericNetwork,
			Operations: mocks.GenericOperations,
			Metadata:   mocks.GenericAccountMetadata,
		})

		err := construction.Payloads(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res api.PayloadsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, mocks.GenericPayloadHex, res.UnsignedTransaction)
		require.Len(t, res.Payloads, 1)
		assert.Equal(t, mocks.GenericSigningPayload, res.Payloads[0])
	})
}

func TestConstruction_Parse(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		construction, transact, _ := baselineConstruction(t)
		transact.ParseTransactionFunc = func(payload string, signed bool) ([]object.Operation, []identifier.Account, error) {
			assert.Equal(t, mocks.GenericTransactionHex, payload)
			assert.True(t, signed)
			return mocks.GenericOperations, []identifier.Account{mocks.GenericAccountID}, nil
		}

		ctx, rec := testContext(t, api.ParseRequest{
			NetworkID:   mocks.GenericNetwork,
			Signed:      true,
			Transaction: mocks.GenericTransactionHex,
		})

		err := construction.Parse(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res api.ParseResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, mocks.GenericOperations, res.Operations)
		assert.Equal(t, []identifier.Account{mocks.GenericAccountID}, res.SignerIDs)
	})

	t.Run("handles invalid signature", func(t *testing.T) {
		t.Parallel()

		construction, transact, _ := baselineConstruction(t)
		transact.ParseTransactionFunc = func(string, bool) ([]object.Operation, []identifier.Account, error) {
			return nil, nil, failure.InvalidSignature{
				Description: failure.NewDescription("transaction signature is not valid"),
			}
		}

		ctx, _ := testContext(t, api.ParseRequest{
			NetworkID:   mocks.GenericNetwork,
			Signed:      true,
			Transaction: mocks.GenericTransactionHex,
		})

		err := construction.Parse(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorInvalidSignature.Code)
	})

	t.Run("handles missing transaction", func(t *testing.T) {
		t.Parallel()

		construction, _, _ := baselineConstruction(t)

		ctx, _ := testContext(t, api.ParseRequest{
			NetworkID: mocks.GenericNetwork,
		})

		err := construction.Parse(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorInvalidFormat.Code)
	})
}

func TestConstruction_Combine(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		construction, _, _ := baselineConstruction(t)

		ctx, rec := testContext(t, api.CombineRequest{
			NetworkID:           mocks.GenericNetwork,
			UnsignedTransaction: mocks.GenericTransactionHex,
			Signatures:          []object.Signature{{HexBytes: "aa"}},
		})

		err := construction.Combine(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res api.CombineResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, mocks.GenericPayloadHex, res.SignedTransaction)
	})

	t.Run("handles wrong signature count", func(t *testing.T) {
		t.Parallel()

		construction, transact, _ := baselineConstruction(t)
		transact.AttachSignaturesFunc = func(string, []object.Signature) (string, error) {
			return "", failure.InvalidSignatureCount{
				Description: failure.NewDescription("invalid number of signatures"),
				Want:        1,
				Have:        0,
			}
		}

		ctx, _ := testContext(t, api.CombineRequest{
			NetworkID:           mocks.GenericNetwork,
			UnsignedTransaction: mocks.GenericTransactionHex,
		})

		err := construction.Combine(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorInvalidSignatureCount.Code)
	})
}

func TestConstruction_Hash(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		construction, _, _ := baselineConstruction(t)

		ctx, rec := testContext(t, api.HashRequest{
			NetworkID:         mocks.GenericNetwork,
			SignedTransaction: mocks.GenericTransactionHex,
		})

		err := construction.Hash(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res api.HashResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, mocks.GenericTransactionID, res.TransactionID)
	})
}

func TestConstruction_Submit(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		construction, _, _ := baselineConstruction(t)

		ctx, rec := testContext(t, api.SubmitRequest{
			NetworkID:         mocks.GenericNetwork,
			SignedTransaction: mocks.GenericTransactionHex,
		})

		err := construction.Submit(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res api.SubmitResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, mocks.GenericTransactionID, res.TransactionID)
	})

	t.Run("handles gateway failure", func(t *testing.T) {
		t.Parallel()

		construction, transact, _ := baselineConstruction(t)
		transact.SubmitTransactionFunc = func(string) (identifier.Transaction, error) {
			return identifier.Transaction{}, failure.GatewayFailure{
				Description: failure.NewDescription("could not submit transaction"),
			}
		}

		ctx, _ := testContext(t, api.SubmitRequest{
			NetworkID:         mocks.GenericNetwork,
			SignedTransaction: mocks.GenericTransactionHex,
		})

		err := construction.Submit(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorGateway.Code)
	})
}
