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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/diem/rosetta-proxy/api/rosetta"
	"github.com/diem/rosetta-proxy/rosetta/configuration"
	"github.com/diem/rosetta-proxy/rosetta/failure"
	"github.com/diem/rosetta-proxy/rosetta/identifier"
	"github.com/diem/rosetta-proxy/rosetta/object"
	"github.com/diem/rosetta-proxy/testing/mocks"
)

func baselineData(t *testing.T) (*api.Data, *mocks.Retriever) {
	t.Helper()

	config, err := configuration.New("testnet")
	require.NoError(t, err)

	retrieve := mocks.BaselineRetriever(t)
	data := api.NewData(config, retrieve)

	return data, retrieve
}

func TestData_Networks(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		data, _ := baselineData(t)

		ctx, rec := testContext(t, struct{}{})

		err := data.Networks(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res api.NetworksResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, []identifier.Network{mocks.GenericNetwork}, res.NetworkIDs)
	})
}

func TestData_Options(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		data, _ := baselineData(t)

		ctx, rec := testContext(t, api.OptionsRequest{
			NetworkID: mocks.GenericNetwork,
		})

		err := data.Options(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res api.OptionsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, configuration.RosettaVersion, res.Version.RosettaVersion)
		assert.NotEmpty(t, res.Allow.Statuses)
		assert.NotEmpty(t, res.Allow.OperationTypes)
		assert.NotEmpty(t, res.Allow.Errors)
		assert.False(t, res.Allow.HistoricalBalanceLookup)
	})

	t.Run("handles wrong network", func(t *testing.T) {
		t.Parallel()

		data, _ := baselineData(t)

		ctx, _ := testContext(t, api.OptionsRequest{
			NetworkID: identifier.Network{Blockchain: "diem", Network: "mainnet"},
		})

		err := data.Options(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorInvalidNetwork.Code)
	})
}

func TestData_Status(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		data, _ := baselineData(t)

		ctx, rec := testContext(t, api.StatusRequest{
			NetworkID: mocks.GenericNetwork,
		})

		err := data.Status(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res api.StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, mocks.GenericBlock, res.CurrentBlockID)
		assert.Equal(t, mocks.GenericGenesis, res.GenesisBlockID)
		assert.Equal(t, mocks.GenericTimestamp, res.CurrentBlockTimestamp)
		assert.Empty(t, res.Peers)
	})

	t.Run("handles retriever failure", func(t *testing.T) {
		t.Parallel()

		data, retrieve := baselineData(t)
		retrieve.StatusFunc = func() (identifier.Block, int64, identifier.Block, error) {
			return identifier.Block{}, 0, identifier.Block{}, failure.GatewayFailure{
				Description: failure.NewDescription("could not get chain metadata"),
			}
		}

		ctx, _ := testContext(t, api.StatusRequest{
			NetworkID: mocks.GenericNetwork,
		})

		err := data.Status(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorGateway.Code)
	})
}

func TestData_Balance(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		data, _ := baselineData(t)

		ctx, rec := testContext(t, api.BalanceRequest{
			NetworkID: mocks.GenericNetwork,
			AccountID: mocks.GenericAccountID,
		})

		err := data.Balance(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var res api.BalanceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, mocks.GenericBlock, res.BlockID)
		assert.Equal(t, []object.Amount{mocks.GenericAmount}, res.Balances)
	})

	t.Run("rejects historic balance request", func(t *testing.T) {
		t.Parallel()

		data, _ := baselineData(t)

		ctx, _ := testContext(t, api.BalanceRequest{
			NetworkID: mocks.GenericNetwork,
			AccountID: mocks.GenericAccountID,
			BlockID:   &mocks.GenericBlock,
		})

		err := data.Balance(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorHistoricBalance.Code)
	})

	t.Run("handles short address", func(t *testing.T) {
		t.Parallel()

		data, _ := baselineData(t)

		ctx, _ := testContext(t, api.BalanceRequest{
			NetworkID: mocks.GenericNetwork,
			AccountID: identifier.Account{Address: "abcdef"},
		})

		err := data.Balance(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorInvalidFormat.Code)
	})

	t.Run("handles unknown account", func(t *testing.T) {
		t.Parallel()

		data, retrieve := baselineData(t)
		retrieve.BalancesFunc = func(identifier.Account) (identifier.Block, []object.Amount, error) {
			return identifier.Block{}, nil, failure.UnknownAccount{
				Description: failure.NewDescription("account does not exist on chain"),
				Address:     mocks.GenericAddress,
			}
		}

		ctx, _ := testContext(t, api.BalanceRequest{
			NetworkID: mocks.GenericNetwork,
			AccountID: mocks.GenericAccountID,
		})

		err := data.Balance(ctx)

		assertRosettaError(t, err, http.StatusInternalServerError, configuration.ErrorUnknownAccount.Code)
	})
}
