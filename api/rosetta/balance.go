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
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/diem/rosetta-proxy/rosetta/failure"
	"github.com/diem/rosetta-proxy/rosetta/identifier"
	"github.com/diem/rosetta-proxy/rosetta/object"
)

// BalanceRequest implements the request schema for /account/balance.
// See https://www.rosetta-api.org/docs/AccountApi.html#request
type BalanceRequest struct {
	NetworkID  identifier.Network    `json:"network_identifier"`
	AccountID  identifier.Account    `json:"account_identifier"`
	BlockID    *identifier.Block     `json:"block_identifier"`
	Currencies []identifier.Currency `json:"currencies"`
}

// BalanceResponse implements the response schema for /account/balance.
// See https://www.rosetta-api.org/docs/AccountApi.html#response
type BalanceResponse struct {
	BlockID  identifier.Block `json:"block_identifier"`
	Balances []object.Amount  `json:"balances"`
}

// Balance implements the /account/balance endpoint of the Rosetta Data
// API. Balances are only available at the current ledger state; requests
// that pin a block are rejected.
// See https://www.rosetta-api.org/docs/AccountApi.html#accountbalance
func (d *Data) Balance(ctx echo.Context) error {

	var req BalanceRequest
	err := ctx.Bind(&req)
	if err != nil {
		return echo.NewHTTPError(statusBadRequest, invalidEncoding(err))
	}

	if req.NetworkID.Blockchain == "" {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("network identifier blockchain missing"))
	}
	if req.NetworkID.Network == "" {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("network identifier network missing"))
	}
	if req.AccountID.Address == "" {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("account identifier address missing"))
	}
	if len(req.AccountID.Address) != hexAddressSize {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("account identifier address wrong length (have: %d, want: %d)", len(req.AccountID.Address), hexAddressSize))
	}
	if req.BlockID != nil {
		return echo.NewHTTPError(statusUnprocessableEntity, historicBalance())
	}

	err = d.config.Check(req.NetworkID)
	var netErr failure.InvalidNetwork
	if errors.As(err, &netErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidNetwork(netErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	block, balances, err := d.retrieve.Balances(req.AccountID)
	var accErr failure.UnknownAccount
	if errors.As(err, &accErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, unknownAccount(accErr))
	}
	var gwErr failure.GatewayFailure
	if errors.As(err, &gwErr) {
		return echo.NewHTTPError(statusInternalServerError, gatewayError(gwErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	res := BalanceResponse{
		BlockID:  block,
		Balances: balances,
	}

	return ctx.JSON(statusOK, res)
}
