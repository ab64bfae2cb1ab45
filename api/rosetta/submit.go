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
)

// SubmitRequest implements the request schema for /construction/submit.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-9
type SubmitRequest struct {
	NetworkID         identifier.Network `json:"network_identifier"`
	SignedTransaction string             `json:"signed_transaction"`
}

// SubmitResponse implements the response schema for /construction/submit.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-9
type SubmitResponse struct {
	TransactionID identifier.Transaction `json:"transaction_identifier"`
}

// Submit implements the /construction/submit endpoint of the Rosetta
// Construction API. It sends the signed transaction to the chain and
// returns its transaction identifier.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionsubmit
func (c *Construction) Submit(ctx echo.Context) error {

	var req SubmitRequest
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
	if req.SignedTransaction == "" {
		return echo.NewHTTPError(statusBadRequest, invalidFormat("signed transaction missing"))
	}

	err = c.config.Check(req.NetworkID)
	var netErr failure.InvalidNetwork
	if errors.As(err, &netErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidNetwork(netErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	transaction, err := c.transact.SubmitTransaction(req.SignedTransaction)
	var serErr failure.InvalidSerialization
	if errors.As(err, &serErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidSerialization(serErr))
	}
	var gwErr failure.GatewayFailure
	if errors.As(err, &gwErr) {
		return echo.NewHTTPError(statusInternalServerError, gatewayError(gwErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	res := SubmitResponse{
		TransactionID: transaction,
	}

	return ctx.JSON(statusOK, res)
}
