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

// PayloadsRequest implements the request schema for /construction/payloads.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-6
type PayloadsRequest struct {
	NetworkID  identifier.Network `json:"network_identifier"`
	Operations []object.Operation `json:"operations"`
	Metadata   object.Metadata    `json:"metadata"`
}

// PayloadsResponse implements the response schema for
// /construction/payloads.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-6
type PayloadsResponse struct {
	UnsignedTransaction string                  `json:"unsigned_transaction"`
	Payloads            []object.SigningPayload `json:"payloads"`
}

// Payloads implements the /construction/payloads endpoint of the Rosetta
// Construction API. It assembles the unsigned transaction for the given
// operations and metadata, and returns the payload the sender must sign to
// authorize it.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionpayloads
func (c *Construction) Payloads(ctx echo.Context) error {

	var req PayloadsRequest
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

	err = c.config.Check(req.NetworkID)
	var netErr failure.InvalidNetwork
	if errors.As(err, &netErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidNetwork(netErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	transfer, err := c.transact.DeriveTransfer(req.Operations)
	var opsErr failure.InvalidOperations
	if errors.As(err, &opsErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidOperations(opsErr))
	}
	var intErr failure.InvalidIntent
	if errors.As(err, &intErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidIntent(intErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	unsigned, err := c.transact.CompileTransaction(transfer, req.Metadata)
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	payload, err := c.transact.SigningPayload(unsigned)
	var sErr failure.InvalidSerialization
	if errors.As(err, &sErr) {
		return echo.NewHTTPError(statusUnprocessableEntity, invalidSerialization(sErr))
	}
	if err != nil {
		return echo.NewHTTPError(statusInternalServerError, internal(err))
	}

	res := PayloadsResponse{
		UnsignedTransaction: unsigned,
		Payloads:            []object.SigningPayload{payload},
	}

	return ctx.JSON(statusOK, res)
}
