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

// PreprocessRequest implements the request schema for
// /construction/preprocess.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-8
type PreprocessRequest struct {
	NetworkID  identifier.Network `json:"network_identifier"`
	Operations []object.Operation `json:"operations"`
}

// PreprocessResponse implements the response schema for
// /construction/preprocess.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-8
type PreprocessResponse struct {
	Options object.Options `json:"options"`
}

// Preprocess implements the /construction/preprocess endpoint of the
// Rosetta Construction API. It extracts the transfer intent from the given
// operations and returns the options the metadata endpoint needs to fetch
// on-chain state for the sender.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionpreprocess
func (c *Construction) Preprocess(ctx echo.Context) error {

	var req PreprocessRequest
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

	res := PreprocessResponse{
		Options: object.Options{
			SenderAddress: transfer.Sender.Hex(),
		},
	}

	return ctx.JSON(statusOK, res)
}
