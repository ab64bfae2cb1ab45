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
	"fmt"

	"github.com/diem/rosetta-proxy/rosetta/configuration"
	"github.com/diem/rosetta-proxy/rosetta/failure"
	"github.com/diem/rosetta-proxy/rosetta/meta"
)

// Error represents an error as defined by the Rosetta API specification. It
// contains an error definition, which has an error code, error message and
// retriable flag that never change, as well as a description and a list of
// details to provide more granular error information.
// See: https://www.rosetta-api.org/docs/api_objects.html#error
type Error struct {
	meta.ErrorDefinition
	Description string                 `json:"description"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

func rosettaError(definition meta.ErrorDefinition, description failure.Description, extra ...failure.Field) Error {
	details := make(map[string]interface{})
	description.Fields.Iterate(func(key string, val interface{}) {
		details[key] = val
	})
	for _, field := range extra {
		details[field.Key] = field.Val
	}
	e := Error{
		ErrorDefinition: definition,
		Description:     description.Text,
		Details:         details,
	}
	return e
}

func internal(err error) Error {
	return rosettaError(
		configuration.ErrorInternal,
		failure.NewDescription(err.Error()),
	)
}

func invalidEncoding(err error) Error {
	return rosettaError(
		configuration.ErrorInvalidEncoding,
		failure.NewDescription("request does not contain valid JSON", failure.WithErr(err)),
	)
}

func invalidFormat(format string, args ...interface{}) Error {
	return rosettaError(
		configuration.ErrorInvalidFormat,
		failure.NewDescription(fmt.Sprintf(format, args...)),
	)
}

func invalidNetwork(fail failure.InvalidNetwork) Error {
	return rosettaError(
		configuration.ErrorInvalidNetwork,
		fail.Description,
		failure.Field{Key: "blockchain", Val: fail.Blockchain},
		failure.Field{Key: "network", Val: fail.Network},
	)
}

func unknownAccount(fail failure.UnknownAccount) Error {
	return rosettaError(
		configuration.ErrorUnknownAccount,
		fail.Description,
		failure.Field{Key: "address", Val: fail.Address},
	)
}

func historicBalance() Error {
	return rosettaError(
		configuration.ErrorHistoricBalance,
		failure.NewDescription("balances can only be retrieved at the current ledger state"),
	)
}

func invalidOperations(fail failure.InvalidOperations) Error {
	return rosettaError(
		configuration.ErrorInvalidIntent,
		fail.Description,
		failure.Field{Key: "want_operations", Val: fail.Want},
		failure.Field{Key: "have_operations", Val: fail.Have},
	)
}

func invalidIntent(fail failure.InvalidIntent) Error {
	return rosettaError(
		configuration.ErrorInvalidIntent,
		fail.Description,
	)
}

func invalidSignature(fail failure.InvalidSignature) Error {
	return rosettaError(
		configuration.ErrorInvalidSignature,
		fail.Description,
	)
}

func invalidSignatureType(fail failure.InvalidSignatureType) Error {
	return rosettaError(
		configuration.ErrorInvalidSignatureType,
		fail.Description,
	)
}

func invalidSignatureCount(fail failure.InvalidSignatureCount) Error {
	return rosettaError(
		configuration.ErrorInvalidSignatureCount,
		fail.Description,
		failure.Field{Key: "want_signatures", Val: fail.Want},
		failure.Field{Key: "have_signatures", Val: fail.Have},
	)
}

func unknownCurrency(fail failure.UnknownCurrency) Error {
	return rosettaError(
		configuration.ErrorUnknownCurrency,
		fail.Description,
		failure.Field{Key: "symbol", Val: fail.Symbol},
	)
}

func invalidScript(fail failure.InvalidScript) Error {
	return rosettaError(
		configuration.ErrorInvalidScript,
		fail.Description,
	)
}

func invalidPayload(fail failure.InvalidPayload) Error {
	return rosettaError(
		configuration.ErrorInvalidPayload,
		fail.Description,
	)
}

func invalidSerialization(fail failure.InvalidSerialization) Error {
	return rosettaError(
		configuration.ErrorInvalidSerialization,
		fail.Description,
		failure.Field{Key: "kind", Val: fail.Kind},
	)
}

func gatewayError(fail failure.GatewayFailure) Error {
	return rosettaError(
		configuration.ErrorGateway,
		fail.Description,
	)
}
