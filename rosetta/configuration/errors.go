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

package configuration

import (
	"github.com/diem/rosetta-proxy/rosetta/meta"
)

// Error definitions for all errors the API can return. The codes and
// messages are stable; they are advertised on the /network/options endpoint
// and must not be reused or renumbered.
var (
	ErrorInternal = meta.ErrorDefinition{
		Code:      1,
		Message:   "internal error",
		Retriable: false,
	}
	ErrorInvalidEncoding = meta.ErrorDefinition{
		Code:      2,
		Message:   "invalid request encoding",
		Retriable: false,
	}
	ErrorInvalidFormat = meta.ErrorDefinition{
		Code:      3,
		Message:   "invalid request format",
		Retriable: false,
	}
	ErrorInvalidNetwork = meta.ErrorDefinition{
		Code:      4,
		Message:   "invalid network identifier",
		Retriable: false,
	}
	ErrorUnknownAccount = meta.ErrorDefinition{
		Code:      5,
		Message:   "account not found",
		Retriable: true,
	}
	ErrorHistoricBalance = meta.ErrorDefinition{
		Code:      6,
		Message:   "historical balance lookup not supported",
		Retriable: false,
	}
	ErrorInvalidIntent = meta.ErrorDefinition{
		Code:      7,
		Message:   "invalid transfer operations",
		Retriable: false,
	}
	ErrorInvalidSignature = meta.ErrorDefinition{
		Code:      8,
		Message:   "invalid signature",
		Retriable: false,
	}
	ErrorInvalidSignatureType = meta.ErrorDefinition{
		Code:      9,
		Message:   "invalid signature or curve type",
		Retriable: false,
	}
	ErrorInvalidSignatureCount = meta.ErrorDefinition{
		Code:      10,
		Message:   "invalid number of signatures",
		Retriable: false,
	}
	ErrorUnknownCurrency = meta.ErrorDefinition{
		Code:      11,
		Message:   "unknown currency",
		Retriable: false,
	}
	ErrorInvalidScript = meta.ErrorDefinition{
		Code:      12,
		Message:   "invalid transaction script",
		Retriable: false,
	}
	ErrorInvalidPayload = meta.ErrorDefinition{
		Code:      13,
		Message:   "invalid transaction payload",
		Retriable: false,
	}
	ErrorInvalidSerialization = meta.ErrorDefinition{
		Code:      14,
		Message:   "deserialization failed",
		Retriable: false,
	}
	ErrorGateway = meta.ErrorDefinition{
		Code:      15,
		Message:   "gateway request failed",
		Retriable: true,
	}
)
