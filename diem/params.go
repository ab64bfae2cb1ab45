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

package diem

const (
	// Blockchain is the blockchain field of every network identifier served
	// by this proxy.
	Blockchain = "diem"

	// Symbol and Decimals describe the one currency the construction
	// pipeline supports.
	Symbol   = "Coin1"
	Decimals = 6

	// OperationSent and OperationReceived are the two operation types that
	// make up a peer-to-peer transfer.
	OperationSent     = "sentpayment"
	OperationReceived = "receivedpayment"

	// StatusExecuted is the only operation status that counts as successful.
	StatusExecuted = "executed"
)

// ChainIDs maps the named networks the proxy can serve to their on-chain
// identifiers.
var ChainIDs = map[string]uint8{
	"mainnet":    1,
	"testnet":    2,
	"devnet":     3,
	"testing":    4,
	"premainnet": 5,
}

// VMStatuses lists the execution statuses the Diem VM can assign to a
// committed transaction.
var VMStatuses = []string{
	StatusExecuted,
	"out-of-gas",
	"move-abort",
	"execution-failure",
	"verification-error",
	"deserialization-error",
	"publishing-failure",
	"miscellaneous-error",
}

// OperationTypes lists all operation types that can show up when reading
// chain data. Only sentpayment and receivedpayment are accepted when
// constructing transactions.
// NOTE: sentfee and receivedfee are synthesized for transaction fees, which
// are not emitted as chain events.
var OperationTypes = []string{
	"burn",
	"cancelburn",
	"mint",
	"to_lbr_exchange_rate_update",
	"preburn",
	OperationReceived,
	OperationSent,
	"upgrade",
	"newepoch",
	"newblock",
	"createaccount",
	"unknown",
	"sentfee",
	"receivedfee",
}
