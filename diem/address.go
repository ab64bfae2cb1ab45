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

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/diem/client-sdk-go/diemtypes"
)

// AddressLength is the size of a Diem account address in bytes.
const AddressLength = 16

// Single-key Ed25519 authentication scheme identifier, appended to the
// public key when computing the authentication key.
const schemeEd25519 = byte(0x00)

// DeriveAddress computes the account address controlled by the given
// Ed25519 public key. The authentication key is the SHA3-256 hash of the
// public key followed by the scheme identifier; the address is its last 16
// bytes, rendered as lower-case hex.
func DeriveAddress(publicKey []byte) string {
	hash := sha3.New256()
	hash.Write(publicKey)
	hash.Write([]byte{schemeEd25519})
	authKey := hash.Sum(nil)
	return hex.EncodeToString(authKey[len(authKey)-AddressLength:])
}

// ParseAddress converts the hexadecimal form of an account address into its
// canonical representation.
func ParseAddress(address string) (diemtypes.AccountAddress, error) {
	return diemtypes.MakeAccountAddress(address)
}
