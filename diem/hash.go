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
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/diem/client-sdk-go/diemtypes"
)

// Hashing in Diem is domain-separated: every hashable type mixes a fixed
// seed into the hash, so a signature over one type can never be replayed as
// a signature over another. The seed for a type is the SHA3-256 hash of its
// salt string.
func hashSeed(name string) []byte {
	hash := sha3.New256()
	hash.Write([]byte("DIEM::" + name))
	return hash.Sum(nil)
}

// SigningMessage returns the exact byte sequence an account must sign to
// authorize the given canonical raw transaction bytes. The raw bytes are
// used verbatim, so the signature binds to them bit-for-bit.
func SigningMessage(rawBytes []byte) []byte {
	seed := hashSeed("RawTransaction")
	return append(seed, rawBytes...)
}

// TransactionHash computes the canonical transaction identifier of a signed
// transaction, as it will appear on chain. The signed transaction is
// wrapped in the user-transaction variant of the top-level transaction type
// before hashing.
func TransactionHash(signed *diemtypes.SignedTransaction) (string, error) {
	tx := diemtypes.Transaction__UserTransaction{Value: *signed}
	data, err := tx.BcsSerialize()
	if err != nil {
		return "", fmt.Errorf("could not serialize transaction: %w", err)
	}

	hash := sha3.New256()
	hash.Write(hashSeed("Transaction"))
	hash.Write(data)

	return hex.EncodeToString(hash.Sum(nil)), nil
}
