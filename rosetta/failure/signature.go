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

package failure

// InvalidSignature is returned when a transaction signature does not verify
// against the canonical transaction bytes.
type InvalidSignature struct {
	Description Description
}

func (i InvalidSignature) Error() string {
	return i.Description.String()
}

// InvalidSignatureType is returned when a signature declares a signature
// scheme or curve other than Ed25519 on Edwards25519, or when a transaction
// carries a multi-signature authenticator.
type InvalidSignatureType struct {
	Description Description
}

func (i InvalidSignatureType) Error() string {
	return i.Description.String()
}

// InvalidSignatureCount is returned when a combine request does not carry
// exactly one signature.
type InvalidSignatureCount struct {
	Description Description
	Want        uint
	Have        uint
}

func (i InvalidSignatureCount) Error() string {
	return i.Description.String()
}
