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

package identifier

// Network specifies which network a particular object is associated with. The
// blockchain field is always set to `diem`, while the network field carries
// the named chain the proxy was started against (`testnet`, `mainnet`, ...).
type Network struct {
	Blockchain string `json:"blockchain"`
	Network    string `json:"network"`
}
