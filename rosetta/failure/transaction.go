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

// UnknownCurrency is returned when a decoded transaction moves a currency
// other than the one supported currency type.
type UnknownCurrency struct {
	Description Description
	Symbol      string
}

func (u UnknownCurrency) Error() string {
	return u.Description.String()
}

// InvalidScript is returned when a transaction script is not a
// peer-to-peer transfer with metadata.
type InvalidScript struct {
	Description Description
}

func (i InvalidScript) Error() string {
	return i.Description.String()
}

// InvalidPayload is returned when a transaction payload is not a script
// invocation at all, for example a module publication or a write set.
type InvalidPayload struct {
	Description Description
}

func (i InvalidPayload) Error() string {
	return i.Description.String()
}

// InvalidSerialization is returned when a binary or hexadecimal encoding
// cannot be decoded into the expected type. Kind names that type.
type InvalidSerialization struct {
	Description Description
	Kind        string
}

func (i InvalidSerialization) Error() string {
	return i.Description.String()
}
