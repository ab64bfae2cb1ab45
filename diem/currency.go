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
	"github.com/diem/client-sdk-go/diemtypes"
)

// Currency types live as struct definitions under the core code account at
// address 0x1, with the module and struct both named after the symbol.
const coreCodeAddress = "00000000000000000000000000000001"

// CurrencyTag returns the Move type tag for the currency with the given
// symbol.
func CurrencyTag(symbol string) diemtypes.TypeTag {
	return &diemtypes.TypeTag__Struct{
		Value: diemtypes.StructTag{
			Address:    diemtypes.MustMakeAccountAddress(coreCodeAddress),
			Module:     diemtypes.Identifier(symbol),
			Name:       diemtypes.Identifier(symbol),
			TypeParams: []diemtypes.TypeTag{},
		},
	}
}

// CurrencySymbol extracts the currency symbol from a Move type tag, if the
// tag refers to a currency type under the core code account. The second
// return value reports whether it does.
func CurrencySymbol(tag diemtypes.TypeTag) (string, bool) {
	st, ok := tag.(*diemtypes.TypeTag__Struct)
	if !ok {
		return "", false
	}
	core := diemtypes.MustMakeAccountAddress(coreCodeAddress)
	if st.Value.Address != core {
		return "", false
	}
	if st.Value.Module != st.Value.Name {
		return "", false
	}
	return string(st.Value.Name), true
}
