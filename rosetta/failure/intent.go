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

// InvalidOperations is returned when the number of operations in a request
// does not match the two operations a peer-to-peer transfer is made of.
type InvalidOperations struct {
	Description Description
	Want        uint
	Have        uint
}

func (i InvalidOperations) Error() string {
	return i.Description.String()
}

// InvalidIntent is returned when a pair of operations does not reduce to a
// valid transfer intent: wrong operation types, missing accounts or
// amounts, mismatched currencies, unparseable values, a credit on the
// sender side, amounts that do not reconcile, or malformed addresses.
type InvalidIntent struct {
	Description Description
}

func (i InvalidIntent) Error() string {
	return i.Description.String()
}
