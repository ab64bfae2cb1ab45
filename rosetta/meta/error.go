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

package meta

// ErrorDefinition is the static part of a Rosetta API error. The code,
// message and retriable flag never change for a given error kind, which
// allows the full catalog to be advertised on the /network/options endpoint.
// See https://www.rosetta-api.org/docs/models/Error.html
type ErrorDefinition struct {
	Code      uint   `json:"code"`
	Message   string `json:"message"`
	Retriable bool   `json:"retriable"`
}
