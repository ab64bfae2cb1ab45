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

// GatewayFailure wraps an error from the chain gateway. Gateway errors are
// not reinterpreted; the failed request is reported as-is to the caller.
type GatewayFailure struct {
	Description Description
}

func (g GatewayFailure) Error() string {
	return g.Description.String()
}
