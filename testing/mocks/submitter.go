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

package mocks

import (
	"testing"

	"github.com/diem/client-sdk-go/diemtypes"
)

type Submitter struct {
	SubmitFunc func(signed *diemtypes.SignedTransaction) error
}

func BaselineSubmitter(t *testing.T) *Submitter {
	t.Helper()

	s := Submitter{
		SubmitFunc: func(*diemtypes.SignedTransaction) error {
			return nil
		},
	}

	return &s
}

func (s *Submitter) Submit(signed *diemtypes.SignedTransaction) error {
	return s.SubmitFunc(signed)
}
