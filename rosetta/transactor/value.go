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

package transactor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind distinguishes the two sides of a transfer value.
type Kind uint8

const (
	// KindCredit is a value without a leading minus sign.
	KindCredit Kind = iota + 1
	// KindDebit is a value with a leading minus sign.
	KindDebit
)

// Value is the parsed form of a signed decimal amount string. It keeps the
// sign as an explicit variant and the magnitude as an unsigned integer, so
// sign handling stays in one place.
type Value struct {
	Kind      Kind
	Magnitude uint64
}

// ParseValue parses a signed decimal amount string. A leading minus sign
// denotes a debit, its absence a credit. Empty and non-numeric strings are
// rejected.
func ParseValue(text string) (Value, error) {

	if text == "" {
		return Value{}, errors.New("empty input")
	}

	kind := KindCredit
	number := text
	if trimmed := strings.TrimPrefix(text, "-"); trimmed != text {
		kind = KindDebit
		number = trimmed
	}

	magnitude, err := strconv.ParseUint(number, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("could not parse magnitude: %w", err)
	}

	v := Value{
		Kind:      kind,
		Magnitude: magnitude,
	}

	return v, nil
}

// Reconciles reports whether two values net to zero, which is the case
// exactly when one is a credit and the other a debit of the same magnitude.
// The order of the two values does not matter.
func (v Value) Reconciles(other Value) bool {
	credit := v.Kind == KindCredit && other.Kind == KindDebit
	debit := v.Kind == KindDebit && other.Kind == KindCredit
	return (credit || debit) && v.Magnitude == other.Magnitude
}
