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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	t.Run("parses credit", func(t *testing.T) {
		t.Parallel()

		value, err := ParseValue("100")

		require.NoError(t, err)
		assert.Equal(t, KindCredit, value.Kind)
		assert.Equal(t, uint64(100), value.Magnitude)
	})

	t.Run("parses debit", func(t *testing.T) {
		t.Parallel()

		value, err := ParseValue("-100")

		require.NoError(t, err)
		assert.Equal(t, KindDebit, value.Kind)
		assert.Equal(t, uint64(100), value.Magnitude)
	})

	t.Run("parses zero", func(t *testing.T) {
		t.Parallel()

		value, err := ParseValue("0")

		require.NoError(t, err)
		assert.Equal(t, KindCredit, value.Kind)
		assert.Equal(t, uint64(0), value.Magnitude)
	})

	t.Run("handles empty string", func(t *testing.T) {
		t.Parallel()

		_, err := ParseValue("")

		assert.Error(t, err)
	})

	t.Run("handles lone minus sign", func(t *testing.T) {
		t.Parallel()

		_, err := ParseValue("-")

		assert.Error(t, err)
	})

	t.Run("handles non-numeric input", func(t *testing.T) {
		t.Parallel()

		_, err := ParseValue("one hundred")

		assert.Error(t, err)
	})

	t.Run("handles fractional input", func(t *testing.T) {
		t.Parallel()

		_, err := ParseValue("1.5")

		assert.Error(t, err)
	})
}

func TestValue_Reconciles(t *testing.T) {
	t.Run("opposite kinds with equal magnitude reconcile", func(t *testing.T) {
		t.Parallel()

		debit := Value{Kind: KindDebit, Magnitude: 100}
		credit := Value{Kind: KindCredit, Magnitude: 100}

		assert.True(t, debit.Reconciles(credit))
		assert.True(t, credit.Reconciles(debit))
	})

	t.Run("same kind does not reconcile", func(t *testing.T) {
		t.Parallel()

		first := Value{Kind: KindCredit, Magnitude: 100}
		second := Value{Kind: KindCredit, Magnitude: 100}

		assert.False(t, first.Reconciles(second))
	})

	t.Run("different magnitudes do not reconcile", func(t *testing.T) {
		t.Parallel()

		debit := Value{Kind: KindDebit, Magnitude: 100}
		credit := Value{Kind: KindCredit, Magnitude: 99}

		assert.False(t, debit.Reconciles(credit))
	})
}
