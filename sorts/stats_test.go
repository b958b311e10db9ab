// Copyright 2025 go-simplesort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sorts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBubbleSortStats(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want Stats
	}{
		{"empty", []int{}, Stats{Passes: 1}},
		{"single", []int{1}, Stats{Passes: 1}},
		{"sorted", []int{1, 2, 3, 4, 5}, Stats{Passes: 1, Comparisons: 4}},
		{"reverse", []int{5, 4, 3, 2, 1}, Stats{Passes: 5, Comparisons: 20, Swaps: 10}},
		{"mixed", []int{5, 3, 8, 4, 2}, Stats{Passes: 5, Comparisons: 20, Swaps: 7}},
		{"equal", []int{7, 7, 7}, Stats{Passes: 1, Comparisons: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, st := BubbleSortStats(tt.in)
			assert.True(t, IsSorted(out))
			assert.Equal(t, tt.want, st)
		})
	}
}

func TestInsertionSortStats(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want Stats
	}{
		{"empty", []int{}, Stats{}},
		{"single", []int{1}, Stats{}},
		{"sorted", []int{1, 2, 3, 4, 5}, Stats{Passes: 4, Comparisons: 4}},
		{"reverse", []int{5, 4, 3, 2, 1}, Stats{Passes: 4, Comparisons: 10, Shifts: 10}},
		{"mixed", []int{5, 3, 8, 4, 2}, Stats{Passes: 4, Comparisons: 9, Shifts: 7}},
		{"equal", []int{7, 7, 7}, Stats{Passes: 2, Comparisons: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, st := InsertionSortStats(tt.in)
			assert.True(t, IsSorted(out))
			assert.Equal(t, tt.want, st)
		})
	}
}

// TestStatsMatchPlainSort checks the instrumented variants order data exactly
// like the plain ones.
func TestStatsMatchPlainSort(t *testing.T) {
	in := []float32{0.5, -3, 9, 9, 2, -3}

	plain := BubbleSort(append([]float32(nil), in...))
	counted, _ := BubbleSortStats(append([]float32(nil), in...))
	assert.Equal(t, plain, counted)

	plain = InsertionSort(append([]float32(nil), in...))
	counted, _ = InsertionSortStats(append([]float32(nil), in...))
	assert.Equal(t, plain, counted)
}

func TestStatsString(t *testing.T) {
	st := Stats{Passes: 1, Comparisons: 4}
	assert.Equal(t, "passes=1 comparisons=4 swaps=0 shifts=0", st.String())
}
