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

import "fmt"

// Stats counts the work done by one call to an instrumented sort.
type Stats struct {
	// Passes is the number of full scans for bubble sort, including the
	// final scan without swaps. For insertion sort it is the number of
	// elements taken from the unsorted suffix.
	Passes int `json:"passes"`

	// Comparisons is the number of element comparisons.
	Comparisons int `json:"comparisons"`

	// Swaps is the number of adjacent exchanges. Only bubble sort swaps.
	Swaps int `json:"swaps"`

	// Shifts is the number of elements moved one slot right.
	// Only insertion sort shifts.
	Shifts int `json:"shifts"`
}

// String returns the counts as space separated key=value pairs.
func (s Stats) String() string {
	return fmt.Sprintf("passes=%d comparisons=%d swaps=%d shifts=%d",
		s.Passes, s.Comparisons, s.Swaps, s.Shifts)
}
