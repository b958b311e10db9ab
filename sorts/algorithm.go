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
	"strings"

	"github.com/pkg/errors"
)

// Algorithm names one of the sorts in this package.
type Algorithm string

const (
	// Bubble selects BubbleSort.
	Bubble Algorithm = "bubble"

	// Insertion selects InsertionSort.
	Insertion Algorithm = "insertion"
)

// ErrUnknownAlgorithm is returned for names that match no Algorithm.
var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

// aliases maps accepted spellings to their Algorithm.
var aliases = map[string]Algorithm{
	"bubble":        Bubble,
	"bubblesort":    Bubble,
	"insertion":     Insertion,
	"insertionsort": Insertion,
}

// Algorithms returns every available Algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Insertion}
}

// String returns the canonical name.
func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm resolves a case-insensitive name such as "bubble" or
// "InsertionSort". Hyphens and underscores are ignored.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "").Replace(key)
	if a, ok := aliases[key]; ok {
		return a, nil
	}
	return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// Run sorts data in-place with the selected algorithm and returns it along
// with the work counts. On error data is left untouched.
func Run[T Number](a Algorithm, data []T) ([]T, Stats, error) {
	switch a {
	case Bubble:
		out, st := BubbleSortStats(data)
		return out, st, nil
	case Insertion:
		out, st := InsertionSortStats(data)
		return out, st, nil
	default:
		return data, Stats{}, errors.Wrapf(ErrUnknownAlgorithm, "run %q", string(a))
	}
}
