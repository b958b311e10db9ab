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

package main

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-simplesort/sorts"
)

// splitTokens splits s on whitespace and commas, dropping empty fields.
func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// collectTokens returns the number tokens from args, or from in when args is empty.
func collectTokens(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return lo.FlatMap(args, func(arg string, _ int) []string {
			return splitTokens(arg)
		}), nil
	}
	if in == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "read stdin")
	}
	return splitTokens(string(raw)), nil
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// ErrNotFinite is returned for NaN and infinite float input. NaN has no
// ascending order, and infinities cannot be encoded as JSON.
var ErrNotFinite = errors.New("number must be finite")

func parseFloat64(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	// Overflow yields ±Inf together with a range error.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	if err != nil {
		return 0, err
	}
	return v, nil
}

// parseNumbers converts every token with parse. The result is never nil.
func parseNumbers[T sorts.Number](tokens []string, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(tokens))
	for i, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "number %d (%q)", i+1, tok)
		}
		values = append(values, v)
	}
	return values, nil
}
