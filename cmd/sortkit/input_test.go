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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"1 2 3", []string{"1", "2", "3"}},
		{"1,2,,3", []string{"1", "2", "3"}},
		{" 4\n5\t6 ,7 ", []string{"4", "5", "6", "7"}},
	}
	for _, tt := range tests {
		got := splitTokens(tt.in)
		if len(tt.want) == 0 {
			assert.Empty(t, got, "%q", tt.in)
			continue
		}
		assert.Equal(t, tt.want, got, "%q", tt.in)
	}
}

func TestCollectTokensPrefersArgs(t *testing.T) {
	got, err := collectTokens([]string{"1,2", "3"}, strings.NewReader("9 9 9"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, got)
}

func TestCollectTokensNilReader(t *testing.T) {
	got, err := collectTokens(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseNumbers(t *testing.T) {
	ints, err := parseNumbers([]string{"-3", "0", "42"}, parseInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{-3, 0, 42}, ints)

	floats, err := parseNumbers([]string{"1e3", "-0.5"}, parseFloat64)
	require.NoError(t, err)
	assert.Equal(t, []float64{1000, -0.5}, floats)

	empty, err := parseNumbers(nil, parseInt64)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = parseNumbers([]string{"1", "x"}, parseInt64)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `number 2 ("x")`)
}

func TestEnvOr(t *testing.T) {
	t.Setenv("SORTKIT_TEST_VALUE", "  ")
	assert.Equal(t, "fallback", envOr("SORTKIT_TEST_VALUE", "fallback"))

	t.Setenv("SORTKIT_TEST_VALUE", " debug ")
	assert.Equal(t, "debug", envOr("SORTKIT_TEST_VALUE", "fallback"))
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv(envStats, tt.val)
		assert.Equal(t, tt.want, envBool(envStats), "%q", tt.val)
	}
}

func TestParseFloat64(t *testing.T) {
	v, err := parseFloat64("-2.5e1")
	require.NoError(t, err)
	assert.Equal(t, -25.0, v)

	for _, tok := range []string{"NaN", "nan", "Inf", "-inf", "+Infinity", "1e309"} {
		_, err := parseFloat64(tok)
		assert.ErrorIs(t, err, ErrNotFinite, tok)
	}

	_, err = parseFloat64("abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFinite)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderWrapsWriteErrors(t *testing.T) {
	r := report[int64]{Algorithm: "bubble", Result: []int64{1}}

	err := render(failingWriter{}, formatText, r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write text: disk full")

	err = render(failingWriter{}, formatJSON, r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode json")
}
