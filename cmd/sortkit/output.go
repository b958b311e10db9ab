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
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-simplesort/sorts"
)

// report is what a sort subcommand prints.
type report[T sorts.Number] struct {
	Algorithm string       `json:"algorithm"`
	Result    []T          `json:"result"`
	Stats     *sorts.Stats `json:"stats,omitempty"`
}

func render[T sorts.Number](w io.Writer, format string, r report[T]) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		return errors.Wrap(enc.Encode(r), "encode json")
	case formatText:
		if _, err := fmt.Fprintln(w, r.Result); err != nil {
			return errors.Wrap(err, "write text")
		}
		if r.Stats != nil {
			_, err := fmt.Fprintln(w, r.Stats)
			return errors.Wrap(err, "write text")
		}
		return nil
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}
