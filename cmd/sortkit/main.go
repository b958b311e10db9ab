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

// Command sortkit sorts numbers with bubble sort or insertion sort.
//
// Usage:
//
//	sortkit bubble 5 3 8 4 2                 # [2 3 4 5 8]
//	sortkit insertion --stats 1,2,3,4,5      # result plus work counts
//	echo "3.5 -1 2" | sortkit bubble --float --format json
//	sortkit list                             # available algorithms
//
// Numbers are taken from the positional arguments, or from standard input
// when none are given. Whitespace and commas both separate numbers. Put
// negative numbers after "--" so they are not read as flags:
//
//	sortkit insertion -- -3 7 -10
//
// Environment:
//
//	SORTKIT_LOG_LEVEL  default for --log-level (debug, info, warn, error)
//	SORTKIT_FORMAT     default for --format (text, json)
//	SORTKIT_STATS      default for --stats (any true value)
package main

import (
	"os"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(app.run(os.Args[1:]))
}
