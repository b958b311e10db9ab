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

import "golang.org/x/exp/constraints"

// Number is a constraint for the element types the sorts accept.
// Named types are allowed, e.g. type Celsius float64.
type Number interface {
	constraints.Integer | constraints.Float
}

// greater reports whether a sorts strictly after b.
// Equal elements never compare greater, which keeps both sorts stable.
func greater[T Number](a, b T) bool {
	return a > b
}
