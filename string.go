package vector

import (
	"fmt"
	"strings"
)

// String renders v as "PersistentVector[e0, e1, ..., e_{n-1}]", using each
// element's default textual form. The empty vector renders as
// "PersistentVector[]".
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteString("PersistentVector[")

	first := true
	for _, val := range v.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", val)
	}

	b.WriteString("]")
	return b.String()
}
