package easydata

import (
	"github.com/google/cel-go/common/types/ref"
)

// Sequence is implemented by values that can be read as an ordered list.
type Sequence interface {
	Len() int
	Index(i int) any
}

// Mapping is implemented by values that can be read as key-value pairs.
// Keys returns the keys in the mapping's own order.
type Mapping interface {
	Len() int
	Keys() []any
	Lookup(key any) (any, bool)
}

// CelVal is implemented by values that provide their own CEL representation.
type CelVal interface {
	CelVal() ref.Val
}

// unordered marks Mapping implementations whose Keys order carries no meaning.
type unordered interface {
	unordered()
}
