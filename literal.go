package easydata

import (
	"fmt"
)

// LiteralData boxes a scalar value.
type LiteralData struct {
	val any
}

// NewLiteralData creates a LiteralData holding val.
func NewLiteralData(val any) *LiteralData {
	return &LiteralData{
		val: val,
	}
}

func (*LiteralData) data() {}

// Kind implements the Data interface method.
func (l *LiteralData) Kind() Kind {
	return LiteralKind
}

// Value returns the boxed value.
func (l *LiteralData) Value() any {
	return l.val
}

// String implements the fmt.Stringer interface method.
func (l *LiteralData) String() string {
	return fmt.Sprint(l.val)
}
