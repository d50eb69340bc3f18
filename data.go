package easydata

import (
	"fmt"
)

// Kind identifies which Data variant a value was classified into.
type Kind uint8

const (
	InvalidKind Kind = iota
	ListKind
	MappingKind
	ObjectKind
	LiteralKind
)

var kindNames = [...]string{
	InvalidKind: "invalid",
	ListKind:    "list",
	MappingKind: "mapping",
	ObjectKind:  "object",
	LiteralKind: "literal",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Data is the closed family of typed wrappers produced by Classify.
// It is implemented by *ListData, *MappingData, *ObjectData and *LiteralData only.
type Data interface {
	// Kind reports the variant.
	Kind() Kind
	// Value returns the payload the wrapper was constructed from.
	Value() any

	data()
}

var (
	_ Data = (*ListData)(nil)
	_ Data = (*MappingData)(nil)
	_ Data = (*ObjectData)(nil)
	_ Data = (*LiteralData)(nil)
)
