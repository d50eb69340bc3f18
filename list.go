package easydata

// ListData wraps a sequence.
type ListData struct {
	seq Sequence
}

// NewListData creates a ListData reading from seq.
func NewListData(seq Sequence) *ListData {
	return &ListData{
		seq: seq,
	}
}

func (*ListData) data() {}

// Kind implements the Data interface method.
func (l *ListData) Kind() Kind {
	return ListKind
}

// Value returns the underlying sequence payload, e.g. the native slice.
func (l *ListData) Value() any {
	switch s := l.seq.(type) {
	case reflectSequence:
		return s.val.Interface()
	case listValueSequence:
		return s.list
	}
	return l.seq
}

// Sequence returns the sequence the list reads from.
func (l *ListData) Sequence() Sequence {
	return l.seq
}

func (l *ListData) Len() int {
	return l.seq.Len()
}

func (l *ListData) Index(i int) any {
	return l.seq.Index(i)
}

// Values returns the elements in order, in a new slice.
func (l *ListData) Values() []any {
	n := l.seq.Len()
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, l.seq.Index(i))
	}
	return out
}
