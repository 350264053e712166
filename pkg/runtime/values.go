package runtime

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNumber
	KindNil
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindNil:
		return "nil"
	case KindVoid:
		return "void"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. Values are small and
// copied by assignment.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

// VoidValue marks a declared binding that has not been assigned. It is also
// the result of executing a statement. Programs cannot construct it.
type VoidValue struct{}

func (VoidValue) Kind() Kind { return KindVoid }

// IsVoid reports whether v is the unassigned sentinel.
func IsVoid(v Value) bool {
	if v == nil {
		return false
	}
	return v.Kind() == KindVoid
}
