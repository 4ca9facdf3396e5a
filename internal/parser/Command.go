package parser

import (
	"strconv"
	"strings"
)

type Operation string

const (
	OperationAddFirst    Operation = "addFirst"
	OperationAddLast     Operation = "addLast"
	OperationInsert      Operation = "insert"
	OperationRemove      Operation = "remove"
	OperationRemoveFirst Operation = "removeFirst"
	OperationRemoveLast  Operation = "removeLast"
	OperationRemoveAll   Operation = "removeAll"
	OperationGet         Operation = "get"
	OperationGetFirst    Operation = "getFirst"
	OperationGetLast     Operation = "getLast"
	OperationSet         Operation = "set"
	OperationRotate      Operation = "rotate"
	OperationSize        Operation = "size"
	OperationPrint       Operation = "print"
)

// Command is one parsed list operation. Index is set for positional
// operations and rotate; Value for operations that store a value.
type Command struct {
	Op    Operation
	Index int
	Value string
}

func (c Command) String() string {
	parts := []string{string(c.Op)}
	if c.Op.takesIndex() {
		parts = append(parts, strconv.Itoa(c.Index))
	}
	if c.Op.takesValue() {
		parts = append(parts, c.Value)
	}
	return strings.Join(parts, " ")
}

func (o Operation) takesIndex() bool {
	switch o {
	case OperationInsert, OperationRemove, OperationGet, OperationSet, OperationRotate:
		return true
	default:
		return false
	}
}

func (o Operation) takesValue() bool {
	switch o {
	case OperationAddFirst, OperationAddLast, OperationInsert, OperationSet:
		return true
	default:
		return false
	}
}

func (o Operation) arity() int {
	n := 0
	if o.takesIndex() {
		n++
	}
	if o.takesValue() {
		n++
	}
	return n
}
