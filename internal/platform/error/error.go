package error

import (
	"fmt"
)

type Code uint32

const (
	EmptyListErrorCode Code = iota
	IndexOutOfRangeErrorCode
	ConcurrentModificationErrorCode
	UnknownCommandErrorCode
	InvalidArgumentErrorCode
)

func (c Code) String() string {
	switch c {
	case EmptyListErrorCode:
		return "EmptyList"
	case IndexOutOfRangeErrorCode:
		return "IndexOutOfRange"
	case ConcurrentModificationErrorCode:
		return "ConcurrentModification"
	case UnknownCommandErrorCode:
		return "UnknownCommand"
	case InvalidArgumentErrorCode:
		return "InvalidArgument"
	default:
		return fmt.Sprintf("Code(%d)", uint32(c))
	}
}

// Sentinels for errors.Is. Any error of the same kind matches them,
// whatever operation or index it carries.
var (
	ErrEmptyList              = &EmptyListError{}
	ErrIndexOutOfRange        = &IndexOutOfRangeError{}
	ErrConcurrentModification = &ConcurrentModificationError{}
	ErrUnknownCommand         = &UnknownCommandError{}
	ErrInvalidArgument        = &InvalidArgumentError{}
)

type EmptyListError struct {
	op string
}

type IndexOutOfRangeError struct {
	Index int
	Size  int
}

type ConcurrentModificationError struct {
	expected uint64
	actual   uint64
}

type UnknownCommandError struct {
	Name string
}

type InvalidArgumentError struct {
	Command string
	Arg     string
	reason  string
}

func NewEmptyListError(op string) *EmptyListError {
	return &EmptyListError{op: op}
}

func NewIndexOutOfRangeError(index, size int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{Index: index, Size: size}
}

func NewConcurrentModificationError(expected, actual uint64) *ConcurrentModificationError {
	return &ConcurrentModificationError{expected: expected, actual: actual}
}

func NewUnknownCommandError(name string) *UnknownCommandError {
	return &UnknownCommandError{Name: name}
}

func NewInvalidArgumentError(command, arg, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{Command: command, Arg: arg, reason: reason}
}

func (e *EmptyListError) Error() string {
	if e.op == "" {
		return "empty list"
	}
	return fmt.Sprintf("%s: empty list", e.op)
}

func (e *IndexOutOfRangeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("index %d out of range: must be greater or equal 0", e.Index)
	}
	return fmt.Sprintf("index %d out of range: must be below %d", e.Index, e.Size)
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("list modified during iteration (modification %d, iterator expected %d)", e.actual, e.expected)
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

func (e *InvalidArgumentError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("%s: %s", e.Command, e.reason)
	}
	return fmt.Sprintf("%s: invalid argument %q: %s", e.Command, e.Arg, e.reason)
}

func (e *EmptyListError) Code() Code              { return EmptyListErrorCode }
func (e *IndexOutOfRangeError) Code() Code        { return IndexOutOfRangeErrorCode }
func (e *ConcurrentModificationError) Code() Code { return ConcurrentModificationErrorCode }
func (e *UnknownCommandError) Code() Code         { return UnknownCommandErrorCode }
func (e *InvalidArgumentError) Code() Code        { return InvalidArgumentErrorCode }

func (e *EmptyListError) Is(target error) bool {
	_, ok := target.(*EmptyListError)
	return ok
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	_, ok := target.(*IndexOutOfRangeError)
	return ok
}

func (e *ConcurrentModificationError) Is(target error) bool {
	_, ok := target.(*ConcurrentModificationError)
	return ok
}

func (e *UnknownCommandError) Is(target error) bool {
	_, ok := target.(*UnknownCommandError)
	return ok
}

func (e *InvalidArgumentError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentError)
	return ok
}

// Coded is implemented by every error in this package.
type Coded interface {
	error
	Code() Code
}
