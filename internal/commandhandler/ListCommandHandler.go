package commandhandler

import (
	"fmt"
	"strconv"
	"sync"

	"circular-list/internal/parser"
	"circular-list/internal/platform"
	platformerror "circular-list/internal/platform/error"
	"circular-list/internal/platform/helper"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of one executed command. Output is empty for
// commands that only mutate the list.
type Result struct {
	Command parser.Command
	Output  string
	List    []string
}

// historySize is how many executed commands a handler remembers.
const historySize = 32

type ListCommandHandler interface {
	Execute(command parser.Command) (Result, error)
	Run(commands []parser.Command) ([]Result, error)
	Snapshot() []string
	Size() int
	History() []string
}

type listCommandHandler struct {
	list    *platform.CircularList[string]
	history *platform.BoundedList[string]
	lock    *sync.RWMutex

	// historyLock orders history writes from queries sharing the read lock.
	historyLock *sync.Mutex
}

// NewListCommandHandler returns a handler working on list. A nil list
// starts from an empty one.
func NewListCommandHandler(list *platform.CircularList[string]) ListCommandHandler {
	if list == nil {
		list = platform.NewCircularList[string]()
	}
	return &listCommandHandler{
		list:    list,
		history:     platform.NewBoundedList[string](historySize),
		lock:        &sync.RWMutex{},
		historyLock: &sync.Mutex{},
	}
}

// History returns the most recent successfully executed commands, oldest
// first.
func (h *listCommandHandler) History() []string {
	h.historyLock.Lock()
	defer h.historyLock.Unlock()
	return h.history.Values()
}

// Snapshot returns the values of the list, head first.
func (h *listCommandHandler) Snapshot() []string {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.list.Strings()
}

func (h *listCommandHandler) Size() int {
	h.lock.RLock()
	defer h.lock.RUnlock()
	return h.list.Size()
}

// Execute runs command and, under the same lock, records it in the history
// and copies the resulting list.
func (h *listCommandHandler) Execute(command parser.Command) (Result, error) {
	helper.Log.Debugf("Executing command: %s", command)

	readOnly := isQuery(command.Op)
	if readOnly {
		h.lock.RLock()
		defer h.lock.RUnlock()
	} else {
		h.lock.Lock()
		defer h.lock.Unlock()
	}

	var output string
	var err error
	if readOnly {
		output, err = h.query(command)
	} else {
		err = h.mutate(command)
	}
	if err != nil {
		helper.Log.WithFields(logrus.Fields{
			"command": command.String(),
			"size":    h.list.Size(),
		}).Errorf("Error executing command: %s", err.Error())
		return Result{}, fmt.Errorf("%s: %w", command, err)
	}

	h.historyLock.Lock()
	h.history.Put(command.String())
	h.historyLock.Unlock()
	return Result{Command: command, Output: output, List: h.list.Strings()}, nil
}

// Run executes commands in order and stops at the first failure. The
// results of the commands that succeeded are returned either way.
func (h *listCommandHandler) Run(commands []parser.Command) ([]Result, error) {
	results := make([]Result, 0, len(commands))
	for _, command := range commands {
		result, err := h.Execute(command)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func isQuery(op parser.Operation) bool {
	switch op {
	case parser.OperationGet, parser.OperationGetFirst, parser.OperationGetLast,
		parser.OperationSize, parser.OperationPrint:
		return true
	default:
		return false
	}
}

// mutate applies a structural command. The caller holds the write lock.
func (h *listCommandHandler) mutate(command parser.Command) error {
	switch command.Op {
	case parser.OperationAddFirst:
		h.list.AddFirst(command.Value)
		return nil
	case parser.OperationAddLast:
		h.list.AddLast(command.Value)
		return nil
	case parser.OperationInsert:
		return h.list.Insert(command.Index, command.Value)
	case parser.OperationRemove:
		return h.list.Remove(command.Index)
	case parser.OperationRemoveFirst:
		return h.list.RemoveFirst()
	case parser.OperationRemoveLast:
		return h.list.RemoveLast()
	case parser.OperationRemoveAll:
		h.list.RemoveAll()
		return nil
	case parser.OperationSet:
		return h.list.Set(command.Index, command.Value)
	case parser.OperationRotate:
		h.list.Rotate(command.Index)
		return nil
	default:
		return platformerror.NewUnknownCommandError(string(command.Op))
	}
}

// query answers a read-only command. The caller holds at least the read lock.
func (h *listCommandHandler) query(command parser.Command) (string, error) {
	switch command.Op {
	case parser.OperationGet:
		return h.list.Get(command.Index)
	case parser.OperationGetFirst:
		return h.list.GetFirst()
	case parser.OperationGetLast:
		return h.list.GetLast()
	case parser.OperationSize:
		return strconv.Itoa(h.list.Size()), nil
	default:
		return h.list.String(), nil
	}
}
