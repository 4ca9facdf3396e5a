package parser

import (
	"strconv"
	"strings"

	platformerror "circular-list/internal/platform/error"
)

var operations = map[string]Operation{}

func init() {
	for _, op := range []Operation{
		OperationAddFirst, OperationAddLast, OperationInsert, OperationRemove,
		OperationRemoveFirst, OperationRemoveLast, OperationRemoveAll,
		OperationGet, OperationGetFirst, OperationGetLast, OperationSet,
		OperationRotate, OperationSize, OperationPrint,
	} {
		operations[strings.ToLower(string(op))] = op
	}
}

// Parse turns a flat token list such as
//
//	addLast 1 addLast 2 insert 1 5 print
//
// into commands. Operation names are case-insensitive.
func Parse(tokens []string) ([]Command, error) {
	commands := make([]Command, 0)
	for pos := 0; pos < len(tokens); {
		command, next, err := parseCommand(tokens, pos)
		if err != nil {
			return nil, err
		}
		commands = append(commands, command)
		pos = next
	}
	return commands, nil
}

// ParseLine splits line on whitespace and parses the tokens.
func ParseLine(line string) ([]Command, error) {
	return Parse(strings.Fields(line))
}

func parseCommand(tokens []string, pos int) (Command, int, error) {
	name := tokens[pos]
	op, ok := operations[strings.ToLower(name)]
	if !ok {
		return Command{}, 0, platformerror.NewUnknownCommandError(name)
	}

	args := tokens[pos+1:]
	if len(args) < op.arity() {
		return Command{}, 0, platformerror.NewInvalidArgumentError(string(op), "",
			"expected "+strconv.Itoa(op.arity())+" argument(s), got "+strconv.Itoa(len(args)))
	}

	command := Command{Op: op}
	if op.takesIndex() {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, 0, platformerror.NewInvalidArgumentError(string(op), args[0], "not an integer")
		}
		command.Index = index
		args = args[1:]
	}
	if op.takesValue() {
		command.Value = args[0]
	}
	return command, pos + 1 + op.arity(), nil
}
