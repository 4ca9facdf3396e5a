package commandhandler

import (
	"strconv"
	"sync"
	"testing"

	"circular-list/internal/parser"
	"circular-list/internal/platform"
	platformerror "circular-list/internal/platform/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, line string) []parser.Command {
	t.Helper()
	commands, err := parser.ParseLine(line)
	require.NoError(t, err)
	return commands
}

func TestRun_Scenario(t *testing.T) {
	h := NewListCommandHandler(nil)
	results, err := h.Run(mustParse(t,
		"addLast 1 addLast 2 addLast 3 insert 1 5 remove 1 removeFirst removeLast size removeAll size print"))
	require.NoError(t, err)
	require.Len(t, results, 11)

	snapshots := make([][]string, 0, len(results))
	for _, r := range results {
		snapshots = append(snapshots, r.List)
	}
	assert.Equal(t, [][]string{
		{"1"},
		{"1", "2"},
		{"1", "2", "3"},
		{"1", "5", "2", "3"},
		{"1", "2", "3"},
		{"2", "3"},
		{"2"},
		{"2"},
		{},
		{},
		{},
	}, snapshots)
	assert.Equal(t, "1", results[7].Output)
	assert.Equal(t, "0", results[9].Output)
	assert.Equal(t, "[]", results[10].Output)
	assert.True(t, h.Size() == 0)
}

func TestExecute_Queries(t *testing.T) {
	h := NewListCommandHandler(platform.NewCircularList("a", "b", "c"))
	for line, want := range map[string]string{
		"get 1":    "b",
		"getFirst": "a",
		"getLast":  "c",
		"size":     "3",
		"print":    "[a, b, c]",
	} {
		result, err := h.Execute(mustParse(t, line)[0])
		require.NoError(t, err, line)
		assert.Equal(t, want, result.Output, line)
	}

	result, err := h.Execute(parser.Command{Op: parser.OperationRotate, Index: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, result.List)

	result, err = h.Execute(parser.Command{Op: parser.OperationSet, Index: 0, Value: "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "c", "a"}, result.List)
}

func TestRun_StopsAtFirstError(t *testing.T) {
	h := NewListCommandHandler(nil)
	results, err := h.Run(mustParse(t, "addLast 1 get 4 addLast 2"))
	require.ErrorIs(t, err, platformerror.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "get 4")
	require.Len(t, results, 1)
	assert.Equal(t, []string{"1"}, h.Snapshot())
}

func TestExecute_EmptyList(t *testing.T) {
	h := NewListCommandHandler(nil)
	for _, line := range []string{"removeFirst", "removeLast", "getFirst", "getLast", "get 0", "remove 0", "set 0 x"} {
		_, err := h.Execute(mustParse(t, line)[0])
		require.ErrorIs(t, err, platformerror.ErrEmptyList, line)
	}

	_, err := h.Execute(parser.Command{Op: parser.OperationRemoveAll})
	require.NoError(t, err)
}

func TestExecute_UnknownOperation(t *testing.T) {
	h := NewListCommandHandler(nil)
	_, err := h.Execute(parser.Command{Op: "reverse"})
	require.ErrorIs(t, err, platformerror.ErrUnknownCommand)
}

func TestExecute_ConcurrentCallers(t *testing.T) {
	h := NewListCommandHandler(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, err := h.Execute(parser.Command{Op: parser.OperationAddLast, Value: "v"})
				assert.NoError(t, err)
				_, err = h.Execute(parser.Command{Op: parser.OperationSize})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, h.Size())
}

func TestHistory(t *testing.T) {
	h := NewListCommandHandler(nil)
	_, err := h.Run(mustParse(t, "addLast a insert 0 b removeLast get 5"))
	require.Error(t, err)
	assert.Equal(t, []string{"addLast a", "insert 0 b", "removeLast"}, h.History())

	for i := 0; i < historySize; i++ {
		_, err := h.Execute(parser.Command{Op: parser.OperationSize})
		require.NoError(t, err)
	}
	history := h.History()
	require.Len(t, history, historySize)
	assert.Equal(t, "size", history[0])
}

func TestExecute_ResultReflectsOwnCommand(t *testing.T) {
	h := NewListCommandHandler(nil)
	const workers, perWorker = 16, 500

	var wg sync.WaitGroup
	mismatches := make(chan string, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				v := strconv.Itoa(w) + "-" + strconv.Itoa(j)
				r, err := h.Execute(parser.Command{Op: parser.OperationAddLast, Value: v})
				if err != nil {
					mismatches <- err.Error()
					continue
				}
				if len(r.List) == 0 || r.List[len(r.List)-1] != v {
					mismatches <- v
				}
			}
		}(w)
	}
	wg.Wait()
	close(mismatches)

	bad := make([]string, 0)
	for m := range mismatches {
		bad = append(bad, m)
	}
	require.Empty(t, bad, "results whose list does not end with their own value")
	assert.Equal(t, workers*perWorker, h.Size())
}

func TestHistory_FollowsExecutionOrder(t *testing.T) {
	h := NewListCommandHandler(nil)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, err := h.Execute(parser.Command{Op: parser.OperationAddLast, Value: strconv.Itoa(w*50 + j)})
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	history := h.History()
	snapshot := h.Snapshot()
	require.Len(t, history, historySize)
	tail := snapshot[len(snapshot)-historySize:]
	for i, value := range tail {
		assert.Equal(t, "addLast "+value, history[i])
	}
}
