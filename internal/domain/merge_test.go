package domain

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedBoard() *Board {
	colX := &Column{ID: "col-x", ProjectID: "proj1", Name: "To Do", Order: 1}
	colY := &Column{ID: "col-y", ProjectID: "proj1", Name: "Done", Order: 2}

	taskA := &Task{ID: "task-a", ProjectID: "proj1", ColumnID: "col-x", Name: "Task A", Order: 1.0}
	taskC := &Task{ID: "task-c", ProjectID: "proj1", ColumnID: "col-x", Name: "Task C", Order: 2.0}

	return &Board{
		Project: &Project{ID: "proj1", Name: "Project One", OwnerID: "user1"},
		Columns: []*BoardColumn{
			{Column: *colX, Tasks: []*Task{taskA, taskC}},
			{Column: *colY, Tasks: nil},
		},
		TasksByID: map[string]*Task{
			"task-a": taskA,
			"task-c": taskC,
		},
	}
}

// assertPartition checks that every task in the merged view appears in
// exactly one column and that TasksByID matches the union of column buckets.
func assertPartition(t *testing.T, board *Board) {
	t.Helper()
	seen := map[string]int{}
	for _, col := range board.Columns {
		for _, task := range col.Tasks {
			seen[task.ID]++
			assert.Equal(t, col.ID, task.ColumnID)
		}
	}
	assert.Len(t, seen, len(board.TasksByID))
	for id, count := range seen {
		assert.Equal(t, 1, count, "task %s appears in more than one column", id)
		assert.Contains(t, board.TasksByID, id)
	}
}

func TestMergeBoardNoPending(t *testing.T) {
	confirmed := confirmedBoard()

	merged := MergeBoard(confirmed, nil)

	require.Len(t, merged.Columns, 2)
	assert.Equal(t, "col-x", merged.Columns[0].ID)
	assert.Len(t, merged.Columns[0].Tasks, 2)
	assert.Empty(t, merged.Columns[1].Tasks)
	assertPartition(t, merged)
}

func TestMergeBoardPendingCreateTask(t *testing.T) {
	confirmed := confirmedBoard()

	// A task created with a provisional id shows up immediately in its column
	pending := []BoardMutation{
		CreateTaskMutation{
			CorrelationToken: "card:tmp-1",
			Task:             Task{ID: "tmp-1", ColumnID: "col-y", Name: "New Task", Order: 1},
		},
	}

	merged := MergeBoard(confirmed, pending)

	require.Len(t, merged.Columns, 2)
	require.Len(t, merged.Columns[1].Tasks, 1)
	assert.Equal(t, "tmp-1", merged.Columns[1].Tasks[0].ID)
	assertPartition(t, merged)

	// Once resolved, the overlay is gone and the confirmed row (with the
	// persisted id) takes over without duplication
	confirmedTask := &Task{ID: "task-new", ColumnID: "col-y", Name: "New Task", Order: 1}
	confirmed.TasksByID["task-new"] = confirmedTask
	confirmed.Columns[1].Tasks = append(confirmed.Columns[1].Tasks, confirmedTask)

	merged = MergeBoard(confirmed, nil)
	require.Len(t, merged.Columns[1].Tasks, 1)
	assert.Equal(t, "task-new", merged.Columns[1].Tasks[0].ID)
	assertPartition(t, merged)
}

func TestMergeBoardPendingMoveTask(t *testing.T) {
	confirmed := confirmedBoard()

	// Moving task-a into col-y reassigns it into that column's bucket
	pending := []BoardMutation{
		MoveTaskMutation{
			CorrelationToken: "card:task-a",
			Task:             Task{ID: "task-a", ColumnID: "col-y", Name: "Task A", Order: 1},
		},
	}

	merged := MergeBoard(confirmed, pending)

	require.Len(t, merged.Columns[0].Tasks, 1)
	assert.Equal(t, "task-c", merged.Columns[0].Tasks[0].ID)
	require.Len(t, merged.Columns[1].Tasks, 1)
	assert.Equal(t, "task-a", merged.Columns[1].Tasks[0].ID)
	assertPartition(t, merged)
}

func TestMergeBoardPendingColumnMutations(t *testing.T) {
	confirmed := confirmedBoard()

	pending := []BoardMutation{
		CreateColumnMutation{CorrelationToken: "col:tmp-col", ID: "tmp-col", ProjectID: "proj1", Name: "Review", Order: 3},
		RemoveColumnMutation{CorrelationToken: "col:col-y", ID: "col-y"},
	}

	merged := MergeBoard(confirmed, pending)

	require.Len(t, merged.Columns, 2)
	assert.Equal(t, "col-x", merged.Columns[0].ID)
	assert.Equal(t, "tmp-col", merged.Columns[1].ID)
	assertPartition(t, merged)
}

func TestMergeBoardRemoveColumnHidesItsTasks(t *testing.T) {
	confirmed := confirmedBoard()

	pending := []BoardMutation{
		RemoveColumnMutation{CorrelationToken: "col:col-x", ID: "col-x"},
	}

	merged := MergeBoard(confirmed, pending)

	require.Len(t, merged.Columns, 1)
	assert.Equal(t, "col-y", merged.Columns[0].ID)
	assert.Empty(t, merged.TasksByID)
	assertPartition(t, merged)
}

func TestMergeBoardTaskOrderingWithinColumn(t *testing.T) {
	confirmed := confirmedBoard()

	// Drop a task between order 1.0 and 2.0; it renders between them
	pending := []BoardMutation{
		CreateTaskMutation{
			CorrelationToken: "card:task-b",
			Task:             Task{ID: "task-b", ColumnID: "col-x", Name: "Task B", Order: MidpointOrder(1.0, 2.0)},
		},
	}

	merged := MergeBoard(confirmed, pending)

	require.Len(t, merged.Columns[0].Tasks, 3)
	assert.Equal(t, "task-a", merged.Columns[0].Tasks[0].ID)
	assert.Equal(t, "task-b", merged.Columns[0].Tasks[1].ID)
	assert.Equal(t, "task-c", merged.Columns[0].Tasks[2].ID)
	assertPartition(t, merged)
}

func TestMergeBoardDoesNotMutateConfirmed(t *testing.T) {
	confirmed := confirmedBoard()

	pending := []BoardMutation{
		RemoveTaskMutation{CorrelationToken: "card:task-a", ID: "task-a"},
		RenameColumnMutation{CorrelationToken: "col:col-x", ID: "col-x", Name: "Renamed"},
	}

	merged := MergeBoard(confirmed, pending)
	assert.NotContains(t, merged.TasksByID, "task-a")
	assert.Equal(t, "Renamed", merged.Columns[0].Name)

	// Confirmed snapshot is untouched
	assert.Contains(t, confirmed.TasksByID, "task-a")
	assert.Equal(t, "To Do", confirmed.Columns[0].Name)
}

func TestPendingMutationRegistry(t *testing.T) {
	registry := NewPendingMutationRegistry()

	m1 := CreateTaskMutation{CorrelationToken: "card:tmp-1", Task: Task{ID: "tmp-1", ColumnID: "col-x", Name: "T1"}}
	m2 := MoveTaskMutation{CorrelationToken: "card:task-a", Task: Task{ID: "task-a", ColumnID: "col-y", Name: "Task A"}}

	registry.Register("wp123", "proj1", m1)
	registry.Register("wp123", "proj1", m2)

	pending := registry.Pending("wp123", "proj1")
	require.Len(t, pending, 2)
	assert.Equal(t, "card:tmp-1", pending[0].Token())
	assert.Equal(t, "card:task-a", pending[1].Token())

	// Boards are scoped independently
	assert.Empty(t, registry.Pending("wp123", "proj2"))
	assert.Empty(t, registry.Pending("wp999", "proj1"))

	// Resolving one token leaves the others in flight
	registry.Resolve("wp123", "proj1", "card:tmp-1")
	pending = registry.Pending("wp123", "proj1")
	require.Len(t, pending, 1)
	assert.Equal(t, "card:task-a", pending[0].Token())

	registry.Resolve("wp123", "proj1", "card:task-a")
	assert.Empty(t, registry.Pending("wp123", "proj1"))
}

func TestPendingMutationRegistryReplacesSameToken(t *testing.T) {
	registry := NewPendingMutationRegistry()

	registry.Register("wp123", "proj1", MoveTaskMutation{
		CorrelationToken: "card:task-a",
		Task:             Task{ID: "task-a", ColumnID: "col-x", Name: "Task A"},
	})
	registry.Register("wp123", "proj1", MoveTaskMutation{
		CorrelationToken: "card:task-a",
		Task:             Task{ID: "task-a", ColumnID: "col-y", Name: "Task A"},
	})

	pending := registry.Pending("wp123", "proj1")
	require.Len(t, pending, 1)
	move, ok := pending[0].(MoveTaskMutation)
	require.True(t, ok)
	assert.Equal(t, "col-y", move.Task.ColumnID)
}

func TestPendingMutationRegistryBounded(t *testing.T) {
	registry := NewPendingMutationRegistry()

	for i := 0; i < maxPendingPerBoard+10; i++ {
		registry.Register("wp123", "proj1", RemoveTaskMutation{
			CorrelationToken: "card:" + strconv.Itoa(i),
			ID:               strconv.Itoa(i),
		})
	}

	assert.LessOrEqual(t, len(registry.Pending("wp123", "proj1")), maxPendingPerBoard)
}
