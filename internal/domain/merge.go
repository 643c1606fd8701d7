package domain

import (
	"sort"
	"sync"
)

// MergeBoard overlays in-flight, not-yet-confirmed mutations onto the last
// confirmed board snapshot and returns the view used for rendering. The
// confirmed snapshot is not modified.
//
// Every rendered task appears in exactly one column: tasks are bucketed by
// their (possibly optimistic) column id after all overlays are applied, so a
// task created or moved by a pending mutation is visible immediately, and a
// task whose column was optimistically removed disappears with it.
func MergeBoard(confirmed *Board, pending []BoardMutation) *Board {
	tasksByID := make(map[string]*Task, len(confirmed.TasksByID))
	for id, task := range confirmed.TasksByID {
		tasksByID[id] = task
	}

	columns := make([]*Column, 0, len(confirmed.Columns))
	for _, bc := range confirmed.Columns {
		col := bc.Column
		columns = append(columns, &col)
	}

	for _, mutation := range pending {
		switch m := mutation.(type) {
		case CreateColumnMutation:
			columns = append(columns, &Column{
				ID:        m.ID,
				ProjectID: m.ProjectID,
				Name:      m.Name,
				Order:     m.Order,
			})
		case RenameColumnMutation:
			for _, col := range columns {
				if col.ID == m.ID {
					col.Name = m.Name
				}
			}
		case RemoveColumnMutation:
			kept := columns[:0]
			for _, col := range columns {
				if col.ID != m.ID {
					kept = append(kept, col)
				}
			}
			columns = kept
		case CreateTaskMutation:
			task := m.Task
			tasksByID[task.ID] = &task
		case MoveTaskMutation:
			task := m.Task
			tasksByID[task.ID] = &task
		case RemoveTaskMutation:
			delete(tasksByID, m.ID)
		}
	}

	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].Order < columns[j].Order
	})

	merged := &Board{
		Project:   confirmed.Project,
		Columns:   make([]*BoardColumn, 0, len(columns)),
		TasksByID: make(map[string]*Task, len(tasksByID)),
	}

	buckets := make(map[string][]*Task, len(columns))
	for _, col := range columns {
		buckets[col.ID] = nil
	}
	for _, task := range tasksByID {
		bucket, ok := buckets[task.ColumnID]
		if !ok {
			// Column is gone (optimistically or otherwise); the task is not rendered.
			continue
		}
		buckets[task.ColumnID] = append(bucket, task)
		merged.TasksByID[task.ID] = task
	}

	for _, col := range columns {
		tasks := buckets[col.ID]
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Order < tasks[j].Order
		})
		merged.Columns = append(merged.Columns, &BoardColumn{
			Column: *col,
			Tasks:  tasks,
		})
	}

	return merged
}

// maxPendingPerBoard bounds how many in-flight mutations one board can hold;
// beyond it the oldest entry is dropped, falling back to confirmed state for
// whatever it overlaid.
const maxPendingPerBoard = 128

type pendingEntry struct {
	token    string
	mutation BoardMutation
}

// PendingMutationRegistry tracks in-flight board mutations per
// (workplace, project) pair, keyed by correlation token. Mutations are
// registered before the database write and resolved once the write is
// confirmed or rejected; either way the overlay is dropped and the confirmed
// snapshot takes over. Each mutation is independent: resolving one never
// touches the others.
type PendingMutationRegistry struct {
	mu     sync.Mutex
	boards map[string][]pendingEntry
}

func NewPendingMutationRegistry() *PendingMutationRegistry {
	return &PendingMutationRegistry{
		boards: make(map[string][]pendingEntry),
	}
}

func boardScope(workplaceID, projectID string) string {
	return workplaceID + "/" + projectID
}

// Register adds a mutation under its correlation token. Re-registering a
// token replaces the previous overlay for that token.
func (r *PendingMutationRegistry) Register(workplaceID, projectID string, mutation BoardMutation) {
	scope := boardScope(workplaceID, projectID)

	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.boards[scope]
	for i, entry := range entries {
		if entry.token == mutation.Token() {
			entries[i].mutation = mutation
			return
		}
	}
	entries = append(entries, pendingEntry{token: mutation.Token(), mutation: mutation})
	if len(entries) > maxPendingPerBoard {
		entries = entries[len(entries)-maxPendingPerBoard:]
	}
	r.boards[scope] = entries
}

// Resolve drops the overlay for a correlation token, whether the server
// confirmed or rejected the mutation.
func (r *PendingMutationRegistry) Resolve(workplaceID, projectID string, token string) {
	scope := boardScope(workplaceID, projectID)

	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.boards[scope]
	kept := entries[:0]
	for _, entry := range entries {
		if entry.token != token {
			kept = append(kept, entry)
		}
	}
	if len(kept) == 0 {
		delete(r.boards, scope)
		return
	}
	r.boards[scope] = kept
}

// Pending returns the in-flight mutations for a board in registration order.
func (r *PendingMutationRegistry) Pending(workplaceID, projectID string) []BoardMutation {
	scope := boardScope(workplaceID, projectID)

	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.boards[scope]
	if len(entries) == 0 {
		return nil
	}
	mutations := make([]BoardMutation, 0, len(entries))
	for _, entry := range entries {
		mutations = append(mutations, entry.mutation)
	}
	return mutations
}
