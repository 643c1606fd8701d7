package domain

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// Board mutations form a closed set: every variant implements the unexported
// marker method, so a type switch over BoardMutation is exhaustive and a new
// mutation kind is a compile-time change, not a silently ignored string.

// Mutation kind names as they appear on the wire.
const (
	MutationKindCreateColumn = "createColumn"
	MutationKindRenameColumn = "renameColumn"
	MutationKindRemoveColumn = "removeColumn"
	MutationKindCreateTask   = "createTask"
	MutationKindMoveTask     = "moveTask"
	MutationKindRemoveTask   = "removeTask"
)

// BoardMutation is one discrete change to a project board. Token returns the
// correlation token identifying the in-flight submission that produced it.
type BoardMutation interface {
	Token() string
	isBoardMutation()
}

type CreateColumnMutation struct {
	CorrelationToken string
	ID               string
	ProjectID        string
	Name             string
	Order            float64
}

func (m CreateColumnMutation) Token() string    { return m.CorrelationToken }
func (m CreateColumnMutation) isBoardMutation() {}

type RenameColumnMutation struct {
	CorrelationToken string
	ID               string
	Name             string
}

func (m RenameColumnMutation) Token() string    { return m.CorrelationToken }
func (m RenameColumnMutation) isBoardMutation() {}

type RemoveColumnMutation struct {
	CorrelationToken string
	ID               string
}

func (m RemoveColumnMutation) Token() string    { return m.CorrelationToken }
func (m RemoveColumnMutation) isBoardMutation() {}

type CreateTaskMutation struct {
	CorrelationToken string
	Task             Task
}

func (m CreateTaskMutation) Token() string    { return m.CorrelationToken }
func (m CreateTaskMutation) isBoardMutation() {}

type MoveTaskMutation struct {
	CorrelationToken string
	Task             Task
}

func (m MoveTaskMutation) Token() string    { return m.CorrelationToken }
func (m MoveTaskMutation) isBoardMutation() {}

type RemoveTaskMutation struct {
	CorrelationToken string
	ID               string
}

func (m RemoveTaskMutation) Token() string    { return m.CorrelationToken }
func (m RemoveTaskMutation) isBoardMutation() {}

// ErrUnknownMutationKind is returned when the wire envelope names a kind the
// board does not recognize.
type ErrUnknownMutationKind struct {
	Kind string
}

func (e *ErrUnknownMutationKind) Error() string {
	return fmt.Sprintf("unknown board mutation kind: %s", e.Kind)
}

// DecodeBoardMutation parses a wire envelope {kind, token, payload} into the
// matching mutation variant. Task payloads must carry id and name; their
// absence aborts the decode.
func DecodeBoardMutation(body []byte) (BoardMutation, error) {
	if !gjson.ValidBytes(body) {
		return nil, NewValidationError("mutation envelope is not valid JSON")
	}
	root := gjson.ParseBytes(body)

	kind := root.Get("kind").String()
	token := root.Get("token").String()
	if token == "" {
		return nil, NewValidationError("mutation token is required")
	}
	payload := root.Get("payload")

	switch kind {
	case MutationKindCreateColumn:
		name := payload.Get("name").String()
		if name == "" {
			return nil, NewValidationError("column name is required")
		}
		return CreateColumnMutation{
			CorrelationToken: token,
			ID:               payload.Get("id").String(),
			ProjectID:        payload.Get("projectId").String(),
			Name:             name,
			Order:            payload.Get("order").Float(),
		}, nil

	case MutationKindRenameColumn:
		id := payload.Get("id").String()
		name := payload.Get("name").String()
		if id == "" || name == "" {
			return nil, NewValidationError("column id and name are required")
		}
		return RenameColumnMutation{
			CorrelationToken: token,
			ID:               id,
			Name:             name,
		}, nil

	case MutationKindRemoveColumn:
		id := payload.Get("id").String()
		if id == "" {
			return nil, NewValidationError("column id is required")
		}
		return RemoveColumnMutation{
			CorrelationToken: token,
			ID:               id,
		}, nil

	case MutationKindCreateTask:
		task, err := taskFromPayload(payload)
		if err != nil {
			return nil, err
		}
		return CreateTaskMutation{
			CorrelationToken: token,
			Task:             *task,
		}, nil

	case MutationKindMoveTask:
		task, err := taskFromPayload(payload)
		if err != nil {
			return nil, err
		}
		return MoveTaskMutation{
			CorrelationToken: token,
			Task:             *task,
		}, nil

	case MutationKindRemoveTask:
		id := payload.Get("id").String()
		if id == "" {
			return nil, NewValidationError("task id is required")
		}
		return RemoveTaskMutation{
			CorrelationToken: token,
			ID:               id,
		}, nil

	default:
		return nil, &ErrUnknownMutationKind{Kind: kind}
	}
}

// taskFromPayload parses the drag payload attached to task mutations. The
// payload is the JSON object the browser serializes onto the drag event;
// missing id or name fails loudly.
func taskFromPayload(payload gjson.Result) (*Task, error) {
	id := payload.Get("id").String()
	name := payload.Get("name").String()
	if id == "" || name == "" {
		return nil, NewValidationError("task id and name are required")
	}

	task := &Task{
		ID:        id,
		Name:      name,
		ProjectID: payload.Get("projectId").String(),
		ColumnID:  payload.Get("columnId").String(),
		Content:   payload.Get("content").String(),
		Order:     payload.Get("order").Float(),
		OwnerID:   payload.Get("ownerId").String(),
	}
	if created := payload.Get("createdAt").String(); created != "" {
		if ts, err := time.Parse(time.RFC3339, created); err == nil {
			task.CreatedAt = ts
		}
	}
	return task, nil
}
