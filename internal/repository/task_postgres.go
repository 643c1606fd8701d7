package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/workplacehq/workplace/internal/domain"
)

type taskRepository struct {
	workplaceRepo domain.WorkplaceRepository
}

// NewTaskRepository creates a new PostgreSQL task repository
func NewTaskRepository(workplaceRepo domain.WorkplaceRepository) domain.TaskRepository {
	return &taskRepository{
		workplaceRepo: workplaceRepo,
	}
}

func (r *taskRepository) GetTask(ctx context.Context, workplaceID string, taskID string) (*domain.Task, error) {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workplace connection: %w", err)
	}

	query := `
		SELECT id, project_id, column_id, name, content, "order", owner_id, created_at
		FROM project_tasks
		WHERE id = $1
	`
	var task domain.Task
	err = workplaceDB.QueryRowContext(ctx, query, taskID).Scan(
		&task.ID,
		&task.ProjectID,
		&task.ColumnID,
		&task.Name,
		&task.Content,
		&task.Order,
		&task.OwnerID,
		&task.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrTaskNotFound{Message: "task not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &task, nil
}

// GetTaskDetail loads the task with its assignees, comments and timesheets
func (r *taskRepository) GetTaskDetail(ctx context.Context, workplaceID string, taskID string) (*domain.TaskDetail, error) {
	task, err := r.GetTask(ctx, workplaceID, taskID)
	if err != nil {
		return nil, err
	}

	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workplace connection: %w", err)
	}

	detail := &domain.TaskDetail{
		Task:       *task,
		Assignees:  []*domain.User{},
		Comments:   []*domain.Comment{},
		Timesheets: []*domain.Timesheet{},
	}

	assigneesQuery := `
		SELECT u.id, u.email, u.name, u.created_at, u.updated_at
		FROM task_assignees a
		JOIN users u ON a.user_id = u.id
		WHERE a.task_id = $1
		ORDER BY u.name ASC
	`
	rows, err := workplaceDB.QueryContext(ctx, assigneesQuery, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task assignees: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.Name, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignee: %w", err)
		}
		detail.Assignees = append(detail.Assignees, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignees rows: %w", err)
	}

	commentsQuery := `
		SELECT id, task_id, user_id, description, created_at
		FROM task_comments
		WHERE task_id = $1
		ORDER BY created_at ASC
	`
	commentRows, err := workplaceDB.QueryContext(ctx, commentsQuery, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task comments: %w", err)
	}
	defer commentRows.Close()

	for commentRows.Next() {
		var comment domain.Comment
		err := commentRows.Scan(
			&comment.ID,
			&comment.TaskID,
			&comment.UserID,
			&comment.Description,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		detail.Comments = append(detail.Comments, &comment)
	}
	if err := commentRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments rows: %w", err)
	}

	timesheets, err := r.ListTimesheets(ctx, workplaceID, taskID)
	if err != nil {
		return nil, err
	}
	detail.Timesheets = timesheets

	return detail, nil
}

func (r *taskRepository) UpdateTask(ctx context.Context, workplaceID string, taskID, name, content string) error {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	query := `UPDATE project_tasks SET name = $1, content = $2 WHERE id = $3`
	result, err := workplaceDB.ExecContext(ctx, query, name, content, taskID)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrTaskNotFound{Message: "task not found"}
	}
	return nil
}

func (r *taskRepository) AddAssignee(ctx context.Context, workplaceID string, assignee *domain.TaskAssignee) error {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	// Assigning twice is a no-op
	query := `
		INSERT INTO task_assignees (user_id, task_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, task_id) DO NOTHING
	`
	_, err = workplaceDB.ExecContext(ctx, query, assignee.UserID, assignee.TaskID)
	if err != nil {
		return fmt.Errorf("failed to add assignee: %w", err)
	}
	return nil
}

func (r *taskRepository) RemoveAssignee(ctx context.Context, workplaceID string, assignee *domain.TaskAssignee) error {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	query := `DELETE FROM task_assignees WHERE user_id = $1 AND task_id = $2`
	if _, err := workplaceDB.ExecContext(ctx, query, assignee.UserID, assignee.TaskID); err != nil {
		return fmt.Errorf("failed to remove assignee: %w", err)
	}
	return nil
}

func (r *taskRepository) CreateComment(ctx context.Context, workplaceID string, comment *domain.Comment) error {
	if err := comment.Validate(); err != nil {
		return err
	}

	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO task_comments (id, task_id, user_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = workplaceDB.ExecContext(ctx, query,
		comment.ID,
		comment.TaskID,
		comment.UserID,
		comment.Description,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *taskRepository) GetComment(ctx context.Context, workplaceID string, commentID string) (*domain.Comment, error) {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workplace connection: %w", err)
	}

	query := `
		SELECT id, task_id, user_id, description, created_at
		FROM task_comments
		WHERE id = $1
	`
	var comment domain.Comment
	err = workplaceDB.QueryRowContext(ctx, query, commentID).Scan(
		&comment.ID,
		&comment.TaskID,
		&comment.UserID,
		&comment.Description,
		&comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrCommentNotFound{Message: "comment not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &comment, nil
}

func (r *taskRepository) DeleteComment(ctx context.Context, workplaceID string, commentID string) error {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	query := `DELETE FROM task_comments WHERE id = $1`
	result, err := workplaceDB.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrCommentNotFound{Message: "comment not found"}
	}
	return nil
}

func (r *taskRepository) CreateTimesheet(ctx context.Context, workplaceID string, timesheet *domain.Timesheet) error {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	if timesheet.ID == "" {
		timesheet.ID = uuid.New().String()
	}

	query := `
		INSERT INTO task_timesheets (id, task_id, user_id, start_time, stop_time, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = workplaceDB.ExecContext(ctx, query,
		timesheet.ID,
		timesheet.TaskID,
		timesheet.UserID,
		timesheet.StartTime,
		timesheet.StopTime,
		timesheet.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to create timesheet: %w", err)
	}
	return nil
}

// GetOpenTimesheet returns the user's most-recently-started entry with no
// stop time. If the user has overlapping open entries, only the newest one is
// considered.
func (r *taskRepository) GetOpenTimesheet(ctx context.Context, workplaceID string, userID string) (*domain.Timesheet, error) {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workplace connection: %w", err)
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select("id", "task_id", "user_id", "start_time", "stop_time", "description").
		From("task_timesheets").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"stop_time": nil}).
		OrderBy("start_time DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build timesheet query: %w", err)
	}

	var timesheet domain.Timesheet
	err = workplaceDB.QueryRowContext(ctx, query, args...).Scan(
		&timesheet.ID,
		&timesheet.TaskID,
		&timesheet.UserID,
		&timesheet.StartTime,
		&timesheet.StopTime,
		&timesheet.Description,
	)
	if err == sql.ErrNoRows {
		return nil, &domain.ErrTimesheetNotFound{Message: "no open timesheet"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get open timesheet: %w", err)
	}
	return &timesheet, nil
}

func (r *taskRepository) StopTimesheet(ctx context.Context, workplaceID string, timesheetID string, stopTime time.Time, description *string) error {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return fmt.Errorf("failed to get workplace connection: %w", err)
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update("task_timesheets").
		Set("stop_time", stopTime).
		Where(sq.Eq{"id": timesheetID})
	if description != nil {
		builder = builder.Set("description", *description)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build timesheet update: %w", err)
	}

	result, err := workplaceDB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to stop timesheet: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrTimesheetNotFound{Message: "timesheet not found"}
	}
	return nil
}

func (r *taskRepository) ListTimesheets(ctx context.Context, workplaceID string, taskID string) ([]*domain.Timesheet, error) {
	workplaceDB, err := r.workplaceRepo.GetConnection(ctx, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workplace connection: %w", err)
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select("id", "task_id", "user_id", "start_time", "stop_time", "description").
		From("task_timesheets").
		Where(sq.Eq{"task_id": taskID}).
		OrderBy("start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build timesheet query: %w", err)
	}

	rows, err := workplaceDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	timesheets := []*domain.Timesheet{}
	for rows.Next() {
		var timesheet domain.Timesheet
		err := rows.Scan(
			&timesheet.ID,
			&timesheet.TaskID,
			&timesheet.UserID,
			&timesheet.StartTime,
			&timesheet.StopTime,
			&timesheet.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		timesheets = append(timesheets, &timesheet)
	}
	return timesheets, rows.Err()
}
