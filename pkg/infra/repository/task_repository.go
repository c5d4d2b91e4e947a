package repository

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TaskAPI/pkg/domain"
	"github.com/NeuralTrust/TaskAPI/pkg/domain/task"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) List(ctx context.Context, userID string, q task.ListQuery) ([]task.Task, error) {
	var tasks []task.Task
	err := r.scoped(ctx, userID, q.Done).
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, userID string, done *bool) (int64, error) {
	var total int64
	if err := r.scoped(ctx, userID, done).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return total, nil
}

func (r *TaskRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	userID string,
	update task.Update,
) (*task.Task, error) {
	var updated task.Task
	result := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(update.Columns())
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("task", id.String())
	}
	return &updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&task.Task{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("task", id.String())
	}
	return nil
}

func (r *TaskRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&task.Task{}).Error
}

func (r *TaskRepository) scoped(ctx context.Context, userID string, done *bool) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&task.Task{}).Where("user_id = ?", userID)
	if done != nil {
		query = query.Where("done = ?", *done)
	}
	return query
}
