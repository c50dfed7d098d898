package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"certdesk/internal/domain/task"
	vo "certdesk/internal/domain/task/valueobjects"
	"certdesk/internal/infrastructure/persistence/mappers"
	"certdesk/internal/infrastructure/persistence/models"
	"certdesk/internal/shared/db"
)

type TaskRepository struct {
	db     *gorm.DB
	mapper mappers.TaskMapper
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db:     database,
		mapper: mappers.NewTaskMapper(),
	}
}

func (r *TaskRepository) Save(ctx context.Context, t *task.Task) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select lists every mutable column so cleared timestamps are written
	// back as NULL instead of being skipped as zero values.
	result := tx.
		Model(&models.TaskModel{}).
		Where("id = ?", model.ID).
		Select("name", "description", "project_number", "certifier_id",
			"status", "time_completed", "time_rejected").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TaskModel{}, taskID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID uint) (*task.Task, error) {
	var model models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, task.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TaskRepository) ListVisible(ctx context.Context, filter task.VisibilityFilter) ([]*task.Task, error) {
	var taskModels []*models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	// Active tasks are always visible; resolved tasks only until the end of
	// the business day they were resolved on.
	visibility := tx.Session(&gorm.Session{NewDB: true}).
		Where("status = ?", vo.StatusActive.String()).
		Or("status = ? AND time_completed >= ? AND time_completed < ?",
			vo.StatusCompleted.String(), filter.DayStart, filter.DayEnd).
		Or("status = ? AND time_rejected >= ? AND time_rejected < ?",
			vo.StatusRejected.String(), filter.DayStart, filter.DayEnd)

	listQuery := tx.Model(&models.TaskModel{}).Where(visibility)
	if filter.RequesterID != nil {
		listQuery = listQuery.Where("requester_id = ?", *filter.RequesterID)
	}

	if err := listQuery.
		Order("time_submitted DESC").
		Find(&taskModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return r.mapper.ToEntities(taskModels)
}

func (r *TaskRepository) CountActiveByRegion(ctx context.Context, region int) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Model(&models.TaskModel{}).
		Joins("JOIN requesters ON requesters.id = tasks.requester_id").
		Where("tasks.status = ?", vo.StatusActive.String()).
		Where("requesters.region = ?", region).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active tasks: %w", err)
	}

	return count, nil
}
