package mappers

import (
	"fmt"

	"certdesk/internal/domain/task"
	vo "certdesk/internal/domain/task/valueobjects"
	"certdesk/internal/infrastructure/persistence/models"
)

// TaskMapper handles the conversion between domain entities and persistence models
type TaskMapper interface {
	ToEntity(model *models.TaskModel) (*task.Task, error)
	ToModel(entity *task.Task) *models.TaskModel
	ToEntities(models []*models.TaskModel) ([]*task.Task, error)
}

type TaskMapperImpl struct{}

func NewTaskMapper() TaskMapper {
	return &TaskMapperImpl{}
}

func (m *TaskMapperImpl) ToEntity(model *models.TaskModel) (*task.Task, error) {
	if model == nil {
		return nil, nil
	}

	status, err := vo.NewTaskStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map task %d: %w", model.ID, err)
	}

	entity, err := task.ReconstructTask(
		model.ID,
		model.Name,
		model.Description,
		model.ProjectNumber,
		model.RequesterID,
		model.CertifierID,
		status,
		model.TimeSubmitted,
		model.TimeCompleted,
		model.TimeRejected,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct task %d: %w", model.ID, err)
	}

	return entity, nil
}

func (m *TaskMapperImpl) ToModel(entity *task.Task) *models.TaskModel {
	if entity == nil {
		return nil
	}

	return &models.TaskModel{
		ID:            entity.ID(),
		Name:          entity.Name(),
		Description:   entity.Description(),
		ProjectNumber: entity.ProjectNumber(),
		RequesterID:   entity.RequesterID(),
		CertifierID:   entity.CertifierID(),
		Status:        entity.Status().String(),
		TimeSubmitted: entity.TimeSubmitted(),
		TimeCompleted: entity.TimeCompleted(),
		TimeRejected:  entity.TimeRejected(),
	}
}

func (m *TaskMapperImpl) ToEntities(taskModels []*models.TaskModel) ([]*task.Task, error) {
	entities := make([]*task.Task, 0, len(taskModels))
	for _, model := range taskModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
