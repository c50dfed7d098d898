package mappers

import (
	"fmt"

	"certdesk/internal/domain/user"
	"certdesk/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between identity domain entities and
// their persistence models.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	RequesterToEntity(model *models.RequesterModel) (*user.Requester, error)
	RequesterToModel(entity *user.Requester) *models.RequesterModel
	CertifierToEntity(model *models.CertifierModel) (*user.Certifier, error)
	CertifierToModel(entity *user.Certifier) *models.CertifierModel
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(model.ID, model.Name, model.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		PasswordHash: entity.PasswordHash(),
	}
}

func (m *UserMapperImpl) RequesterToEntity(model *models.RequesterModel) (*user.Requester, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructRequester(model.ID, model.UserID, model.Region, model.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct requester %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *UserMapperImpl) RequesterToModel(entity *user.Requester) *models.RequesterModel {
	if entity == nil {
		return nil
	}

	return &models.RequesterModel{
		ID:       entity.ID(),
		UserID:   entity.UserID(),
		Region:   entity.Region(),
		Location: entity.Location(),
	}
}

func (m *UserMapperImpl) CertifierToEntity(model *models.CertifierModel) (*user.Certifier, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructCertifier(model.ID, model.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct certifier %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *UserMapperImpl) CertifierToModel(entity *user.Certifier) *models.CertifierModel {
	if entity == nil {
		return nil
	}

	return &models.CertifierModel{
		ID:     entity.ID(),
		UserID: entity.UserID(),
	}
}
