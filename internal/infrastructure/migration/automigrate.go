package migration

import (
	"certdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.RequesterModel{},
		&models.CertifierModel{},
		&models.TaskModel{},
		&models.SlotLedgerModel{},
	}
}
