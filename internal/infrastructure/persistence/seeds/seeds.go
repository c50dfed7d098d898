package seeds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"certdesk/internal/infrastructure/auth"
	"certdesk/internal/infrastructure/persistence/models"
	"certdesk/internal/shared/logger"
	"certdesk/internal/shared/utils"
)

// SeedUser describes one account from the seed file. Role decides whether a
// requester or certifier profile is attached.
type SeedUser struct {
	Name     string `yaml:"name" validate:"required,max=100"`
	Password string `yaml:"password" validate:"required,min=8"`
	Role     string `yaml:"role" validate:"required,oneof=requester certifier"`
	Region   int    `yaml:"region" validate:"required_if=Role requester"`
	Location string `yaml:"location" validate:"max=200"`
}

type SeedFile struct {
	Users []SeedUser `yaml:"users"`
}

// LoadSeedFile parses a YAML seed file.
func LoadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, seed := range file.Users {
		if err := utils.ValidateStruct(seed); err != nil {
			return nil, fmt.Errorf("invalid seed entry %q: %w", seed.Name, err)
		}
	}

	return &file, nil
}

// SeedUsers creates the accounts from the seed file. Existing names are left
// untouched, so seeding is idempotent. At least one certifier must be seeded
// before task submission works: new tasks are assigned to the default
// certifier.
func SeedUsers(db *gorm.DB, file *SeedFile, hasher *auth.BcryptPasswordHasher) error {
	log := logger.NewLogger().With("component", "seeds")

	for _, seed := range file.Users {
		var existing models.UserModel
		err := db.Where("name = ?", seed.Name).First(&existing).Error
		if err == nil {
			log.Infow("seed user already exists, skipping", "name", seed.Name)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return fmt.Errorf("failed to check seed user %s: %w", seed.Name, err)
		}

		hash, err := hasher.Hash(seed.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", seed.Name, err)
		}

		user := models.UserModel{Name: seed.Name, PasswordHash: hash}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create seed user %s: %w", seed.Name, err)
		}

		switch seed.Role {
		case "certifier":
			profile := models.CertifierModel{UserID: user.ID}
			if err := db.Create(&profile).Error; err != nil {
				return fmt.Errorf("failed to create certifier profile for %s: %w", seed.Name, err)
			}
		default:
			profile := models.RequesterModel{
				UserID:   user.ID,
				Region:   seed.Region,
				Location: seed.Location,
			}
			if err := db.Create(&profile).Error; err != nil {
				return fmt.Errorf("failed to create requester profile for %s: %w", seed.Name, err)
			}
		}

		log.Infow("seed user created", "name", seed.Name, "role", seed.Role)
	}

	return nil
}
