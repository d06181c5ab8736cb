package database

import "github.com/Ladynads/creaverse/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Follow{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
		&models.Message{},
		&models.InviteCode{},
		&models.UserInteraction{},
	}
}
