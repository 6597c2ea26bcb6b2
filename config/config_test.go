package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/canteen-app/models"
)

// A second insert with a taken username must surface as
// gorm.ErrDuplicatedKey so callers can answer 409 instead of 500.
func TestInitDBTranslatesUniqueViolations(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", "file:config_test?mode=memory&cache=shared")

	db, err := InitDB()
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.User{}))

	first := models.User{Username: "siti", Password: "x", Role: models.RoleStudent}
	assert.NoError(t, db.Create(&first).Error)

	second := models.User{Username: "siti", Password: "x", Role: models.RoleStudent}
	err = db.Create(&second).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
