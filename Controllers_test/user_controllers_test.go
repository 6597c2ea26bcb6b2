package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/canteen-app/models"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r, _ := setupRouter(t, db)

	w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"username": "budi",
		"password": "secret123",
		"role":     "student",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.NotZero(t, data["user_id"])

	w = doJSON(t, r, "POST", "/login", "", map[string]interface{}{
		"username": "budi",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	resp = decodeResponse(t, w)
	data = resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "student", data["role"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	r, _ := setupRouter(t, db)

	payload := map[string]interface{}{
		"username": "budi",
		"password": "secret123",
		"role":     "student",
	}

	w := doJSON(t, r, "POST", "/register", "", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/register", "", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "username already taken", resp["message"])
}

// The lost side of a register race: the username is claimed between this
// request's availability check and its insert. The unique index backstop
// still answers 409 rather than a bare 500.
func TestRegisterRaceFallsBackToConflict(t *testing.T) {
	db := setupTestDB(t)
	r, _ := setupRouter(t, db)

	sneaked := false
	err := db.Callback().Query().After("gorm:query").Register("rival_register", func(tx *gorm.DB) {
		if sneaked || tx.Statement.Table != "users" {
			return
		}
		sneaked = true
		db.Session(&gorm.Session{NewDB: true}).Create(&models.User{
			Username: "budi",
			Password: "x",
			Role:     models.RoleStudent,
		})
	})
	assert.NoError(t, err)
	defer db.Callback().Query().Remove("rival_register")

	w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"username": "budi",
		"password": "secret123",
		"role":     "student",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "username already taken", resp["message"])
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	r, _ := setupRouter(t, db)

	w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"username": "budi",
		"password": "secret123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	r, _ := setupRouter(t, db)

	w := doJSON(t, r, "POST", "/register", "", map[string]interface{}{
		"username": "budi",
		"password": "secret123",
		"role":     "student",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/login", "", map[string]interface{}{
		"username": "budi",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
