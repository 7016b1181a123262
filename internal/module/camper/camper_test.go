package camper_test

import (
	"camp-signup-system/internal/global/binding"
	"camp-signup-system/internal/global/database"
	"camp-signup-system/internal/model"
	"camp-signup-system/internal/module/camper"
	"camp-signup-system/test"
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := test.SetupDB(t)
	binding.Init()
	m := &camper.ModuleCamper{}
	m.Init()
	return test.NewEngine(m), db
}

func TestCreateCamper(t *testing.T) {
	r, _ := setup(t)

	w := test.DoRequest(t, r, http.MethodPost, "/campers", gin.H{"name": "Ava", "age": 10})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got map[string]any
	test.Decode(t, w, &got)
	require.Equal(t, map[string]any{"id": float64(1), "name": "Ava", "age": float64(10)}, got)
}

func TestCreateCamperRejectsInvalidFields(t *testing.T) {
	r, db := setup(t)

	cases := []struct {
		name string
		body any
		errs []string
	}{
		{"too young", gin.H{"name": "Ava", "age": 5}, []string{"Camper's age must be between 8 and 18 years"}},
		{"too old", gin.H{"name": "Ava", "age": 20}, []string{"Camper's age must be between 8 and 18 years"}},
		{"empty name", gin.H{"name": "", "age": 12}, []string{"Camper must have a name"}},
		{"missing age", gin.H{"name": "Ava"}, []string{"age is required"}},
		{"wrong type", `{"name": "Ava", "age": "ten"}`, []string{"age must be of type integer"}},
		{"malformed", `{"name": `, []string{"request body must be valid JSON"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := test.DoRequest(t, r, http.MethodPost, "/campers", tc.body)
			require.Equal(t, tc.errs, test.ValidationErrors(t, w))
		})
	}

	var n int64
	require.NoError(t, db.Model(&model.Camper{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestListCampers(t *testing.T) {
	r, db := setup(t)
	require.NoError(t, db.Create(&[]model.Camper{{Name: "Ava", Age: 10}, {Name: "Mateo", Age: 15}}).Error)

	w := test.DoRequest(t, r, http.MethodGet, "/campers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]any
	test.Decode(t, w, &got)
	require.Equal(t, []map[string]any{
		{"id": float64(1), "name": "Ava", "age": float64(10)},
		{"id": float64(2), "name": "Mateo", "age": float64(15)},
	}, got)
}

func TestListCampersEmpty(t *testing.T) {
	r, _ := setup(t)

	w := test.DoRequest(t, r, http.MethodGet, "/campers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `[]`, w.Body.String())
}

func TestGetCamperIncludesActivities(t *testing.T) {
	r, db := setup(t)
	c := model.Camper{Name: "Ava", Age: 10}
	a := model.Activity{Name: "Archery", Difficulty: 2}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&model.Signup{CamperID: c.ID, ActivityID: a.ID, Time: 9}).Error)

	w := test.DoRequest(t, r, http.MethodGet, "/campers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{
		"id": 1, "name": "Ava", "age": 10,
		"signups": [
			{"id": 1, "time": 9, "camper_id": 1, "activity_id": 1,
			 "activity": {"id": 1, "name": "Archery", "difficulty": 2}}
		]
	}`, w.Body.String())
}

func TestGetCamperNotFound(t *testing.T) {
	r, _ := setup(t)

	test.ErrorEqual(t, test.DoRequest(t, r, http.MethodGet, "/campers/99", nil), http.StatusNotFound, "Camper not found")
	test.ErrorEqual(t, test.DoRequest(t, r, http.MethodGet, "/campers/abc", nil), http.StatusNotFound, "Camper not found")
}

func TestUpdateCamper(t *testing.T) {
	r, db := setup(t)
	require.NoError(t, db.Create(&model.Camper{Name: "Ava", Age: 10}).Error)

	w := test.DoRequest(t, r, http.MethodPatch, "/campers/1", gin.H{"name": "Ava Marie", "age": 11})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
	require.JSONEq(t, `{"id": 1, "name": "Ava Marie", "age": 11}`, w.Body.String())

	// 未出现的字段保持不变
	w = test.DoRequest(t, r, http.MethodPatch, "/campers/1", gin.H{"age": 12})
	require.Equal(t, http.StatusAccepted, w.Code)
	require.JSONEq(t, `{"id": 1, "name": "Ava Marie", "age": 12}`, w.Body.String())
}

func TestUpdateCamperValidation(t *testing.T) {
	r, db := setup(t)
	require.NoError(t, db.Create(&model.Camper{Name: "Ava", Age: 10}).Error)

	w := test.DoRequest(t, r, http.MethodPatch, "/campers/1", gin.H{"name": "", "age": 30})
	require.Equal(t, []string{"Camper must have a name", "Camper's age must be between 8 and 18 years"}, test.ValidationErrors(t, w))

	var stored model.Camper
	require.NoError(t, db.First(&stored, 1).Error)
	require.Equal(t, "Ava", stored.Name)
	require.Equal(t, 10, stored.Age)
}

func TestUpdateCamperNotFound(t *testing.T) {
	r, _ := setup(t)

	w := test.DoRequest(t, r, http.MethodPatch, "/campers/7", gin.H{"name": "Ava", "age": 10})
	test.ErrorEqual(t, w, http.StatusNotFound, "Camper not found")
}

func TestListCampersDatabaseFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	mock.ExpectQuery("SELECT \\* FROM `campers`").WillReturnError(errors.New("connection reset by peer"))

	m := &camper.ModuleCamper{}
	m.Init()
	w := test.DoRequest(t, test.NewEngine(m), http.MethodGet, "/campers", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	test.Decode(t, w, &body)
	require.Equal(t, "database error", body["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}
