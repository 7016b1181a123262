package model_test

import (
	"camp-signup-system/internal/model"
	"camp-signup-system/test"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCamperValidate(t *testing.T) {
	cases := []struct {
		name   string
		camper model.Camper
		errs   []string
	}{
		{"valid", model.Camper{Name: "Ava", Age: 10}, nil},
		{"lower bound excluded", model.Camper{Name: "Ava", Age: 8}, []string{"Camper's age must be between 8 and 18 years"}},
		{"upper bound excluded", model.Camper{Name: "Ava", Age: 18}, []string{"Camper's age must be between 8 and 18 years"}},
		{"too young", model.Camper{Name: "Ava", Age: 5}, []string{"Camper's age must be between 8 and 18 years"}},
		{"too old", model.Camper{Name: "Ava", Age: 20}, []string{"Camper's age must be between 8 and 18 years"}},
		{"no name", model.Camper{Age: 12}, []string{"Camper must have a name"}},
		{"everything wrong", model.Camper{}, []string{"Camper must have a name", "Camper's age must be between 8 and 18 years"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.camper.Validate()
			if tc.errs == nil {
				require.NoError(t, err)
				return
			}
			var verr *model.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.errs, verr.Messages)
		})
	}
}

func TestSignupValidateTime(t *testing.T) {
	for _, hour := range []int{1, 12, 23} {
		require.NoError(t, (&model.Signup{Time: hour}).Validate(), hour)
	}
	for _, hour := range []int{-1, 0, 24} {
		require.Error(t, (&model.Signup{Time: hour}).Validate(), hour)
	}
}

func TestCamperHookRejectsInvalidSave(t *testing.T) {
	db := test.SetupDB(t)

	err := db.Create(&model.Camper{Name: "", Age: 10}).Error
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)

	var n int64
	require.NoError(t, db.Model(&model.Camper{}).Count(&n).Error)
	require.Zero(t, n)

	c := model.Camper{Name: "Ava", Age: 10}
	require.NoError(t, db.Create(&c).Error)
	c.Age = 30
	require.ErrorAs(t, db.Save(&c).Error, &verr)

	var stored model.Camper
	require.NoError(t, db.First(&stored, c.ID).Error)
	require.Equal(t, 10, stored.Age)
}

func TestSignupHookChecksReferences(t *testing.T) {
	db := test.SetupDB(t)

	err := db.Create(&model.Signup{CamperID: 42, ActivityID: 7, Time: 12}).Error
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"Camper must exist", "Activity must exist"}, verr.Messages)

	c := model.Camper{Name: "Ava", Age: 10}
	a := model.Activity{Name: "Archery", Difficulty: 2}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, db.Create(&a).Error)

	err = db.Create(&model.Signup{CamperID: c.ID, ActivityID: a.ID, Time: 24}).Error
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"Signup time must be a valid time of day"}, verr.Messages)

	require.NoError(t, db.Create(&model.Signup{CamperID: c.ID, ActivityID: a.ID, Time: 12}).Error)
}

func TestDeleteCascadesToSignups(t *testing.T) {
	db := test.SetupDB(t)

	c1 := model.Camper{Name: "Ava", Age: 10}
	c2 := model.Camper{Name: "Mateo", Age: 11}
	a1 := model.Activity{Name: "Archery", Difficulty: 2}
	a2 := model.Activity{Name: "Canoeing", Difficulty: 3}
	for _, v := range []any{&c1, &c2, &a1, &a2} {
		require.NoError(t, db.Create(v).Error)
	}
	for _, s := range []model.Signup{
		{CamperID: c1.ID, ActivityID: a1.ID, Time: 9},
		{CamperID: c1.ID, ActivityID: a2.ID, Time: 10},
		{CamperID: c2.ID, ActivityID: a1.ID, Time: 11},
	} {
		require.NoError(t, db.Create(&s).Error)
	}

	require.NoError(t, db.Delete(&a1).Error)
	var left []model.Signup
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	require.Equal(t, a2.ID, left[0].ActivityID)

	require.NoError(t, db.Delete(&c1).Error)
	var n int64
	require.NoError(t, db.Model(&model.Signup{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestCamperDetailOmitsBackReference(t *testing.T) {
	a := model.Activity{Model: model.Model{ID: 3}, Name: "Archery", Difficulty: 2}
	c := model.Camper{
		Model: model.Model{ID: 1},
		Name:  "Ava",
		Age:   10,
		Signups: []model.Signup{
			{Model: model.Model{ID: 5}, Time: 9, CamperID: 1, ActivityID: 3, Activity: &a},
		},
	}

	d := c.Detail()
	require.Equal(t, model.CamperBrief{ID: 1, Name: "Ava", Age: 10}, d.CamperBrief)
	require.Equal(t, []model.SignupInCamper{
		{ID: 5, Time: 9, CamperID: 1, ActivityID: 3, Activity: model.ActivityBrief{ID: 3, Name: "Archery", Difficulty: 2}},
	}, d.Signups)
}
