package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type row struct {
	ID       uint   `excel:"ID"`
	Camper   string `excel:"Camper"`
	internal string
	Skipped  string `excel:"-"`
	Time     int
}

func TestExportToExcel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	rows := []row{
		{ID: 1, Camper: "Ava", internal: "x", Skipped: "y", Time: 9},
		{ID: 2, Camper: "Mateo", Time: 14},
	}
	require.NoError(t, ExportToExcel(f, "Signups", rows))

	got, err := f.GetRows("Signups")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"ID", "Camper", "Time"},
		{"1", "Ava", "9"},
		{"2", "Mateo", "14"},
	}, got)
}

func TestExportToExcelHeaderOnlyWhenEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, ExportToExcel(f, "", []row{}))
	got, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Equal(t, [][]string{{"ID", "Camper", "Time"}}, got)
}

func TestExportToExcelRejectsNonSlice(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.Error(t, ExportToExcel(f, "", row{}))
	require.Error(t, ExportToExcel(f, "", []int{1, 2}))
}
