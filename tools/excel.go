package tools

import (
	"fmt"
	"reflect"

	"github.com/xuri/excelize/v2"
)

const ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportToExcel 将结构体切片写入 sheet，表头取 excel 标签，"-" 跳过
func ExportToExcel(f *excelize.File, sheet string, data any) error {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("data %T 不是切片", data)
	}
	elemType := v.Type().Elem()
	if elemType.Kind() != reflect.Struct {
		return fmt.Errorf("data %T 不是结构体切片", data)
	}
	if sheet == "" {
		sheet = "Sheet1"
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	var cols []int
	for i := 0; i < elemType.NumField(); i++ {
		sf := elemType.Field(i)
		if !sf.IsExported() {
			continue
		}
		header := sf.Tag.Get("excel")
		if header == "-" {
			continue
		}
		if header == "" {
			header = sf.Name
		}
		cols = append(cols, i)
		if err := setCell(f, sheet, len(cols), 1, header); err != nil {
			return err
		}
	}

	for row := 0; row < v.Len(); row++ {
		elem := v.Index(row)
		for col, field := range cols {
			if err := setCell(f, sheet, col+1, row+2, elem.Field(field).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
