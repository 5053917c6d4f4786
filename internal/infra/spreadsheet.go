package infra

import (
	"fmt"

	"jhris/internal/dto"

	"github.com/xuri/excelize/v2"
)

const RosterSheet = "Employees"

var rosterHeaders = []string{
	"Employee #", "Name", "Email", "Department", "Position", "Status", "Type", "Hire date",
}

// NewRosterWorkbook builds the employee roster spreadsheet. The caller owns
// the returned file and must Close it.
func NewRosterWorkbook(rows []dto.RosterRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", RosterSheet); err != nil {
		_ = f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, h := range rosterHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(RosterSheet, cell, h)
		f.SetCellStyle(RosterSheet, cell, cell, headerStyle)
	}

	for i, r := range rows {
		row := i + 2
		f.SetCellValue(RosterSheet, fmt.Sprintf("A%d", row), r.EmployeeNumber)
		f.SetCellValue(RosterSheet, fmt.Sprintf("B%d", row), r.FullName)
		f.SetCellValue(RosterSheet, fmt.Sprintf("C%d", row), r.Email)
		f.SetCellValue(RosterSheet, fmt.Sprintf("D%d", row), r.Department)
		f.SetCellValue(RosterSheet, fmt.Sprintf("E%d", row), r.Position)
		f.SetCellValue(RosterSheet, fmt.Sprintf("F%d", row), r.EmploymentStatus)
		f.SetCellValue(RosterSheet, fmt.Sprintf("G%d", row), r.EmploymentType)
		f.SetCellValue(RosterSheet, fmt.Sprintf("H%d", row), r.HireDate.String())
	}

	colWidths := []float64{12, 28, 30, 22, 22, 12, 12, 12}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(RosterSheet, col, col, w)
	}
	f.SetPanes(RosterSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})

	return f, nil
}
