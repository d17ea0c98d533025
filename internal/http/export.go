package httpapi

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"docuprint/internal/domain"
)

var printJobExportHeader = []string{
	"Job ID",
	"Resident ID",
	"Title",
	"Pages",
	"Copies",
	"Color Mode",
	"Paper Size",
	"File Name",
	"File Size",
	"Status",
	"Created At",
}

// GeneratePrintJobExport renders print jobs as an XLSX workbook for
// the admin download endpoint.
func GeneratePrintJobExport(jobs []domain.PrintJob) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so no deferred Close here.

	const sheetName = "Print Jobs"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for col, header := range printJobExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for row, job := range jobs {
		values := []any{
			job.ID,
			job.ResidentID,
			job.Title,
			job.Pages,
			job.Copies,
			job.ColorMode,
			job.PaperSize,
			job.FileName,
			job.FileSize,
			job.Status,
			job.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	_ = f.Close()
	return buf.Bytes(), nil
}
