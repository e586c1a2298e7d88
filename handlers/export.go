// handlers/export.go
package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"redry.com/roofmri/models"
)

type ExportHandler struct {
	db *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{db: db}
}

var exportHeaders = []string{
	"ID", "Category", "Manufacturer", "Product", "Membranes", "Term (Years)",
	"Labor", "Material", "Consequential", "Dollar Cap", "Inspection Frequency",
	"Transferable", "Ponding Excluded", "Wind Limit", "NDL", "Rating",
}

// Warranties streams the catalog as a spreadsheet download. Same filters
// and ordering as the JSON listing; format is xlsx or csv.
func (h *ExportHandler) Warranties(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		writeError(w, http.StatusBadRequest, "format must be xlsx or csv")
		return
	}

	var options []models.WarrantyOption
	if err := h.db.Find(&options).Error; err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	options = models.FilterWarrantyOptions(options,
		r.URL.Query().Get("category"), r.URL.Query().Get("membrane"))
	models.SortWarrantyOptions(options)

	stamp := time.Now().Format("20060102_150405")
	switch format {
	case "csv":
		data, err := warrantiesCSV(options)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to generate CSV")
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=warranty_catalog_%s.csv", stamp))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	default:
		f, err := warrantiesExcel(options)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to generate Excel file")
			return
		}
		buffer, err := f.WriteToBuffer()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to write Excel file")
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=warranty_catalog_%s.xlsx", stamp))
		w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
		w.WriteHeader(http.StatusOK)
		w.Write(buffer.Bytes())
	}
}

func warrantyRow(o models.WarrantyOption) []string {
	dollarCap := ""
	if o.DollarCap != nil {
		dollarCap = strconv.FormatFloat(*o.DollarCap, 'f', -1, 64)
	}
	windLimit := ""
	if o.WindLimit != nil {
		windLimit = *o.WindLimit
	}
	return []string{
		o.ID,
		o.Category,
		o.Manufacturer,
		o.Name,
		strings.Join(o.Membranes, ", "),
		strconv.Itoa(o.Term),
		yesNo(o.LaborCovered),
		yesNo(o.MaterialCovered),
		yesNo(o.Consequential),
		dollarCap,
		o.InspFreq,
		yesNo(o.Transferable),
		yesNo(o.PondingExcluded),
		windLimit,
		yesNo(o.NDL),
		strconv.FormatFloat(o.Rating, 'f', 1, 64),
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func warrantiesCSV(options []models.WarrantyOption) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, o := range options {
		if err := cw.Write(warrantyRow(o)); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	return buf.Bytes(), cw.Error()
}

func warrantiesExcel(options []models.WarrantyOption) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheetName = "Warranty Catalog"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	f.SetCellValue(sheetName, "A1", "Roof Warranty Catalog")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 4)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		col, _ := excelize.ColumnNumberToName(colIdx + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	for rowIdx, o := range options {
		for colIdx, value := range warrantyRow(o) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+5)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return f, nil
}
