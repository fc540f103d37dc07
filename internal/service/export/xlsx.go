package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-FacilityBookingService/internal/domain"
	"github.com/m04kA/SMC-FacilityBookingService/pkg/ptr"
)

// SheetName имя листа с историей
const SheetName = "History"

// ContentType MIME тип XLSX
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []string{
	"Date",
	"Room",
	"Requester",
	"Start",
	"End",
	"Slots",
	"Status",
	"Requester Type",
	"Organization",
	"Purpose",
	"Equipment",
	"Rejection Reason",
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Exporter выгружает группы заявок в XLSX
type Exporter struct {
	logger Logger
}

func NewExporter(logger Logger) *Exporter {
	return &Exporter{logger: logger}
}

// WriteGroups пишет один лист: строка заголовка и по строке на группу
func (e *Exporter) WriteGroups(w io.Writer, groups []*domain.ReservationGroup) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Error("WriteGroups: close workbook: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("%w: rename sheet: %v", ErrWriteSheet, err)
	}

	for i, col := range header {
		if err := setCell(f, i+1, 1, col); err != nil {
			return err
		}
	}

	// Жирный заголовок; ошибка стиля не мешает выгрузке
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		end, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = f.SetCellStyle(SheetName, "A1", end, style)
	}

	for i, g := range groups {
		row := []interface{}{
			g.Date.Format(domain.DateFormat),
			g.Room,
			g.Requester,
			g.StartTime.String(),
			g.EndTime.String(),
			g.Size(),
			string(g.Status),
			g.RequesterType,
			g.Organization,
			g.Purpose,
			strings.Join(g.Equipment, ", "),
			ptr.Deref(g.RejectionReason),
		}
		for col, v := range row {
			if err := setCell(f, col+1, i+2, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: %v", ErrSave, err)
	}

	e.logger.Info("WriteGroups: exported %d groups", len(groups))
	return nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("%w: cell %d:%d: %v", ErrWriteSheet, col, row, err)
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("%w: cell %s: %v", ErrWriteSheet, cell, err)
	}
	return nil
}
