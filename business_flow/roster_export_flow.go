package businessflow

import (
	"context"
	"strconv"
	"time"

	"github.com/PlayWithMagic/PlayWithMagic/repository"
	"github.com/xuri/excelize/v2"
)

// RosterExportFlow builds spreadsheet exports of the magician roster.
type RosterExportFlow interface {
	DownloadRosterExcel(ctx context.Context) (string, []byte, error)
}

// RosterExportFlowImpl implements RosterExportFlow.
type RosterExportFlowImpl struct {
	magicianRepo repository.MagicianRepository
}

// NewRosterExportFlow creates a new roster export flow instance.
func NewRosterExportFlow(magicianRepo repository.MagicianRepository) RosterExportFlow {
	return &RosterExportFlowImpl{
		magicianRepo: magicianRepo,
	}
}

// DownloadRosterExcel renders the full roster as an xlsx workbook, one row
// per magician in registration order.
func (f *RosterExportFlowImpl) DownloadRosterExcel(ctx context.Context) (string, []byte, error) {
	magicians, err := f.magicianRepo.ListAll(ctx, 0, 0)
	if err != nil {
		return "", nil, NewBusinessError("ROSTER_EXPORT_FAILED", "Failed to fetch magicians for export", err)
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	sheet := "Magicians"
	xl.SetSheetName(xl.GetSheetName(0), sheet)

	header := []string{"id", "first_name", "last_name", "stage_name", "email", "magician_type", "location", "year_started", "website", "created_at"}
	_ = xl.SetSheetRow(sheet, "A1", &header)

	for ri, m := range magicians {
		stageName := ""
		if m.StageName != nil {
			stageName = *m.StageName
		}
		location := ""
		if m.Location != nil {
			location = *m.Location
		}
		yearStarted := ""
		if m.YearStarted != nil {
			yearStarted = strconv.Itoa(*m.YearStarted)
		}
		website := ""
		if m.Website != nil {
			website = *m.Website
		}

		record := []string{
			strconv.FormatUint(uint64(m.ID), 10),
			m.FirstName,
			m.LastName,
			stageName,
			m.Email,
			m.MagicianType.TypeName,
			location,
			yearStarted,
			website,
			m.CreatedAt.UTC().Format(time.RFC3339),
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		_ = xl.SetSheetRow(sheet, cellRef, &record)
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}

	return "magician_roster.xlsx", buf.Bytes(), nil
}
