package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/sumanth-0707/Student-Management-System/internal/repositories"
)

type exportService struct {
	repo       repositories.Repository
	attendance AttendanceService
	logger     *slog.Logger
}

func NewExportService(repo repositories.Repository, attendance AttendanceService, logger *slog.Logger) ExportService {
	return &exportService{
		repo:       repo,
		attendance: attendance,
		logger:     logger,
	}
}

// AttendanceReportXLSX writes a two-sheet workbook: the aggregate report
// for the pair and every underlying mark.
func (s *exportService) AttendanceReportXLSX(ctx context.Context, studentID, courseID uint) ([]byte, error) {
	report, err := s.attendance.Report(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.Attendance().ListForPair(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Report"
	const recordsSheet = "Records"

	f.SetSheetName(f.GetSheetName(0), summarySheet)

	summaryRows := [][]interface{}{
		{"Student", report.StudentName},
		{"Course", report.CourseName},
		{"Total Classes", report.TotalClasses},
		{"Attended", report.AttendedClasses},
		{"Absent", report.AbsentClasses},
		{"Attendance %", report.AttendancePercentage},
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to build summary sheet: %w", err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to build summary sheet: %w", err)
		}
	}

	if _, err := f.NewSheet(recordsSheet); err != nil {
		return nil, fmt.Errorf("failed to build records sheet: %w", err)
	}

	header := []interface{}{"Date", "Present", "Remarks"}
	if err := f.SetSheetRow(recordsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to build records sheet: %w", err)
	}
	for i, record := range records {
		remarks := ""
		if record.Remarks != nil {
			remarks = *record.Remarks
		}
		row := []interface{}{
			record.AttendanceDate.Format("2006-01-02 15:04"),
			record.IsPresent,
			remarks,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to build records sheet: %w", err)
		}
		if err := f.SetSheetRow(recordsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to build records sheet: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	s.logger.Info("exported attendance report",
		"student_id", studentID,
		"course_id", courseID,
		"records", len(records),
	)
	return buf.Bytes(), nil
}
