package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sumanth-0707/Student-Management-System/internal/services"
)

func TestAttendanceReportXLSX(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")
	courseID := createCourse(t, sm, "Mathematics", "MATH101")

	markAttendance(t, sm, studentID, courseID, day(2026, 3, 2), true)
	markAttendance(t, sm, studentID, courseID, day(2026, 3, 3), false)

	data, err := sm.Export().AttendanceReportXLSX(ctx, studentID, courseID)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Report", "Records"}, f.GetSheetList())

	name, err := f.GetCellValue("Report", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", name)

	total, err := f.GetCellValue("Report", "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", total)

	header, err := f.GetCellValue("Records", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	rows, err := f.GetRows("Records")
	require.NoError(t, err)
	assert.Len(t, rows, 3, "header plus one row per mark")
}

func TestAttendanceReportXLSXUnknownStudent(t *testing.T) {
	sm := newTestServices(t)

	_, err := sm.Export().AttendanceReportXLSX(context.Background(), 9999, 1)
	assert.ErrorIs(t, err, services.ErrStudentNotFound)
}
