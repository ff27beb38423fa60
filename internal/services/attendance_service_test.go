package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumanth-0707/Student-Management-System/internal/services"
)

func TestAttendanceMark(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")
	courseID := createCourse(t, sm, "Mathematics", "MATH101")

	remarks := "arrived late"
	record, err := sm.Attendance().Mark(ctx, services.AttendanceCreateRequest{
		StudentID:      studentID,
		CourseID:       courseID,
		AttendanceDate: day(2026, 3, 2),
		Remarks:        &remarks,
	})
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.True(t, record.IsPresent, "presence defaults to true")
	require.NotNil(t, record.Remarks)
	assert.Equal(t, remarks, *record.Remarks)
}

func TestAttendanceMarkUnknownPair(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")

	_, err := sm.Attendance().Mark(ctx, services.AttendanceCreateRequest{
		StudentID:      9999,
		CourseID:       1,
		AttendanceDate: day(2026, 3, 2),
	})
	assert.ErrorIs(t, err, services.ErrStudentNotFound)

	_, err = sm.Attendance().Mark(ctx, services.AttendanceCreateRequest{
		StudentID:      studentID,
		CourseID:       9999,
		AttendanceDate: day(2026, 3, 2),
	})
	assert.ErrorIs(t, err, services.ErrCourseNotFound)
}

// Two marks on the same calendar day are rejected even when their
// timestamps differ; the next day is fine again.
func TestAttendanceMarkOncePerDay(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")
	courseID := createCourse(t, sm, "Mathematics", "MATH101")

	markAttendance(t, sm, studentID, courseID, day(2026, 3, 2), true)

	_, err := sm.Attendance().Mark(ctx, services.AttendanceCreateRequest{
		StudentID:      studentID,
		CourseID:       courseID,
		AttendanceDate: day(2026, 3, 2).Add(15 * time.Hour),
	})
	assert.ErrorIs(t, err, services.ErrDuplicateAttendance)

	_, err = sm.Attendance().Mark(ctx, services.AttendanceCreateRequest{
		StudentID:      studentID,
		CourseID:       courseID,
		AttendanceDate: day(2026, 3, 3),
	})
	assert.NoError(t, err)
}

// A second course, or a second student, on the same day is unaffected.
func TestAttendanceMarkSameDayDifferentPair(t *testing.T) {
	sm := newTestServices(t)
	studentID := createStudent(t, sm, "ada@example.com")
	otherStudent := createStudent(t, sm, "grace@example.com")
	courseID := createCourse(t, sm, "Mathematics", "MATH101")
	otherCourse := createCourse(t, sm, "Physics", "PHYS101")

	markAttendance(t, sm, studentID, courseID, day(2026, 3, 2), true)
	markAttendance(t, sm, studentID, otherCourse, day(2026, 3, 2), true)
	markAttendance(t, sm, otherStudent, courseID, day(2026, 3, 2), false)
}

func TestAttendanceByStudent(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")
	mathID := createCourse(t, sm, "Mathematics", "MATH101")
	physID := createCourse(t, sm, "Physics", "PHYS101")

	markAttendance(t, sm, studentID, mathID, day(2026, 3, 2), true)
	markAttendance(t, sm, studentID, mathID, day(2026, 3, 3), false)
	markAttendance(t, sm, studentID, physID, day(2026, 3, 2), true)

	records, err := sm.Attendance().ByStudent(ctx, studentID, nil)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	records, err = sm.Attendance().ByStudent(ctx, studentID, &physID)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = sm.Attendance().ByStudent(ctx, 9999, nil)
	assert.ErrorIs(t, err, services.ErrStudentNotFound)
}

func TestAttendanceByDate(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")
	otherStudent := createStudent(t, sm, "grace@example.com")
	courseID := createCourse(t, sm, "Mathematics", "MATH101")

	markAttendance(t, sm, studentID, courseID, day(2026, 3, 2), true)
	markAttendance(t, sm, otherStudent, courseID, day(2026, 3, 2), true)
	markAttendance(t, sm, studentID, courseID, day(2026, 3, 3), true)

	records, err := sm.Attendance().ByDate(ctx, day(2026, 3, 2), nil)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = sm.Attendance().ByDate(ctx, day(2026, 3, 4), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAttendanceReport(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")
	courseID := createCourse(t, sm, "Mathematics", "MATH101")

	markAttendance(t, sm, studentID, courseID, day(2026, 3, 2), true)
	markAttendance(t, sm, studentID, courseID, day(2026, 3, 3), true)
	markAttendance(t, sm, studentID, courseID, day(2026, 3, 4), false)
	markAttendance(t, sm, studentID, courseID, day(2026, 3, 5), true)

	report, err := sm.Attendance().Report(ctx, studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", report.StudentName)
	assert.Equal(t, "Mathematics", report.CourseName)
	assert.Equal(t, 4, report.TotalClasses)
	assert.Equal(t, 3, report.AttendedClasses)
	assert.Equal(t, 1, report.AbsentClasses)
	assert.InDelta(t, 75.0, report.AttendancePercentage, 0.001)
}

func TestAttendanceReportRounding(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")
	courseID := createCourse(t, sm, "Mathematics", "MATH101")

	// 2 of 3 is 66.666..., reported rounded to two decimals.
	markAttendance(t, sm, studentID, courseID, day(2026, 3, 2), true)
	markAttendance(t, sm, studentID, courseID, day(2026, 3, 3), true)
	markAttendance(t, sm, studentID, courseID, day(2026, 3, 4), false)

	report, err := sm.Attendance().Report(ctx, studentID, courseID)
	require.NoError(t, err)
	assert.InDelta(t, 66.67, report.AttendancePercentage, 0.001)
}

func TestAttendanceReportEmpty(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")
	courseID := createCourse(t, sm, "Mathematics", "MATH101")

	report, err := sm.Attendance().Report(ctx, studentID, courseID)
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalClasses)
	assert.Zero(t, report.AttendancePercentage)
}

func TestAttendanceUpdate(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")
	courseID := createCourse(t, sm, "Mathematics", "MATH101")

	record, err := sm.Attendance().Mark(ctx, services.AttendanceCreateRequest{
		StudentID:      studentID,
		CourseID:       courseID,
		AttendanceDate: day(2026, 3, 2),
	})
	require.NoError(t, err)

	absent := false
	remarks := "sick leave"
	updated, err := sm.Attendance().Update(ctx, record.ID, services.AttendanceUpdateRequest{
		IsPresent: &absent,
		Remarks:   &remarks,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsPresent)
	require.NotNil(t, updated.Remarks)
	assert.Equal(t, remarks, *updated.Remarks)
	assert.Equal(t, record.StudentID, updated.StudentID)
}

func TestAttendanceDelete(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")
	courseID := createCourse(t, sm, "Mathematics", "MATH101")

	record, err := sm.Attendance().Mark(ctx, services.AttendanceCreateRequest{
		StudentID:      studentID,
		CourseID:       courseID,
		AttendanceDate: day(2026, 3, 2),
	})
	require.NoError(t, err)

	deleted, err := sm.Attendance().Delete(ctx, record.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = sm.Attendance().Get(ctx, record.ID)
	assert.ErrorIs(t, err, services.ErrAttendanceNotFound)

	// The day is free again once the record is gone.
	markAttendance(t, sm, studentID, courseID, day(2026, 3, 2), true)
}
