package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumanth-0707/Student-Management-System/internal/services"
)

func TestStudentCreateAndGet(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()

	phone := "555-0100"
	student, err := sm.Student().Create(ctx, services.StudentCreateRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Phone:     &phone,
	})
	require.NoError(t, err)
	assert.NotZero(t, student.ID)
	assert.False(t, student.EnrollmentDate.IsZero())

	got, err := sm.Student().Get(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", got.FullName())
	require.NotNil(t, got.Phone)
	assert.Equal(t, phone, *got.Phone)
}

func TestStudentCreateDuplicateEmail(t *testing.T) {
	sm := newTestServices(t)
	createStudent(t, sm, "ada@example.com")

	_, err := sm.Student().Create(context.Background(), services.StudentCreateRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "ada@example.com",
	})
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
}

func TestStudentGetNotFound(t *testing.T) {
	sm := newTestServices(t)

	_, err := sm.Student().Get(context.Background(), 9999)
	assert.ErrorIs(t, err, services.ErrStudentNotFound)
}

func TestStudentListPagination(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	for i := 0; i < 15; i++ {
		createStudent(t, sm, fmt.Sprintf("student%02d@example.com", i))
	}

	// Default page size applies when limit is unset.
	resp, err := sm.Student().List(ctx, 0, 0, "")
	require.NoError(t, err)
	assert.Len(t, resp.Students, services.DefaultPageLimit)
	assert.EqualValues(t, 15, resp.Total)

	// Oversized limits are clamped to the maximum.
	resp, err = sm.Student().List(ctx, 0, 500, "")
	require.NoError(t, err)
	assert.Equal(t, services.MaxPageLimit, resp.Limit)
	assert.Len(t, resp.Students, 15)

	// A skip past the end yields an empty page with the real total.
	resp, err = sm.Student().List(ctx, 100, 10, "")
	require.NoError(t, err)
	assert.Empty(t, resp.Students)
	assert.EqualValues(t, 15, resp.Total)
}

func TestStudentListSearch(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()

	_, err := sm.Student().Create(ctx, services.StudentCreateRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})
	require.NoError(t, err)
	_, err = sm.Student().Create(ctx, services.StudentCreateRequest{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "alan@example.com",
	})
	require.NoError(t, err)

	// Matches are case-insensitive across first name, last name and
	// email.
	resp, err := sm.Student().List(ctx, 0, 10, "GRACE")
	require.NoError(t, err)
	require.Len(t, resp.Students, 1)
	assert.Equal(t, "Grace", resp.Students[0].FirstName)

	resp, err = sm.Student().List(ctx, 0, 10, "turing")
	require.NoError(t, err)
	require.Len(t, resp.Students, 1)
	assert.Equal(t, "Alan", resp.Students[0].FirstName)

	resp, err = sm.Student().List(ctx, 0, 10, "alan@")
	require.NoError(t, err)
	assert.Len(t, resp.Students, 1)
}

func TestStudentUpdatePartial(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	id := createStudent(t, sm, "ada@example.com")

	last := "Byron"
	updated, err := sm.Student().Update(ctx, id, services.StudentUpdateRequest{
		LastName: &last,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName, "unset fields stay untouched")
	assert.Equal(t, "Byron", updated.LastName)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestStudentDelete(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	id := createStudent(t, sm, "ada@example.com")

	deleted, err := sm.Student().Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = sm.Student().Get(ctx, id)
	assert.ErrorIs(t, err, services.ErrStudentNotFound)

	deleted, err = sm.Student().Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

// Deleting a student removes their attendance and enrollments too.
func TestStudentDeleteCascades(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")
	courseID := createCourse(t, sm, "Mathematics", "MATH101")

	enrolled, err := sm.Student().Enroll(ctx, studentID, courseID)
	require.NoError(t, err)
	require.True(t, enrolled)
	markAttendance(t, sm, studentID, courseID, day(2026, 3, 2), true)

	deleted, err := sm.Student().Delete(ctx, studentID)
	require.NoError(t, err)
	require.True(t, deleted)

	course, err := sm.Course().Get(ctx, courseID)
	require.NoError(t, err)
	assert.Empty(t, course.Students)
}

func TestStudentEnrollUnenroll(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")
	courseID := createCourse(t, sm, "Mathematics", "MATH101")

	enrolled, err := sm.Student().Enroll(ctx, studentID, courseID)
	require.NoError(t, err)
	assert.True(t, enrolled)

	// Enrolling twice reports the existing membership, not an error.
	enrolled, err = sm.Student().Enroll(ctx, studentID, courseID)
	require.NoError(t, err)
	assert.False(t, enrolled)

	student, err := sm.Student().Get(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, student.Courses, 1)
	assert.Equal(t, "MATH101", student.Courses[0].Code)

	removed, err := sm.Student().Unenroll(ctx, studentID, courseID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = sm.Student().Unenroll(ctx, studentID, courseID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStudentEnrollMissingPair(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	studentID := createStudent(t, sm, "ada@example.com")

	_, err := sm.Student().Enroll(ctx, 9999, 1)
	assert.ErrorIs(t, err, services.ErrStudentNotFound)

	_, err = sm.Student().Enroll(ctx, studentID, 9999)
	assert.ErrorIs(t, err, services.ErrCourseNotFound)
}
