package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumanth-0707/Student-Management-System/internal/services"
)

func registerAdmin(t *testing.T, sm services.ServiceManager, username, email string) {
	t.Helper()
	_, err := sm.Admin().Register(context.Background(), services.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "correct-horse",
	})
	require.NoError(t, err)
}

func TestAdminRegister(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()

	admin, err := sm.Admin().Register(ctx, services.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotZero(t, admin.ID)
	assert.True(t, admin.IsActive)
	assert.NotEqual(t, "correct-horse", admin.HashedPassword)
	assert.Nil(t, admin.UpdatedAt)
}

func TestAdminRegisterDuplicateUsername(t *testing.T) {
	sm := newTestServices(t)
	registerAdmin(t, sm, "alice", "alice@example.com")

	_, err := sm.Admin().Register(context.Background(), services.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, services.ErrDuplicateUsername)
}

func TestAdminRegisterDuplicateEmail(t *testing.T) {
	sm := newTestServices(t)
	registerAdmin(t, sm, "alice", "alice@example.com")

	_, err := sm.Admin().Register(context.Background(), services.RegisterRequest{
		Username: "bob",
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)
}

func TestAdminRegisterValidation(t *testing.T) {
	sm := newTestServices(t)

	_, err := sm.Admin().Register(context.Background(), services.RegisterRequest{
		Username: "ab", // too short
		Email:    "not-an-email",
		Password: "short",
	})
	assert.ErrorIs(t, err, services.ErrValidationFailed)
}

func TestAdminAuthenticate(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	registerAdmin(t, sm, "alice", "alice@example.com")

	admin, err := sm.Admin().Authenticate(ctx, "alice", "correct-horse")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "alice", admin.Username)
}

// Wrong passwords and unknown usernames both come back as (nil, nil),
// so callers cannot tell which part of the credentials was wrong.
func TestAdminAuthenticateRejectsIndistinguishably(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	registerAdmin(t, sm, "alice", "alice@example.com")

	admin, err := sm.Admin().Authenticate(ctx, "alice", "wrong-password")
	require.NoError(t, err)
	assert.Nil(t, admin)

	admin, err = sm.Admin().Authenticate(ctx, "nobody", "correct-horse")
	require.NoError(t, err)
	assert.Nil(t, admin)
}

func TestAdminUpdatePartial(t *testing.T) {
	sm := newTestServices(t)
	ctx := context.Background()
	registerAdmin(t, sm, "alice", "alice@example.com")

	original, err := sm.Admin().Authenticate(ctx, "alice", "correct-horse")
	require.NoError(t, err)
	require.NotNil(t, original)

	newEmail := "alice+new@example.com"
	updated, err := sm.Admin().Update(ctx, original.ID, services.AdminUpdateRequest{
		Email: &newEmail,
	})
	require.NoError(t, err)
	assert.Equal(t, newEmail, updated.Email)
	assert.Equal(t, "alice", updated.Username, "unset fields stay untouched")
	require.NotNil(t, updated.UpdatedAt)

	// Password survives an update that does not mention it.
	admin, err := sm.Admin().Authenticate(ctx, "alice", "correct-horse")
	require.NoError(t, err)
	assert.NotNil(t, admin)
}
