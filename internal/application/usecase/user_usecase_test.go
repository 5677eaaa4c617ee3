package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hotel-pos/internal/application/dto"
	"github.com/jhoicas/hotel-pos/internal/application/usecase"
	"github.com/jhoicas/hotel-pos/internal/domain"
	"github.com/jhoicas/hotel-pos/internal/infrastructure/memory"
	"github.com/jhoicas/hotel-pos/pkg/logger"
	"github.com/jhoicas/hotel-pos/pkg/password"
)

func TestAddUser_HasheaYGuardaRolTalCual(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewUserUseCase(store.Users(), password.MD5{}, logger.Nop())
	ctx := context.Background()

	out, err := uc.AddUser(ctx, dto.CreateUserRequest{Username: "admin", Password: "admin123", Role: "admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "admin", out.Role)

	stored, err := store.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "0192023a7bbd73250516f069df18b500", stored.PasswordHash)

	out, err = uc.AddUser(ctx, dto.CreateUserRequest{Username: "night", Password: "x", Role: "auditor"})
	require.NoError(t, err)
	assert.Equal(t, "auditor", out.Role)
}

func TestAddUser_Duplicado(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewStore().Users(), password.MD5{}, logger.Nop())
	ctx := context.Background()

	_, err := uc.AddUser(ctx, dto.CreateUserRequest{Username: "admin", Password: "a", Role: "admin"})
	require.NoError(t, err)
	_, err = uc.AddUser(ctx, dto.CreateUserRequest{Username: "admin", Password: "b", Role: "staff"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
}

func TestAddUser_CamposVacios(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewStore().Users(), password.MD5{}, logger.Nop())
	_, err := uc.AddUser(context.Background(), dto.CreateUserRequest{Username: "", Password: "a", Role: "staff"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListUsers(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewStore().Users(), password.MD5{}, logger.Nop())
	ctx := context.Background()
	for _, name := range []string{"bob", "alice"} {
		_, err := uc.AddUser(ctx, dto.CreateUserRequest{Username: name, Password: "x", Role: "staff"})
		require.NoError(t, err)
	}
	out, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, "alice", out.Items[0].Username)
}
