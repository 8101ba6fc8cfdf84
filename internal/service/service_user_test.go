package service

import (
	"context"
	"errors"
	"testing"

	"github.com/semenovp/go-user-hub/internal/logger"
	"github.com/semenovp/go-user-hub/internal/mock"
	"github.com/semenovp/go-user-hub/internal/store"
	"github.com/semenovp/go-user-hub/internal/utils"
	"github.com/semenovp/go-user-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUserService(t *testing.T) (*gomock.Controller, *mock.MockUserRepository, UserService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return ctrl, repo, NewUserService(repo, logger.Nop())
}

func TestUserServiceCreate_HashesPasswordBeforePersistence(t *testing.T) {
	ctrl, repo, svc := newUserService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	input := models.CreateUserInput{Email: "a@b.com", Password: "Strong123!"}

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			// the repository must never see the plaintext
			require.NotEqual(t, input.Password, user.PasswordHash)
			require.True(t, utils.CheckPassword(user.PasswordHash, input.Password))

			user.ID = "id-1"
			return user, nil
		},
	)

	created, err := svc.Create(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, "a@b.com", created.Email)
}

func TestUserServiceCreate_InvalidInput(t *testing.T) {
	ctrl, _, svc := newUserService(t)
	defer ctrl.Finish()

	tests := []struct {
		name  string
		input models.CreateUserInput
	}{
		{name: "empty email", input: models.CreateUserInput{Password: "Strong123!"}},
		{name: "empty password", input: models.CreateUserInput{Email: "a@b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestUserServiceCreate_DuplicateEmailPropagatesUntranslated(t *testing.T) {
	ctrl, repo, svc := newUserService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrDuplicateKey)

	_, err := svc.Create(ctx, models.CreateUserInput{Email: "a@b.com", Password: "Strong123!"})

	// the service layer does not map the constraint violation to a
	// distinct conflict kind; the store sentinel bubbles up unchanged
	require.ErrorIs(t, err, store.ErrDuplicateKey)
}

func TestUserServiceUpdate_RehashesPassword(t *testing.T) {
	ctrl, repo, svc := newUserService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	newPassword := "NewStrong456!"

	repo.EXPECT().UpdateUser(ctx, "id-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, patch map[string]any) (models.User, error) {
			hash, ok := patch["password"].(string)
			require.True(t, ok, "patch must carry the hashed password")
			require.NotEqual(t, newPassword, hash)
			require.True(t, utils.CheckPassword(hash, newPassword))

			return models.User{ID: id, Email: "a@b.com", PasswordHash: hash}, nil
		},
	)

	_, err := svc.Update(ctx, models.UpdateUserInput{ID: "id-1", Password: &newPassword})
	require.NoError(t, err)
}

func TestUserServiceUpdate_EmailOnlyPatchForwardsUnchanged(t *testing.T) {
	ctrl, repo, svc := newUserService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	newEmail := "new@b.com"

	repo.EXPECT().UpdateUser(ctx, "id-1", map[string]any{"email": newEmail}).
		Return(models.User{ID: "id-1", Email: newEmail}, nil)

	updated, err := svc.Update(ctx, models.UpdateUserInput{ID: "id-1", Email: &newEmail})
	require.NoError(t, err)
	assert.Equal(t, newEmail, updated.Email)
}

func TestUserServiceUpdate_MissingID(t *testing.T) {
	ctrl, _, svc := newUserService(t)
	defer ctrl.Finish()

	_, err := svc.Update(context.Background(), models.UpdateUserInput{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserServiceUpdate_NotFound(t *testing.T) {
	ctrl, repo, svc := newUserService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().UpdateUser(ctx, "missing-id", gomock.Any()).Return(models.User{}, store.ErrNotFound)

	_, err := svc.Update(ctx, models.UpdateUserInput{ID: "missing-id"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserServiceGet_Success(t *testing.T) {
	ctrl, repo, svc := newUserService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().FindUserByID(ctx, "id-1").Return(models.User{ID: "id-1", Email: "a@b.com"}, nil)

	found, err := svc.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", found.Email)
}

func TestUserServiceGet_NotFound(t *testing.T) {
	ctrl, repo, svc := newUserService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().FindUserByID(ctx, "missing-id").Return(models.User{}, store.ErrNotFound)

	_, err := svc.Get(ctx, "missing-id")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUserServiceList_PassesThrough(t *testing.T) {
	ctrl, repo, svc := newUserService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().FindAllUsers(ctx).Return([]models.User{{ID: "id-1"}, {ID: "id-2"}}, nil)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserServiceRemove_NoMatchReturnsNil(t *testing.T) {
	ctrl, repo, svc := newUserService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo.EXPECT().DeleteUser(ctx, "missing-id").Return(nil, nil)

	removed, err := svc.Remove(ctx, "missing-id")
	require.NoError(t, err)
	assert.Nil(t, removed)
}

func TestVerifyUser_Success(t *testing.T) {
	ctrl, repo, svc := newUserService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	hash, err := utils.HashPassword("Strong123!")
	require.NoError(t, err)

	repo.EXPECT().FindUserByEmail(ctx, "a@b.com").
		Return(models.User{ID: "id-1", Email: "a@b.com", PasswordHash: hash}, nil)

	verified, err := svc.VerifyUser(ctx, "a@b.com", "Strong123!")
	require.NoError(t, err)
	assert.Equal(t, "id-1", verified.ID)
}

func TestVerifyUser_AntiEnumerationSymmetry(t *testing.T) {
	ctrl, repo, svc := newUserService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	hash, err := utils.HashPassword("Strong123!")
	require.NoError(t, err)

	repo.EXPECT().FindUserByEmail(ctx, "ghost@b.com").
		Return(models.User{}, store.ErrNotFound)
	repo.EXPECT().FindUserByEmail(ctx, "a@b.com").
		Return(models.User{ID: "id-1", Email: "a@b.com", PasswordHash: hash}, nil)

	_, unknownEmailErr := svc.VerifyUser(ctx, "ghost@b.com", "whatever")
	_, wrongPasswordErr := svc.VerifyUser(ctx, "a@b.com", "Wrong456!")

	// both failure paths must be indistinguishable to the caller
	require.ErrorIs(t, unknownEmailErr, ErrAuthenticationRejected)
	require.ErrorIs(t, wrongPasswordErr, ErrAuthenticationRejected)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

func TestVerifyUser_EmptyCredentials(t *testing.T) {
	ctrl, _, svc := newUserService(t)
	defer ctrl.Finish()

	_, err := svc.VerifyUser(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestVerifyUser_UnexpectedRepositoryError(t *testing.T) {
	ctrl, repo, svc := newUserService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	dbErr := errors.New("connection lost")
	repo.EXPECT().FindUserByEmail(ctx, "a@b.com").Return(models.User{}, dbErr)

	_, err := svc.VerifyUser(ctx, "a@b.com", "Strong123!")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAuthenticationRejected)
}
