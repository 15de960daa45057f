package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	created, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.False(t, created.DateJoined.IsZero())

	details, err := repo.GetDetails(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", details.Email)
	assert.Nil(t, details.Description)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)

	_, err = repo.Create(ctx, "alice", "other@example.com", "Secret123")
	assert.ErrorIs(t, err, ErrUsernameExists)

	// The failed insert must not poison the transactional scope.
	details, err := repo.GetDetails(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", details.Email)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)

	_, err = repo.Create(ctx, "bob", "alice@example.com", "Secret123")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestCreateUser_Validation(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	for _, tc := range []struct {
		name                      string
		username, email, password string
	}{
		{"empty username", "", "a@example.com", "Secret123"},
		{"blank username", "   ", "a@example.com", "Secret123"},
		{"empty email", "alice", "", "Secret123"},
		{"empty password", "alice", "a@example.com", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repo.Create(ctx, tc.username, tc.email, tc.password)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestCreateUser_PasswordIsHashed(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	// nil hasher defaults to bcrypt
	repo := NewUserRepository(savepointRunner(t, db), nil)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)

	user, err := repo.GetByEmail(ctx, "alice@example.com")
	assert.NoError(t, err)
	assert.NotEqual(t, "Secret123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Secret123")))
}

func TestGetByEmail_Missing(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetDetails_Missing(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	details, err := repo.GetDetails(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, details)
}

func TestRename(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)

	renamed, err := repo.Rename(ctx, "alice", "alice2")
	assert.NoError(t, err)
	assert.Equal(t, "alice2", renamed)

	old, err := repo.GetDetails(ctx, "alice")
	assert.NoError(t, err)
	assert.Nil(t, old)

	details, err := repo.GetDetails(ctx, "alice2")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", details.Email)
}

func TestRename_NotFound(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Rename(context.Background(), "nobody", "somebody")
	assert.True(t, IsNotFound(err))
}

func TestRename_Taken(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)
	_, err = repo.Create(ctx, "bob", "bob@example.com", "Secret123")
	assert.NoError(t, err)

	_, err = repo.Rename(ctx, "alice", "bob")
	assert.ErrorIs(t, err, ErrUsernameExists)

	// Renaming to your own current name is not a conflict.
	renamed, err := repo.Rename(ctx, "alice", "alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", renamed)
}

func TestRename_CascadesIntoFriendships(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)
	_, err = repo.Create(ctx, "bob", "bob@example.com", "Secret123")
	assert.NoError(t, err)
	assert.NoError(t, repo.Follow(ctx, "alice", "bob"))

	_, err = repo.Rename(ctx, "bob", "bobby")
	assert.NoError(t, err)

	following, err := repo.ListFollowing(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, []string{"bobby"}, following)

	followers, err := repo.ListFollowers(ctx, "bobby")
	assert.NoError(t, err)
	assert.Equal(t, []string{"alice"}, followers)
}

func TestUpdateDescription(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)

	desc := "reads a lot"
	assert.NoError(t, repo.UpdateDescription(ctx, "alice", &desc))

	details, err := repo.GetDetails(ctx, "alice")
	assert.NoError(t, err)
	assert.NotNil(t, details.Description)
	assert.Equal(t, "reads a lot", *details.Description)

	// nil clears the description
	assert.NoError(t, repo.UpdateDescription(ctx, "alice", nil))
	details, err = repo.GetDetails(ctx, "alice")
	assert.NoError(t, err)
	assert.Nil(t, details.Description)
}

func TestUpdateDescription_NotFound(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	desc := "reads a lot"
	err := repo.UpdateDescription(context.Background(), "nobody", &desc)
	assert.True(t, IsNotFound(err))
}

func TestDeleteUser(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)

	deleted, err := repo.Delete(ctx, "alice")
	assert.NoError(t, err)
	assert.True(t, deleted.Deleted)

	details, err := repo.GetDetails(ctx, "alice")
	assert.NoError(t, err)
	assert.Nil(t, details)

	// Deleting an absent user is not an error; Deleted reports it.
	deleted, err = repo.Delete(ctx, "alice")
	assert.NoError(t, err)
	assert.False(t, deleted.Deleted)
}

func TestDeleteUser_CascadesFriendshipsAndBooks(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	runner := savepointRunner(t, db)
	users := NewUserRepository(runner, plainHasher)
	books := NewLibraryRepository(runner)

	_, err := users.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)
	_, err = users.Create(ctx, "bob", "bob@example.com", "Secret123")
	assert.NoError(t, err)

	assert.NoError(t, users.Follow(ctx, "alice", "bob"))
	assert.NoError(t, users.Follow(ctx, "bob", "alice"))
	_, err = books.Upsert(ctx, "bob", "vol-1", nil, nil, nil, nil)
	assert.NoError(t, err)

	_, err = users.Delete(ctx, "bob")
	assert.NoError(t, err)

	following, err := users.ListFollowing(ctx, "alice")
	assert.NoError(t, err)
	assert.Empty(t, following)

	followers, err := users.ListFollowers(ctx, "alice")
	assert.NoError(t, err)
	assert.Empty(t, followers)

	entries, err := books.List(ctx, "bob")
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFollow(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)
	_, err = repo.Create(ctx, "bob", "bob@example.com", "Secret123")
	assert.NoError(t, err)

	assert.NoError(t, repo.Follow(ctx, "alice", "bob"))

	// Follow edges are one-way.
	following, err := repo.ListFollowing(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, []string{"bob"}, following)

	following, err = repo.ListFollowing(ctx, "bob")
	assert.NoError(t, err)
	assert.Empty(t, following)

	followers, err := repo.ListFollowers(ctx, "bob")
	assert.NoError(t, err)
	assert.Equal(t, []string{"alice"}, followers)
}

func TestFollow_Self(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)

	err = repo.Follow(ctx, "alice", "alice")
	assert.ErrorIs(t, err, ErrSelfReference)
}

func TestFollow_MissingFollowee(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)

	err = repo.Follow(ctx, "alice", "nobody")
	assert.True(t, IsNotFound(err))
}

func TestFollow_Duplicate(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)
	_, err = repo.Create(ctx, "bob", "bob@example.com", "Secret123")
	assert.NoError(t, err)

	assert.NoError(t, repo.Follow(ctx, "alice", "bob"))
	err = repo.Follow(ctx, "alice", "bob")
	assert.ErrorIs(t, err, ErrAlreadyFollowing)
}

func TestUnfollow(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewUserRepository(savepointRunner(t, db), plainHasher)

	_, err := repo.Create(ctx, "alice", "alice@example.com", "Secret123")
	assert.NoError(t, err)
	_, err = repo.Create(ctx, "bob", "bob@example.com", "Secret123")
	assert.NoError(t, err)
	assert.NoError(t, repo.Follow(ctx, "alice", "bob"))

	assert.NoError(t, repo.Unfollow(ctx, "alice", "bob"))

	following, err := repo.ListFollowing(ctx, "alice")
	assert.NoError(t, err)
	assert.Empty(t, following)

	err = repo.Unfollow(ctx, "alice", "bob")
	assert.True(t, IsNotFound(err))
}
