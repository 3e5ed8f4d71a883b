package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/felixbrock/designkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLiteSubmissionRepo {
	t.Helper()

	repo, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "designkit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestSQLiteSubmissionRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestSQLite(t)

	require.NoError(t, repo.Insert(ctx, sample()))

	got, err := repo.Read(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, sample(), *got)

	prompt := "# Build your app - iOS App"
	images := []string{"https://images.unsplash.com/a"}
	require.NoError(t, repo.Update(ctx, "sub-1", domain.SubmissionPatch{GeneratedPrompt: &prompt, MoodboardImages: &images}))

	sent := true
	require.NoError(t, repo.Update(ctx, "sub-1", domain.SubmissionPatch{EmailSent: &sent}))

	got, err = repo.Read(ctx, "sub-1")
	require.NoError(t, err)
	require.NotNil(t, got.GeneratedPrompt)
	assert.Equal(t, prompt, *got.GeneratedPrompt)
	assert.Equal(t, images, got.MoodboardImages)
	assert.True(t, got.EmailSent)
	assert.Equal(t, "Ada", *got.Name)
}

func TestSQLiteSubmissionRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := openTestSQLite(t)

	_, err := repo.Read(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	sent := true
	err = repo.Update(ctx, "missing", domain.SubmissionPatch{EmailSent: &sent})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteSubmissionRepo_DuplicateId(t *testing.T) {
	ctx := context.Background()
	repo := openTestSQLite(t)

	require.NoError(t, repo.Insert(ctx, sample()))
	assert.Error(t, repo.Insert(ctx, sample()))
}
