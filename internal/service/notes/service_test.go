package notes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herdbook/internal/repository/memory"
)

func newTestService() *Service {
	return NewService(memory.NewStore(), nil)
}

func TestCreateAndList(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{Title: "First", Content: "Bella limping slightly"})
	require.NoError(t, err)
	created, err := svc.Create(ctx, Input{Title: "Second", Content: "Ordered feed", AnimalID: "a1"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].Title)
}

func TestUpdate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	note, err := svc.Create(ctx, Input{Title: "Draft", Content: "tbd"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, note.ID, Input{Title: "Final", Content: "Bella recovered", AnimalID: "a1"})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "Bella recovered", updated.Content)
	assert.Equal(t, "a1", updated.AnimalID)
	assert.Equal(t, note.CreatedAt, updated.CreatedAt)

	_, err = svc.Update(ctx, "missing", Input{Title: "x", Content: "y"})
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	note, err := svc.Create(ctx, Input{Title: "Temp", Content: "gone soon"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, note.ID))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, svc.Delete(ctx, note.ID), ErrNoteNotFound)
}

func TestCountForAnimal(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{Title: "One", Content: "a", AnimalID: "a1"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, Input{Title: "Two", Content: "b", AnimalID: "a2"})
	require.NoError(t, err)

	count, err := svc.CountForAnimal(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
