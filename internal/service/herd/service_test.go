package herd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herdbook/internal/domain/models"
	"github.com/mamadbah2/herdbook/internal/repository/memory"
)

func newTestService() *Service {
	return NewService(memory.NewStore(), nil)
}

func TestCreateAndGetAnimal(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, AnimalInput{Name: "Bella", Sex: models.SexFemale, Age: 4})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.StatusAlive, created.Status)
	assert.NotEmpty(t, created.CreatedAt)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bella", got.Name)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrAnimalNotFound)
}

func TestCreatePrependsNewestFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, AnimalInput{Name: "First", Sex: models.SexFemale})
	require.NoError(t, err)
	_, err = svc.Create(ctx, AnimalInput{Name: "Second", Sex: models.SexMale})
	require.NoError(t, err)

	animals, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, animals, 2)
	assert.Equal(t, "Second", animals[0].Name)
}

func TestChangeStatus(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, AnimalInput{Name: "Duke", Sex: models.SexMale})
	require.NoError(t, err)

	updated, err := svc.ChangeStatus(ctx, created.ID, models.StatusSold, "sold to neighbor")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSold, updated.Status)
	assert.Equal(t, "sold to neighbor", updated.StatusNote)
	assert.False(t, IsActive(updated))

	_, err = svc.ChangeStatus(ctx, "missing", models.StatusDead, "")
	assert.ErrorIs(t, err, ErrAnimalNotFound)
}

func TestAddBirthRecordLinksCalfToMother(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	mother, err := svc.Create(ctx, AnimalInput{Name: "Bella", Sex: models.SexFemale})
	require.NoError(t, err)
	calf, err := svc.Create(ctx, AnimalInput{Name: "Junior", Sex: models.SexMale})
	require.NoError(t, err)

	record, err := svc.AddBirthRecord(ctx, mother.ID, BirthRecordInput{
		CalfID:      calf.ID,
		BirthDate:   "2024-04-01",
		BirthWeight: 35,
	})
	require.NoError(t, err)
	assert.Equal(t, "Junior", record.CalfName)

	// Both mutations land in the same write: the record on the mother and
	// the back-link on the calf.
	gotMother, err := svc.Get(ctx, mother.ID)
	require.NoError(t, err)
	require.Len(t, gotMother.BirthRecords, 1)
	assert.Equal(t, record.ID, gotMother.BirthRecords[0].ID)

	gotCalf, err := svc.Get(ctx, calf.ID)
	require.NoError(t, err)
	assert.Equal(t, mother.ID, gotCalf.MotherID)
}

func TestAddBirthRecordUnknownCalfName(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	mother, err := svc.Create(ctx, AnimalInput{Name: "Bella", Sex: models.SexFemale})
	require.NoError(t, err)

	record, err := svc.AddBirthRecord(ctx, mother.ID, BirthRecordInput{
		CalfID:    "never-registered",
		BirthDate: "2024-04-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", record.CalfName)
}

func TestDeleteBirthRecord(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	mother, err := svc.Create(ctx, AnimalInput{Name: "Bella", Sex: models.SexFemale})
	require.NoError(t, err)
	calf, err := svc.Create(ctx, AnimalInput{Name: "Junior", Sex: models.SexMale})
	require.NoError(t, err)

	record, err := svc.AddBirthRecord(ctx, mother.ID, BirthRecordInput{CalfID: calf.ID, BirthDate: "2024-04-01"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBirthRecord(ctx, mother.ID, record.ID))

	gotMother, err := svc.Get(ctx, mother.ID)
	require.NoError(t, err)
	assert.Empty(t, gotMother.BirthRecords)

	// The calf keeps its mother link; only the record is owned.
	gotCalf, err := svc.Get(ctx, calf.ID)
	require.NoError(t, err)
	assert.Equal(t, mother.ID, gotCalf.MotherID)

	err = svc.DeleteBirthRecord(ctx, mother.ID, record.ID)
	assert.ErrorIs(t, err, ErrBirthRecordNotFound)
}

func TestDeleteAnimalLeavesDanglingParentLinks(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	mother, err := svc.Create(ctx, AnimalInput{Name: "Bella", Sex: models.SexFemale})
	require.NoError(t, err)
	calf, err := svc.Create(ctx, AnimalInput{Name: "Junior", Sex: models.SexMale, MotherID: mother.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, mother.ID))

	// No cascade: the calf still points at the deleted mother and the
	// resolver degrades to an empty slot.
	gotCalf, err := svc.Get(ctx, calf.ID)
	require.NoError(t, err)
	assert.Equal(t, mother.ID, gotCalf.MotherID)

	tree, err := svc.Family(ctx, calf.ID)
	require.NoError(t, err)
	assert.Nil(t, tree.Mother)
}

func TestStats(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, AnimalInput{Name: "Bella", Sex: models.SexFemale})
	require.NoError(t, err)
	bull, err := svc.Create(ctx, AnimalInput{Name: "Duke", Sex: models.SexMale})
	require.NoError(t, err)
	_, err = svc.ChangeStatus(ctx, bull.ID, models.StatusSold, "")
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 2, Active: 1, Cows: 1, Bulls: 1}, stats)
}
