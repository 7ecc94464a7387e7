package herd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/herdbook/internal/domain/models"
)

func animal(id, name, motherID, fatherID string) models.Animal {
	return models.Animal{ID: id, Name: name, MotherID: motherID, FatherID: fatherID}
}

func TestResolveFamilyParentsAndGrandparents(t *testing.T) {
	grandma := animal("gm", "Grandma", "", "")
	grandpa := animal("gp", "Grandpa", "", "")
	mother := animal("m", "Bella", "gm", "gp")
	father := animal("f", "Duke", "", "")
	calf := animal("c", "Junior", "m", "f")

	herd := []models.Animal{grandma, grandpa, mother, father, calf}
	tree := ResolveFamily(calf, herd)

	require.NotNil(t, tree.Mother)
	assert.Equal(t, "Bella", tree.Mother.Name)
	require.NotNil(t, tree.Father)
	assert.Equal(t, "Duke", tree.Father.Name)

	require.NotNil(t, tree.MaternalGrandmother)
	assert.Equal(t, "gm", tree.MaternalGrandmother.ID)
	require.NotNil(t, tree.MaternalGrandfather)
	assert.Equal(t, "gp", tree.MaternalGrandfather.ID)
	assert.Nil(t, tree.PaternalGrandmother)
	assert.Nil(t, tree.PaternalGrandfather)
}

func TestResolveFamilyDanglingReferences(t *testing.T) {
	calf := animal("c", "Junior", "gone-mother", "gone-father")
	tree := ResolveFamily(calf, []models.Animal{calf})

	assert.Nil(t, tree.Mother)
	assert.Nil(t, tree.Father)
	assert.Empty(t, tree.Siblings)
	assert.Empty(t, tree.Offspring)
}

func TestResolveFamilySiblingClassification(t *testing.T) {
	subject := animal("a", "A", "m1", "f1")
	full := animal("b", "B", "m1", "f1")
	halfMother := animal("c", "C", "m1", "f2")
	halfFather := animal("d", "D", "m2", "f1")
	unrelated := animal("e", "E", "m3", "f3")

	herd := []models.Animal{subject, full, halfMother, halfFather, unrelated}
	tree := ResolveFamily(subject, herd)

	require.Len(t, tree.Siblings, 3)
	// Insertion order of the source collection is preserved.
	assert.Equal(t, "b", tree.Siblings[0].Animal.ID)
	assert.True(t, tree.Siblings[0].Full)
	assert.Equal(t, "c", tree.Siblings[1].Animal.ID)
	assert.False(t, tree.Siblings[1].Full)
	assert.Equal(t, "d", tree.Siblings[2].Animal.ID)
	assert.False(t, tree.Siblings[2].Full)
}

func TestResolveFamilyNoSiblingsWhenParentsUnset(t *testing.T) {
	subject := animal("a", "A", "", "")
	other := animal("b", "B", "", "")

	tree := ResolveFamily(subject, []models.Animal{subject, other})
	assert.Empty(t, tree.Siblings)
}

func TestResolveFamilyOffspring(t *testing.T) {
	bull := animal("bull", "Duke", "", "")
	cow := animal("cow", "Bella", "", "")
	calf1 := animal("c1", "One", "cow", "bull")
	calf2 := animal("c2", "Two", "cow", "")

	herd := []models.Animal{bull, cow, calf1, calf2}

	bullTree := ResolveFamily(bull, herd)
	require.Len(t, bullTree.Offspring, 1)
	assert.Equal(t, "c1", bullTree.Offspring[0].ID)

	cowTree := ResolveFamily(cow, herd)
	require.Len(t, cowTree.Offspring, 2)
}

func TestResolveFamilySelfReferenceTerminates(t *testing.T) {
	loop := animal("x", "Loop", "x", "")
	tree := ResolveFamily(loop, []models.Animal{loop})

	// The resolver walks one level only: the animal shows up as its own
	// mother and nothing recurses.
	require.NotNil(t, tree.Mother)
	assert.Equal(t, "x", tree.Mother.ID)
	require.NotNil(t, tree.MaternalGrandmother)
	assert.Equal(t, "x", tree.MaternalGrandmother.ID)
}
