package herd

import "github.com/mamadbah2/herdbook/internal/domain/models"

// Sibling pairs a sibling animal with its classification. Full means both
// parent ids match the subject's on both sides; anything else is a half
// sibling.
type Sibling struct {
	Animal models.Animal `json:"animal"`
	Full   bool          `json:"full"`
}

// FamilyTree is the resolved one-level lineage of an animal. Nil pointers mean
// the relation is unset or dangles; callers render those as "Unknown".
type FamilyTree struct {
	Mother              *models.Animal  `json:"mother,omitempty"`
	Father              *models.Animal  `json:"father,omitempty"`
	MaternalGrandmother *models.Animal  `json:"maternalGrandmother,omitempty"`
	MaternalGrandfather *models.Animal  `json:"maternalGrandfather,omitempty"`
	PaternalGrandmother *models.Animal  `json:"paternalGrandmother,omitempty"`
	PaternalGrandfather *models.Animal  `json:"paternalGrandfather,omitempty"`
	Siblings            []Sibling       `json:"siblings"`
	Offspring           []models.Animal `json:"offspring"`
}

// ResolveFamily computes the family tree of an animal against the full herd.
// Parent references are weak: unmatched ids resolve to nil rather than
// erroring. Only one parent and one grandparent level is walked, so a
// self-referencing or cyclic parent link surfaces the animal itself in a slot
// instead of recursing; such links are tolerated, not rejected.
func ResolveFamily(animal models.Animal, animals []models.Animal) FamilyTree {
	tree := FamilyTree{
		Mother: findByID(animals, animal.MotherID),
		Father: findByID(animals, animal.FatherID),
	}

	if tree.Mother != nil {
		tree.MaternalGrandmother = findByID(animals, tree.Mother.MotherID)
		tree.MaternalGrandfather = findByID(animals, tree.Mother.FatherID)
	}
	if tree.Father != nil {
		tree.PaternalGrandmother = findByID(animals, tree.Father.MotherID)
		tree.PaternalGrandfather = findByID(animals, tree.Father.FatherID)
	}

	for _, b := range animals {
		if b.ID == animal.ID {
			continue
		}
		sharesMother := animal.MotherID != "" && b.MotherID == animal.MotherID
		sharesFather := animal.FatherID != "" && b.FatherID == animal.FatherID
		if sharesMother || sharesFather {
			tree.Siblings = append(tree.Siblings, Sibling{
				Animal: b,
				Full:   b.MotherID == animal.MotherID && b.FatherID == animal.FatherID,
			})
		}
	}

	for _, b := range animals {
		if b.MotherID == animal.ID || b.FatherID == animal.ID {
			tree.Offspring = append(tree.Offspring, b)
		}
	}

	return tree
}

func findByID(animals []models.Animal, id string) *models.Animal {
	if id == "" {
		return nil
	}
	for i := range animals {
		if animals[i].ID == id {
			return &animals[i]
		}
	}
	return nil
}
