package herd

import "github.com/mamadbah2/herdbook/internal/domain/models"

// IsActive reports whether an animal is still part of the working herd. An
// empty status counts as alive: records created before the status field
// existed carry none.
func IsActive(a models.Animal) bool {
	return a.Status == "" || a.Status == models.StatusAlive
}

// FilterActive returns the animals that pass IsActive, preserving order.
func FilterActive(animals []models.Animal) []models.Animal {
	var active []models.Animal
	for _, a := range animals {
		if IsActive(a) {
			active = append(active, a)
		}
	}
	return active
}
