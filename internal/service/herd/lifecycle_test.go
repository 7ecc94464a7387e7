package herd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/herdbook/internal/domain/models"
)

func TestIsActive(t *testing.T) {
	tests := []struct {
		name   string
		status models.AnimalStatus
		want   bool
	}{
		{"alive", models.StatusAlive, true},
		{"unset defaults to alive", "", true},
		{"sold", models.StatusSold, false},
		{"traded", models.StatusTraded, false},
		{"slaughtered", models.StatusSlaughtered, false},
		{"dead", models.StatusDead, false},
		{"stolen", models.StatusStolen, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsActive(models.Animal{Status: tt.status}))
		})
	}
}

func TestFilterActive(t *testing.T) {
	herd := []models.Animal{
		{ID: "a", Status: models.StatusAlive},
		{ID: "b", Status: models.StatusSold},
		{ID: "c"},
		{ID: "d", Status: models.StatusDead},
	}

	active := FilterActive(herd)
	assert.Len(t, active, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "c", active[1].ID)
}
