package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tripboard/internal/domain/models"
)

func TestPriorityMeta(t *testing.T) {
	assert.Equal(t, "Urgent", PriorityMeta(models.PriorityUrgent).Label)
	assert.Equal(t, "high", PriorityMeta(" HIGH ").Key)

	unknown := PriorityMeta("someday")
	assert.Equal(t, "someday", unknown.Label)
	assert.Equal(t, neutralColor, unknown.Color)

	assert.Equal(t, "None", PriorityMeta("").Label)
}

func TestStatusMeta(t *testing.T) {
	assert.Equal(t, "Active", StatusMeta(models.TripStatusActive).Label)
	assert.Equal(t, "Completed", StatusMeta("COMPLETED").Label)
	assert.Equal(t, "other", StatusMeta("archived").Key)
	assert.Equal(t, "other", StatusMeta("").Key)
}
