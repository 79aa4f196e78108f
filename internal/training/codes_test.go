package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinationCode(t *testing.T) {
	testCases := []struct {
		name     string
		legs     bool
		arms     bool
		expected string
	}{
		{name: "both", legs: true, arms: true, expected: "в/к"},
		{name: "neither", legs: false, arms: false, expected: "упр."},
		{name: "legs only", legs: true, arms: false, expected: "н/н"},
		{name: "arms only", legs: false, arms: true, expected: "н/р"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CoordinationCode(tc.legs, tc.arms))
		})
	}
}

func TestEquipmentCode(t *testing.T) {
	assert.Equal(t, "", EquipmentCode(Equipment{}))
	assert.Equal(t, " с доской", EquipmentCode(Equipment{KickBoard: true}))
	assert.Equal(t, " с колобашкой", EquipmentCode(Equipment{PullBuoy: true}))

	// kick board wins over pull buoy, never both
	assert.Equal(t, " с доской", EquipmentCode(Equipment{KickBoard: true, PullBuoy: true}))

	// paddles and snorkel append independently, no separator beyond the parts themselves
	assert.Equal(t, " с лопатками с трубкой", EquipmentCode(Equipment{Paddles: true, Snorkel: true}))
	assert.Equal(
		t,
		" с колобашкой с лопатками с трубкой",
		EquipmentCode(Equipment{PullBuoy: true, Paddles: true, Snorkel: true}),
	)
}
