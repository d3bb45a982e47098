package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Validate(t *testing.T) {
	assert.ErrorIs(t, Catalog{}.Validate(), ErrEmptyCatalog)
	assert.NoError(t, NewCatalog([]string{"Работа"}, "", "").Validate())
}

func TestCatalog_SleepPair(t *testing.T) {
	c := NewCatalog([]string{"Работа", "Почивка", "Лягане", "Ставане"}, "Лягане", "Ставане")
	assert.True(t, c.HasSleepPair())
	assert.Equal(t, ActivityName("Работа"), c.First())
	assert.Equal(t, 2, c.Middle())

	missing := NewCatalog([]string{"Работа", "Лягане"}, "Лягане", "Ставане")
	assert.False(t, missing.HasSleepPair())
}

func TestCatalog_FirstOfEmpty(t *testing.T) {
	assert.Equal(t, ActivityName(""), Catalog{}.First())
}

func TestSleepRule_Matches(t *testing.T) {
	tests := []struct {
		name     string
		rule     SleepRule
		previous ActivityName
		selected ActivityName
		want     bool
	}{
		{"pair", testRule, "Лягане", "Ставане", true},
		{"reversed", testRule, "Ставане", "Лягане", false},
		{"other", testRule, "Работа", "Ставане", false},
		{"empty rule", SleepRule{}, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Matches(tt.previous, tt.selected))
		})
	}
}
