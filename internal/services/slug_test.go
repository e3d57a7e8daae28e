package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		state    string
		expected string
	}{
		{"plain name", "John", "Smith", "CA", "john-smith-ca"},
		{"apostrophe", "Liam", "O'Brien", "NY", "liam-o-brien-ny"},
		{"hyphenated last name", "Ana", "Garcia-Lopez", "TX", "ana-garcia-lopez-tx"},
		{"punctuation run collapses", "J...R", "Smith!!", "FL", "j-r-smith-fl"},
		{"leading and trailing junk", " John ", " Smith. ", "WA", "john-smith-wa"},
		{"mixed case state", "Mary", "Jones", "Co", "mary-jones-co"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.first, tt.last, tt.state))
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	first := Slugify("Sarah", "O'Connor", "AZ")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Slugify("Sarah", "O'Connor", "AZ"))
	}
}
