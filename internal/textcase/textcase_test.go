package textcase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"   ", ""},
		{"acme  stone   supply", "Acme Stone Supply"},
		{"BIG ROCK QUARRY", "Big Rock Quarry"},
		{"hill country LLC", "Hill Country LLC"},
		{"austin, TX", "Austin, TX"},
		{"#57 crushed limestone", "#57 Crushed Limestone"},
		{"3/4 river rock", "3/4 River Rock"},
		{"mcKINNEY", "Mckinney"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Title(tc.in), "Title(%q)", tc.in)
	}
}

func TestSentence(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"call before pickup", "Call before pickup"},
		{"gate closes at 5.  ask for Ron!   bring PPE", "Gate closes at 5. Ask for Ron! Bring PPE"},
		{"is it open? yes", "Is it open? Yes"},
		{"3 loads max. then stop", "3 loads max. Then stop"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Sentence(tc.in), "Sentence(%q)", tc.in)
	}
}

func TestPtr(t *testing.T) {
	assert.Nil(t, Ptr(nil, Title))

	blank := "   "
	assert.Nil(t, Ptr(&blank, Title))

	v := "  ROCK@Example.com "
	got := Ptr(&v, Email)
	if assert.NotNil(t, got) {
		assert.Equal(t, "rock@example.com", *got)
	}
	assert.Equal(t, "TX", Upper(" tx "))
}
