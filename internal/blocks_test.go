package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroup(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"A", "A"},
		{"ABCDE", "ABCDE"},
		{"ABCDEF", "ABCDE F"},
		{"SLEEKXILRBIEATTP", "SLEEK XILRB IEATT P"},
		{"ÄÖÜSSÄÖ", "ÄÖÜSS ÄÖ"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Group(tt.input))
		})
	}
}

func TestGroupN(t *testing.T) {
	assert.Equal(t, "ABC DEF GHI J", GroupN("ABCDEFGHIJ", 3))
	assert.Equal(t, "A B C", GroupN("ABC", 1))
	assert.Equal(t, "ABCDEF", GroupN("ABCDEF", 0))
	assert.Equal(t, "ABCDEF", GroupN("ABCDEF", -1))
	assert.Equal(t, "ABC", GroupN("ABC", 10))
}

func TestUngroup(t *testing.T) {
	for _, width := range []int{1, 2, 5, 7} {
		s := "SLEEKXILRBIEATTP"
		assert.Equal(t, s, Ungroup(GroupN(s, width)), "width %d", width)
	}
	assert.Equal(t, "ABC", Ungroup(" A\tB\nC "))
}
