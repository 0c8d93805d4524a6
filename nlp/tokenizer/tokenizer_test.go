package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Cats are great.", []string{"cats", "are", "great"}},
		{"cool, awesome; (something) else: and-yup", []string{"cool", "awesome", "something", "else", "and", "yup"}},
		{`He said "don't" 3 times`, []string{"he", "said", "don", "t", "3", "times"}},
		{"Über Straße", []string{"über", "straße"}},
		{"...", nil},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Words(tc.in))
		})
	}
}

func TestWordsFolded(t *testing.T) {
	assert.Equal(t, []string{"creme", "brulee"}, WordsFolded("Crème Brûlée!", true))
}
