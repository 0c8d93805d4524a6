package segmenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentenceSplit(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "Cats are great. Dogs are great too. Cats and dogs are pets.",
			[]string{"Cats are great.", "Dogs are great too.", "Cats and dogs are pets."}},
		{"mixed terminators", "Really? Yes! It works.",
			[]string{"Really?", "Yes!", "It works."}},
		{"lowercase continuation", "Pi is approx. three. Next one.",
			[]string{"Pi is approx. three.", "Next one."}},
		{"decimal", "It costs 3.50 dollars. Cheap.",
			[]string{"It costs 3.50 dollars.", "Cheap."}},
		{"quotes", `She said "stop." "Why?" he asked. Fine.`,
			[]string{`She said "stop."`, `"Why?" he asked.`, "Fine."}},
		{"extra spaces", "  One.   Two.  ",
			[]string{"One.", "Two."}},
		{"leading dots", "... and then. Done.",
			[]string{"and then.", "Done."}},
		{"no terminator", "just words",
			[]string{"just words"}},
		{"empty", "   ", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SentenceSplit(tc.in))
		})
	}
}

func TestParagraphSplit(t *testing.T) {
	got := ParagraphSplit("First para.\nstill first.\n\n  \nSecond para.\r\n\r\nThird.\n\n")
	assert.Equal(t, []string{"First para.\nstill first.", "Second para.", "Third."}, got)
}

func TestSegment(t *testing.T) {
	got := Segment("Cats are great.  Dogs are great too.\n\nCats and dogs are pets.", false)
	require.Len(t, got, 3)
	assert.Equal(t, "Dogs are great too.", got[1].Text)
	assert.Equal(t, []string{"dogs", "are", "great", "too"}, got[1].Tokens)
	assert.Equal(t, []string{"cats", "and", "dogs", "are", "pets"}, got[2].Tokens)

	folded := Segment("Crème brûlée. Très bien.", true)
	require.Len(t, folded, 2)
	assert.Equal(t, "Crème brûlée.", folded[0].Text)
	assert.Equal(t, []string{"creme", "brulee"}, folded[0].Tokens)

	assert.Empty(t, Segment("", false))
}
