package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/oarkflow/textrank/nlp/textrank"
)

var joined = &textrank.Summary{
	Format: textrank.Joined,
	Text:   "Cats are great. Dogs are great too.",
	Selected: []textrank.Ranked{
		{ID: 0, Text: "Cats are great.", Score: 1.04},
		{ID: 1, Text: "Dogs are great too.", Score: 0.99},
	},
	Iterations: 16,
	Converged:  true,
}

func TestEncodeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, Text, FromSummary(joined)))
	assert.Equal(t, "Cats are great. Dogs are great too.\n", buf.String())

	list := *joined
	list.Format = textrank.List
	list.Text = ""
	list.Sentences = []string{"Cats are great.", "Dogs are great too."}
	buf.Reset()
	require.NoError(t, Encode(&buf, Text, FromSummary(&list)))
	assert.Equal(t, "Cats are great.\nDogs are great too.\n", buf.String())
}

func TestEncodeStructured(t *testing.T) {
	doc := FromSummary(joined)

	s, err := ToJSON(doc)
	require.NoError(t, err)
	assert.Contains(t, s, `"summary":"Cats are great. Dogs are great too."`)
	assert.Contains(t, s, `"converged":true`)
	assert.NotContains(t, s, `"sentences"`)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, YAML, doc))
	var fromYAML Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, *doc, fromYAML)

	buf.Reset()
	require.NoError(t, Encode(&buf, MsgPack, doc))
	var fromMsgPack Document
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &fromMsgPack))
	assert.Equal(t, *doc, fromMsgPack)

	assert.Error(t, Encode(&buf, Format("xml"), doc))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": Text, "JSON": JSON, "yml": YAML, "msgpack": MsgPack} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
	assert.Equal(t, "application/msgpack", ContentType(MsgPack))
}
