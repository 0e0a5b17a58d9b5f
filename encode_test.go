package quotes

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONDocument(t *testing.T) {
	codec, err := NewCodec(JSON)
	require.NoError(t, err)
	assert.Equal(t, ".json", codec.Ext())

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, week()))

	want := `{
  "dates": {
    "2020-01-01": {
      "start": 90,
      "end": 100,
      "high": 105,
      "low": 88,
      "volume": 100
    },
    "2020-01-03": {
      "start": 101,
      "end": 108,
      "high": 140,
      "low": 99,
      "volume": 250
    },
    "2020-01-05": {
      "start": 110,
      "end": 120,
      "high": 130,
      "low": 95,
      "volume": 500
    }
  }
}
`
	assert.Equal(t, want, buf.String())

	got, err := codec.Decode(&buf)
	require.NoError(t, err)
	assert.True(t, got.Equal(week()), "decoded series differs from the encoded one")
}

func TestJSONDocumentErrors(t *testing.T) {
	codec, err := NewCodec(JSON)
	require.NoError(t, err)

	for name, doc := range map[string]string{
		"float price":     `{"dates":{"2020-01-01":{"start":10.5,"end":1,"high":1,"low":1,"volume":1}}}`,
		"negative volume": `{"dates":{"2020-01-01":{"start":1,"end":1,"high":1,"low":1,"volume":-1}}}`,
		"invalid date":    `{"dates":{"2020-02-30":{"start":1,"end":1,"high":1,"low":1,"volume":1}}}`,
		"not json":        `dates: []`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}

	s, err := codec.Decode(strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestMsgPackDocument(t *testing.T) {
	codec, err := NewCodec(MsgPack)
	require.NoError(t, err)
	assert.Equal(t, ".msgpack", codec.Ext())

	var a, b bytes.Buffer
	require.NoError(t, codec.Encode(&a, week()))
	require.NoError(t, codec.Encode(&b, week()))
	assert.Equal(t, a.Bytes(), b.Bytes(), "encoding must be stable")

	got, err := codec.Decode(&a)
	require.NoError(t, err)
	assert.True(t, got.Equal(week()), "decoded series differs from the encoded one")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	f, err = ParseFormat("MsgPack")
	require.NoError(t, err)
	assert.Equal(t, MsgPack, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
	_, err = NewCodec("xml")
	assert.Error(t, err)
}
