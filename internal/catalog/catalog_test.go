package catalog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultHasFiveRecordsInDisplayOrder(t *testing.T) {
	c := Default()
	require.Equal(t, 5, c.Len())
	require.Equal(t, []string{
		"Prueba de Suficiencia Académica",
		"Curso Preuniversitario",
		"Admisión Especial",
		"Excelencia Académica",
		"Admisión de Profesionales",
	}, c.Titles())
	for i, r := range c.All() {
		require.NotEmpty(t, r.Title, "record %d", i)
		require.NotEmpty(t, r.Description, "record %d", i)
		require.NotEmpty(t, r.Icon, "record %d", i)
	}
}

func TestDefaultDescriptionsJoinContinuationLines(t *testing.T) {
	r, ok := Default().At(0)
	require.True(t, ok)
	require.NotContains(t, r.Description, "\n")
	require.NotContains(t, r.Description, "  ")
	require.True(t, strings.HasPrefix(r.Description, "Examen escrito"))
}

func TestAllReturnsCopy(t *testing.T) {
	c := New(Record{Title: "a", Icon: IconExam, Description: "x"})
	all := c.All()
	all[0].Title = "mutated"
	r, _ := c.At(0)
	require.Equal(t, "a", r.Title)
}

func TestNewCopiesInput(t *testing.T) {
	in := []Record{{Title: "a", Icon: IconExam, Description: "x"}}
	c := New(in...)
	in[0].Title = "mutated"
	r, _ := c.At(0)
	require.Equal(t, "a", r.Title)
}

func TestAtOutOfRange(t *testing.T) {
	c := Default()
	_, ok := c.At(-1)
	require.False(t, ok)
	_, ok = c.At(c.Len())
	require.False(t, ok)
}

func TestParseRejectsIncompleteRecords(t *testing.T) {
	cases := map[string]string{
		"title":       "[[modality]]\ntitle = \"\"\nicon = \"exam\"\ndescription = \"d\"\n",
		"description": "[[modality]]\ntitle = \"t\"\nicon = \"exam\"\ndescription = \" \"\n",
		"icon":        "[[modality]]\ntitle = \"t\"\ndescription = \"d\"\n",
	}
	for field, doc := range cases {
		_, err := Parse([]byte(doc))
		require.Error(t, err, field)
		require.Contains(t, err.Error(), field)
	}
}

func TestParseAllowsEmptyCatalog(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	require.Zero(t, c.Len())
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse([]byte("[[modality]\n"))
	require.Error(t, err)
}

func TestFind(t *testing.T) {
	c := Default()
	cases := []struct {
		query string
		want  int
	}{
		{"1", 0},
		{"5", 4},
		{"Admisión Especial", 2},
		{"admision especial", 2},
		{"  ADMISIÓN   especial ", 2},
		{"curso", 1},
		{"excel", 3},
		{"curso preuniversitaro", 1},
		{"admision de profesionale", 4},
	}
	for _, tc := range cases {
		got, err := c.Find(tc.query)
		require.NoError(t, err, tc.query)
		require.Equal(t, tc.want, got, tc.query)
	}
}

func TestFindErrors(t *testing.T) {
	c := Default()
	for _, q := range []string{"", "0", "6", "admision", "veterinaria"} {
		_, err := c.Find(q)
		require.ErrorIs(t, err, ErrNotFound, q)
	}
}

func TestEncodeText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf, "text"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	require.Equal(t, "3. Admisión Especial", lines[2])
}

func TestEncodeStructuredFormatsKeepOrder(t *testing.T) {
	c := Default()
	decoders := map[string]func([]byte, *exportFile) error{
		"json": func(b []byte, f *exportFile) error { return json.Unmarshal(b, f) },
		"yaml": func(b []byte, f *exportFile) error { return yaml.Unmarshal(b, f) },
		"toml": func(b []byte, f *exportFile) error { return toml.Unmarshal(b, f) },
	}
	for format, decode := range decoders {
		var buf bytes.Buffer
		require.NoError(t, c.Encode(&buf, format), format)
		var got exportFile
		require.NoError(t, decode(buf.Bytes(), &got), format)
		require.Equal(t, c.All(), got.Modality, format)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	err := Default().Encode(&bytes.Buffer{}, "xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}
