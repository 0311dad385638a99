package csvio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := "a,b,c\n1,2,3\n4,5,6\n"

	table, err := Read(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, table.Header)
	assert.Equal(t, [][]string{{"1", "2", "3"}, {"4", "5", "6"}}, table.Rows)
}

func TestRead_RaggedRowsTolerated(t *testing.T) {
	// Schema enforcement belongs to the caller, not the parser.
	input := "a,b,c\n1,2\n"

	table, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}}, table.Rows)
}

func TestRead_QuotedFields(t *testing.T) {
	input := "statement,dept\n\"hello, world\",Service\n"

	table, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "hello, world", table.Rows[0][0])
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	assert.Error(t, err)
}

func TestRead_HeaderOnly(t *testing.T) {
	table, err := Read(strings.NewReader("a,b,c\n"))
	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestTable_Column(t *testing.T) {
	table := &Table{Header: []string{"a", "b", "c"}}

	idx, ok := table.Column("b")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = table.Column("missing")
	assert.False(t, ok)
}

func TestWriteReadRoundTrip(t *testing.T) {
	table := &Table{
		Header: []string{"statement", "dept", "conf"},
		Rows: [][]string{
			{"hello, world", "Service", "0.9"},
			{"line\nbreak", "Tax", "0.4"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	table := &Table{
		Header: []string{"a", "b"},
		Rows:   [][]string{{"1", "2"}},
	}

	require.NoError(t, WriteFile(path, table))

	got, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, table, got)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
