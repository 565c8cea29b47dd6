package fetcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV_Basic(t *testing.T) {
	input := "Name,Salary\nJosh Allen,8400\nCeeDee Lamb,7900\n"
	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Name", "Salary"}, records[0])
	assert.Equal(t, []string{"Josh Allen", "8400"}, records[1])
}

func TestReadCSV_RaggedRows(t *testing.T) {
	input := "a,b,c\n1,2\nx,y,z,extra\n"
	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Len(t, records[1], 2)
	assert.Len(t, records[2], 4)
}

func TestReadCSV_TrimsWhitespace(t *testing.T) {
	input := " a , b \n 1 ,2\n"
	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, records[0])
	assert.Equal(t, []string{"1", "2"}, records[1])
}

func TestReadCSV_Empty(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odds.csv")
	require.NoError(t, os.WriteFile(path, []byte("team,spread\nBUF,-3.5\n"), 0o644))

	records, err := ReadCSVFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"BUF", "-3.5"}, records[1])
}

func TestReadCSVFile_Missing(t *testing.T) {
	_, err := ReadCSVFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
