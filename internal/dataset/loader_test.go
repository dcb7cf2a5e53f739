package dataset

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.csv")
	content := "portname,country,ISO3,date,portcalls\n" +
		"Rotterdam,Netherlands,NLD,2024-01-01,10\n" +
		"Santos,Brazil,BRA,2024-01-02\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LoadCSV(path)
	assert.NoError(t, err)
	if assert.Len(t, records, 2) {
		assert.Equal(t, "Rotterdam", records[0]["portname"])
		assert.Equal(t, "10", records[0]["portcalls"])

		// Short row: the missing trailing cell stays absent.
		assert.Equal(t, "Santos", records[1]["portname"])
		_, ok := records[1]["portcalls"]
		assert.False(t, ok)
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestExtractAndFindCSV(t *testing.T) {
	dir := t.TempDir()
	archivePath := filepath.Join(dir, "archive.zip")

	f, err := os.Create(archivePath)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("nested/daily_activity.csv")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("portname,country\nRotterdam,Netherlands\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	assert.NoError(t, extract(archivePath, dir))

	// The archive is removed after extraction.
	_, err = os.Stat(archivePath)
	assert.True(t, os.IsNotExist(err))

	path, err := findCSV(dir)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "daily_activity.csv"), path)

	records, err := LoadCSV(path)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFindCSV_NoCSV(t *testing.T) {
	_, err := findCSV(t.TempDir())
	assert.ErrorIs(t, err, ErrNoCSVFound)
}
