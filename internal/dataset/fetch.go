package dataset

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var ErrNoCSVFound = errors.New("no csv file found in dataset archive")

// download fetches the dataset archive into dir and returns the archive path.
func download(ctx context.Context, client *http.Client, url, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dataset download failed: %s", resp.Status)
	}

	archivePath := filepath.Join(dir, "archive.zip")
	out, err := os.Create(archivePath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", err
	}
	return archivePath, nil
}

// extract unpacks every file of the archive into dir and removes the archive.
func extract(archivePath, dir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return err
	}

	for _, file := range reader.File {
		target := filepath.Join(dir, filepath.Base(file.Name))
		if file.FileInfo().IsDir() {
			continue
		}
		src, err := file.Open()
		if err != nil {
			reader.Close()
			return err
		}
		dst, err := os.Create(target)
		if err != nil {
			src.Close()
			reader.Close()
			return err
		}
		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			reader.Close()
			return err
		}
	}

	if err := reader.Close(); err != nil {
		return err
	}
	return os.Remove(archivePath)
}

// findCSV locates the extracted dataset file.
func findCSV(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			return filepath.Join(dir, entry.Name()), nil
		}
	}
	return "", ErrNoCSVFound
}
