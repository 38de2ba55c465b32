package utils

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge   = errors.New("File exceeds the maximum allowed size!")
	ErrNotPDF         = errors.New("Only PDF files are allowed!")
	ErrNoFileUploaded = errors.New("No PDF file uploaded!")
)

// SaveUploadedPDF validates and stores an uploaded PDF under destDir with a
// generated name, returning that name. Size and content type are checked
// before anything is written, so a rejected upload leaves no partial file.
func SaveUploadedPDF(file *multipart.FileHeader, destDir string, maxSize int64) (string, error) {
	if file == nil {
		return "", ErrNoFileUploaded
	}
	if file.Size > maxSize {
		return "", ErrFileTooLarge
	}
	contentType := file.Header.Get("Content-Type")
	if contentType != "application/pdf" || !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return "", ErrNotPDF
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	newFilename := "pdf-" + uuid.NewString() + ".pdf"
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return "", err
	}

	return newFilename, nil
}

// GetFileURL maps a stored upload name to its public URL path
func GetFileURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "/uploads/" + filename
}
