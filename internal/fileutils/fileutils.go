// Package fileutils provides common file operations used throughout the
// application, including the encoding-tolerant sales file reader.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"fjacquet/sales-csv/internal/parsererror"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if info, err := os.Stat(dirPath); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(dirPath, 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// decoderAttempt pairs an encoding name with its decoder. A nil decoder
// means plain UTF-8, accepted only when the bytes validate.
type decoderAttempt struct {
	name    string
	decoder *encoding.Decoder
}

func supportedEncodings() []decoderAttempt {
	return []decoderAttempt{
		{name: "utf-8", decoder: nil},
		{name: "latin-1", decoder: charmap.ISO8859_1.NewDecoder()},
		{name: "windows-1252", decoder: charmap.Windows1252.NewDecoder()},
	}
}

// ReadSalesLines reads a sales data file, trying each supported encoding
// in order until one decodes cleanly. The header row and blank lines are
// removed; remaining lines are returned trimmed, in file order.
func ReadSalesLines(filePath string) ([]string, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- CLI tool reads user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	var decoded string
	var tried []string
	ok := false
	for _, attempt := range supportedEncodings() {
		tried = append(tried, attempt.name)
		if attempt.decoder == nil {
			if utf8.Valid(data) {
				decoded = string(data)
				ok = true
			}
		} else {
			out, decErr := attempt.decoder.Bytes(data)
			if decErr == nil {
				decoded = string(out)
				ok = true
			}
		}
		if ok {
			log.WithFields(logrus.Fields{
				"file":     filepath.Base(filePath),
				"encoding": attempt.name,
			}).Debug("Decoded sales file")
			break
		}
	}
	if !ok {
		return nil, &parsererror.EncodingError{FilePath: filePath, Tried: tried}
	}

	rawLines := strings.Split(decoded, "\n")
	var lines []string
	for i, line := range rawLines {
		if i == 0 {
			// header row
			continue
		}
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, strings.TrimSpace(line))
	}

	log.WithFields(logrus.Fields{
		"file":  filePath,
		"count": len(lines),
	}).Info("Read sales data lines")

	return lines, nil
}

// WriteFile writes data to a file, creating parent directories as needed.
func WriteFile(filePath string, data []byte) error {
	dir := filepath.Dir(filePath)
	if err := EnsureDirectoryExists(dir); err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filePath, err)
	}
	return nil
}
