package storage

import (
	"fmt"
	"math"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// ValidateOptions restricts what a caller accepts for one file field.
// AllowedTypes entries are either extensions (".mp4") or MIME prefixes,
// with wildcard support ("image/*").
type ValidateOptions struct {
	MaxSize      int64
	AllowedTypes []string
}

// ValidateFile checks a multipart file against size and type limits before
// any bytes are sent anywhere.
func ValidateFile(fh *multipart.FileHeader, opts ValidateOptions) error {
	if opts.MaxSize > 0 && fh.Size > opts.MaxSize {
		maxMB := float64(opts.MaxSize) / (1024 * 1024)
		return fmt.Errorf("file size must be less than %gMB", maxMB)
	}

	if len(opts.AllowedTypes) > 0 {
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		mimeType := fh.Header.Get("Content-Type")

		allowed := false
		for _, t := range opts.AllowedTypes {
			if strings.HasPrefix(t, ".") {
				if strings.EqualFold(t, ext) {
					allowed = true
					break
				}
				continue
			}
			if strings.HasPrefix(mimeType, strings.TrimSuffix(t, "*")) {
				allowed = true
				break
			}
		}

		if !allowed {
			return fmt.Errorf("file type not allowed. Allowed types: %s", strings.Join(opts.AllowedTypes, ", "))
		}
	}

	return nil
}

// FormatFileSize renders a byte count in binary units, two decimals.
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	const k = 1024
	sizes := []string{"Bytes", "KB", "MB", "GB"}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(k)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	if i < 0 {
		i = 0
	}

	value := float64(bytes) / math.Pow(k, float64(i))
	return fmt.Sprintf("%v %s", math.Round(value*100)/100, sizes[i])
}
