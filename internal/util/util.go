// Package util holds small helpers shared by the infrastructure adapters.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"videotube/internal/errors"
)

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// ChecksumAndRewind returns the hex SHA-256 of the remaining content of r and
// seeks back to the start, so the same handle can be streamed afterwards.
func ChecksumAndRewind(r io.ReadSeeker) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, r); err != nil {
		return "", errors.Wrap(err, "failed to calculate checksum")
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", errors.Wrap(err, "failed to rewind after checksum")
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// FormatBytes renders a size with binary units, e.g. "512 B" or "1.5 MB".
func FormatBytes(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}

	value := float64(size) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}

// FormatDuration renders an elapsed time rounded to the second, e.g. "45s", "5m10s" or "1h30m".
func FormatDuration(duration time.Duration) string {
	total := int(duration.Round(time.Second) / time.Second)
	if total < 0 {
		total = 0
	}

	hours, minutes, seconds := total/3600, (total%3600)/60, total%60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
