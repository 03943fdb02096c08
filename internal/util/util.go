// Package util holds small formatting helpers shared across layers.
package util

import "github.com/dustin/go-humanize"

// UploadLimit describes the size cap reported when an upload is rejected, e.g. "5.0 MiB".
func UploadLimit(maxBytes int64) string {
	if maxBytes < 0 {
		maxBytes = 0
	}

	return "Maximum upload size is " + humanize.IBytes(uint64(maxBytes))
}
