package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateBillNo generates a unique bill number, e.g. "BILL-20240131154502-A3F1".
// The timestamp keeps numbers roughly sortable; the suffix guards against
// two bills landing in the same second.
func GenerateBillNo(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return "BILL-" + now.UTC().Format("20060102150405") + "-" + suffix
}
