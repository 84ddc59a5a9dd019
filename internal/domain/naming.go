package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewTaskID returns a unique opaque task identifier.
func NewTaskID() string {
	return uuid.NewString()
}

// NewReferenceCode returns the human-readable code for a task.
// Format: ECG-<yyyymmdd>-<8 hex chars>
func NewReferenceCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("ECG-%s-%s", now.Format("20060102"), suffix)
}
