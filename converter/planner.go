package converter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const filePrefix = "svg-to-png-"

// PlanOutput creates dir when missing and returns a fresh file path inside
// it. Batch items (index >= 0) get their 1-based position as a suffix.
func PlanOutput(dir string, index int) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	suffix := ""
	if index >= 0 {
		suffix = fmt.Sprintf("-%d", index+1)
	}

	return filepath.Join(dir, filePrefix+uuid.NewString()+suffix+".png"), nil
}
