package migrations

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/workplacehq/workplace/config"
)

// ParseVersion extracts the major version from strings like "v2.1",
// "2.1" or "2". Migrations are keyed by major version only, so the
// minor part is discarded.
func ParseVersion(versionStr string) (float64, error) {
	clean := strings.TrimPrefix(versionStr, "v")

	majorStr, _, _ := strings.Cut(clean, ".")
	if majorStr == "" {
		return 0, fmt.Errorf("invalid version format: %s", versionStr)
	}

	major, err := strconv.ParseFloat(majorStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid major version: %s", majorStr)
	}
	return major, nil
}

// GetCurrentCodeVersion returns the major version this binary was built as
func GetCurrentCodeVersion() (float64, error) {
	return ParseVersion(config.VERSION)
}

// CompareVersions orders two version strings by major version,
// returning -1, 0 or 1
func CompareVersions(v1, v2 string) (int, error) {
	major1, err := ParseVersion(v1)
	if err != nil {
		return 0, fmt.Errorf("failed to parse version %s: %w", v1, err)
	}

	major2, err := ParseVersion(v2)
	if err != nil {
		return 0, fmt.Errorf("failed to parse version %s: %w", v2, err)
	}

	switch {
	case major1 < major2:
		return -1, nil
	case major1 > major2:
		return 1, nil
	default:
		return 0, nil
	}
}
