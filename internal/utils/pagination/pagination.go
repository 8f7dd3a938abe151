package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeLineToken creates a base64 encoded keyset token from a line's
// posted-at timestamp and its ID. This is used for consistent pagination of
// journal line scans.
func EncodeLineToken(postedAt time.Time, lineID string) string {
	tokenStr := fmt.Sprintf("%s|%s", postedAt.Format(timeFormat), lineID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeLineToken parses the base64 encoded token back into the posted-at
// timestamp and line ID it was built from.
func DecodeLineToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	postedAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (posted_at parse): %w", err)
	}

	return postedAt, parts[1], nil
}
