package cache

import (
	"sort"
	"strings"
	"time"
)

// Namespace is the key prefix for the dexboard application.
const Namespace = "dexboard"

func formatKey(parts ...string) string {
	values := make([]string, 0, len(parts)+1)
	values = append(values, Namespace)
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		values = append(values, clean)
	}
	return strings.Join(values, ":")
}

// PricesKey identifies a price-snapshot request by its token id set. Ids are
// lower-cased and sorted so the key is stable under reordering.
func PricesKey(ids []string) string {
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		cleaned = append(cleaned, id)
	}
	sort.Strings(cleaned)
	return formatKey("prices", strings.Join(cleaned, ","))
}

// GlobalKey identifies the global market summary request.
func GlobalKey() string {
	return formatKey("global")
}

// TTLFromSeconds converts a configured TTL into a duration. Non-positive
// values fall back to DefaultTTL.
func TTLFromSeconds(seconds int) time.Duration {
	if seconds <= 0 {
		return DefaultTTL
	}
	return time.Duration(seconds) * time.Second
}
