package redis

import "fmt"

// Key prefix for all stored data
const keyPrefix = "coopbingo"

// sessionKey returns the Redis key for a SessionRecord
func sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// summaryKey returns the Redis key for a GameSummary
func summaryKey(id string) string {
	return fmt.Sprintf("%s:summary:%s", keyPrefix, id)
}

// summariesForSessionIndexKey returns the Redis key for the SET of summary
// keys belonging to a session
func summariesForSessionIndexKey(sessionID string) string {
	return fmt.Sprintf("%s:idx:summaries_for_session:%s", keyPrefix, sessionID)
}
