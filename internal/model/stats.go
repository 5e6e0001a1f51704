package model

import "time"

// GenerationEvent records that a password was generated. The password itself is never kept.
type GenerationEvent struct {
	ID        string
	Length    int
	Classes   uint8
	Score     int
	Level     string
	CreatedAt time.Time
}

// StatsResponse summarizes recorded generation events by strength tag.
type StatsResponse struct {
	Total   int64            `json:"total"`
	ByLevel map[string]int64 `json:"by_level"`
}
