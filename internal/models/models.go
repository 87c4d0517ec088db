package models

import (
	"fmt"
	"strings"
	"time"
)

type Item struct {
	ID          string
	Name        string
	Description *string
	Status      ItemStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int64
}

type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "ACTIVE"
	ItemStatusInactive ItemStatus = "INACTIVE"
	ItemStatusArchived ItemStatus = "ARCHIVED"
)

// ParseItemStatus accepts any casing. There are no transition guards; any
// status may replace any other.
func ParseItemStatus(s string) (ItemStatus, error) {
	switch ItemStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case ItemStatusActive:
		return ItemStatusActive, nil
	case ItemStatusInactive:
		return ItemStatusInactive, nil
	case ItemStatusArchived:
		return ItemStatusArchived, nil
	}
	return "", fmt.Errorf("unknown item status %q", s)
}
