package sheetschema

import (
	"sort"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"1/2/2006 15:04:05",
	"02.01.2006 15:04:05",
	"2006-01-02",
}

func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortNewestFirst сортирует записи по убыванию времени создания.
// Записи с неразбираемым временем остаются на своих местах, остальные
// переставляются между занятыми ими позициями.
func SortNewestFirst[T any](items []T, timestamp func(T) string) []T {
	result := make([]T, len(items))
	copy(result, items)

	type dated struct {
		item T
		at   time.Time
	}
	slots := []int{}
	datedItems := []dated{}
	for idx, item := range items {
		at, ok := ParseTimestamp(timestamp(item))
		if !ok {
			continue
		}
		slots = append(slots, idx)
		datedItems = append(datedItems, dated{item: item, at: at})
	}
	sort.SliceStable(datedItems, func(i, j int) bool {
		return datedItems[i].at.After(datedItems[j].at)
	})
	for idx, slot := range slots {
		result[slot] = datedItems[idx].item
	}
	return result
}
