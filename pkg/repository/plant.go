package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/umputun/plantbot/pkg/domain"
)

// plantJSON is the stored form of a plant, field names shared with older deployments
type plantJSON struct {
	Username    string  `json:"username"`
	PlantName   string  `json:"plant_name"`
	LastWatered *string `json:"last_watered"`
	WateredBy   *string `json:"watered_by"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// timestamps written by older deployments have no zone, those are taken as UTC
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

func encodePlant(p domain.Plant) (string, error) {
	rec := plantJSON{Username: p.OwnerName, PlantName: p.Name}
	if p.LastWatered != nil {
		ts := formatTime(*p.LastWatered)
		rec.LastWatered = &ts
	}
	if p.WateredBy != "" {
		rec.WateredBy = &p.WateredBy
	}
	if !p.CreatedAt.IsZero() {
		rec.CreatedAt = formatTime(p.CreatedAt)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal plant: %w", err)
	}
	return string(data), nil
}

func decodePlant(val string) (domain.Plant, error) {
	var rec plantJSON
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return domain.Plant{}, fmt.Errorf("unmarshal plant: %w", err)
	}

	res := domain.Plant{OwnerName: rec.Username, Name: rec.PlantName}
	if res.Name == "" {
		res.Name = domain.DefaultPlantName(rec.Username)
	}
	if rec.WateredBy != nil {
		res.WateredBy = *rec.WateredBy
	}
	if rec.LastWatered != nil && *rec.LastWatered != "" {
		ts, err := parseTime(*rec.LastWatered)
		if err != nil {
			return domain.Plant{}, fmt.Errorf("parse last_watered: %w", err)
		}
		res.LastWatered = &ts
	}
	if rec.CreatedAt != "" {
		ts, err := parseTime(rec.CreatedAt)
		if err != nil {
			return domain.Plant{}, fmt.Errorf("parse created_at: %w", err)
		}
		res.CreatedAt = ts
	}
	return res, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timeLayouts {
		ts, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return ts.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
