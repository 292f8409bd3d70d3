package repository

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/plantbot/pkg/domain"
)

const (
	keyChatIDs          = "plant_bot:chat_ids"
	keyRemindersEnabled = "plant_bot:reminders_enabled"
	keyPlantPrefix      = "plant_bot:user:"
)

// PlantStore keeps plants, registered chats and the reminders flag in a KV backend.
// It never returns errors: failures are logged and turned into safe defaults,
// absent plant, empty list, reminders enabled, or false for writes.
type PlantStore struct {
	kv KV
}

// NewPlantStore makes a plant store on top of kv
func NewPlantStore(kv KV) *PlantStore {
	return &PlantStore{kv: kv}
}

// GetPlant returns the plant of the owner, false if absent, unreadable or the store failed
func (s *PlantStore) GetPlant(ctx context.Context, ownerID string) (domain.Plant, bool) {
	p, res := s.LookupPlant(ctx, ownerID)
	return p, res == domain.LookupFound
}

// LookupPlant returns the plant of the owner and tells a missing record from a store failure,
// so callers can skip writes that would overwrite a record they could not read.
// An undecodable record counts as absent.
func (s *PlantStore) LookupPlant(ctx context.Context, ownerID string) (domain.Plant, domain.Lookup) {
	val, err := s.kv.Get(ctx, keyPlantPrefix+ownerID)
	if errors.Is(err, ErrNotFound) {
		return domain.Plant{}, domain.LookupAbsent
	}
	if err != nil {
		lgr.Printf("[WARN] failed to get plant for %s: %v", ownerID, err)
		return domain.Plant{}, domain.LookupFailed
	}

	p, err := decodePlant(val)
	if err != nil {
		lgr.Printf("[WARN] bad plant record for %s: %v", ownerID, err)
		return domain.Plant{}, domain.LookupAbsent
	}
	return p, domain.LookupFound
}

// SavePlant upserts the plant of the owner, returns false on failure
func (s *PlantStore) SavePlant(ctx context.Context, ownerID string, p domain.Plant) bool {
	val, err := encodePlant(p)
	if err != nil {
		lgr.Printf("[WARN] failed to encode plant for %s: %v", ownerID, err)
		return false
	}
	if err := s.kv.Set(ctx, keyPlantPrefix+ownerID, val); err != nil {
		lgr.Printf("[WARN] failed to save plant for %s: %v", ownerID, err)
		return false
	}
	return true
}

// DeletePlant removes the plant of the owner, returns false on failure
func (s *PlantStore) DeletePlant(ctx context.Context, ownerID string) bool {
	if err := s.kv.Delete(ctx, keyPlantPrefix+ownerID); err != nil {
		lgr.Printf("[WARN] failed to delete plant for %s: %v", ownerID, err)
		return false
	}
	return true
}

// ListPlants returns all readable plants sorted by owner id.
// Records that fail to load are logged and skipped.
func (s *PlantStore) ListPlants(ctx context.Context) []domain.OwnedPlant {
	keys, err := s.kv.Keys(ctx, keyPlantPrefix)
	if err != nil {
		lgr.Printf("[WARN] failed to list plants: %v", err)
		return nil
	}

	res := make([]domain.OwnedPlant, 0, len(keys))
	for _, key := range keys {
		ownerID := strings.TrimPrefix(key, keyPlantPrefix)
		val, err := s.kv.Get(ctx, key)
		if errors.Is(err, ErrNotFound) {
			continue // removed after the scan
		}
		if err != nil {
			lgr.Printf("[WARN] failed to get plant for %s: %v", ownerID, err)
			continue
		}
		p, err := decodePlant(val)
		if err != nil {
			lgr.Printf("[WARN] skip bad plant record for %s: %v", ownerID, err)
			continue
		}
		res = append(res, domain.OwnedPlant{OwnerID: ownerID, Plant: p})
	}

	slices.SortFunc(res, func(a, b domain.OwnedPlant) int { return strings.Compare(a.OwnerID, b.OwnerID) })
	return res
}

// RegisteredChats returns ids of chats receiving reminders
func (s *PlantStore) RegisteredChats(ctx context.Context) []int64 {
	chats, err := s.loadChats(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to get registered chats: %v", err)
		return nil
	}
	return chats
}

// AddRegisteredChat adds the chat to reminders recipients if not there yet.
// The list is not rewritten when it can't be read, so a store hiccup won't wipe it.
func (s *PlantStore) AddRegisteredChat(ctx context.Context, chatID int64) bool {
	chats, err := s.loadChats(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to get registered chats, chat %d not added: %v", chatID, err)
		return false
	}
	if slices.Contains(chats, chatID) {
		return true
	}

	data, err := json.Marshal(append(chats, chatID))
	if err != nil {
		lgr.Printf("[WARN] failed to encode registered chats: %v", err)
		return false
	}
	if err := s.kv.Set(ctx, keyChatIDs, string(data)); err != nil {
		lgr.Printf("[WARN] failed to save registered chats: %v", err)
		return false
	}
	lgr.Printf("[INFO] registered chat %d", chatID)
	return true
}

func (s *PlantStore) loadChats(ctx context.Context) ([]int64, error) {
	val, err := s.kv.Get(ctx, keyChatIDs)
	if errors.Is(err, ErrNotFound) {
		return []int64{}, nil
	}
	if err != nil {
		return nil, err
	}
	var chats []int64
	if err := json.Unmarshal([]byte(val), &chats); err != nil {
		lgr.Printf("[WARN] bad registered chats record %q, start over: %v", val, err)
		return []int64{}, nil
	}
	return chats, nil
}

// RemindersEnabled returns the global reminders flag, true unless explicitly disabled
func (s *PlantStore) RemindersEnabled(ctx context.Context) bool {
	val, err := s.kv.Get(ctx, keyRemindersEnabled)
	if errors.Is(err, ErrNotFound) {
		return true
	}
	if err != nil {
		lgr.Printf("[WARN] failed to get reminders flag, assume enabled: %v", err)
		return true
	}
	return strings.TrimSpace(strings.ToLower(val)) != "false"
}

// SetRemindersEnabled sets the global reminders flag, returns false on failure
func (s *PlantStore) SetRemindersEnabled(ctx context.Context, enabled bool) bool {
	val := "false"
	if enabled {
		val = "true"
	}
	if err := s.kv.Set(ctx, keyRemindersEnabled, val); err != nil {
		lgr.Printf("[WARN] failed to save reminders flag: %v", err)
		return false
	}
	return true
}
