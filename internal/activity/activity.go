// Package activity rebuilds the activity log of an owner from the created_at
// and updated_at stamps of every record table. Nothing is stored: each read
// reconstructs, classifies and orders the entries again.
package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cradoe/biodata/internal/cache"
	"github.com/cradoe/biodata/internal/lastseen"
	"github.com/cradoe/biodata/internal/locale"
	"github.com/cradoe/biodata/internal/models"
	"golang.org/x/sync/errgroup"
)

// Store is the read side of the record repository the aggregator needs.
type Store interface {
	Stamps(ctx context.Context, entity models.EntityType, ownerID string) ([]models.RecordStamp, error)
	CountUpdatedSince(ctx context.Context, entity models.EntityType, ownerID string, since time.Time) (int, error)
}

// FeedCache holds rendered feeds between writes. Feeds are keyed by a
// per-owner version that Incr bumps on every write.
type FeedCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
}

type Aggregator struct {
	store    Store
	markers  lastseen.Store
	entities []models.EntityType
	now      func() time.Time

	cache    FeedCache
	cacheTTL time.Duration
	logger   *slog.Logger
}

func New(store Store, markers lastseen.Store, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		store:    store,
		markers:  markers,
		entities: models.AllEntities,
		now:      time.Now,
		logger:   logger,
	}
}

// UseCache enables caching of rendered feeds for ttl.
func (a *Aggregator) UseCache(c FeedCache, ttl time.Duration) {
	a.cache = c
	a.cacheTTL = ttl
}

// Classify decides whether a row counts as created or updated and which of its
// stamps becomes the entry time. A row is an update only when updated_at is set
// and differs from created_at.
func Classify(stamp models.RecordStamp) (models.ActionType, time.Time) {
	if stamp.UpdatedAt.Valid && !stamp.UpdatedAt.Time.Equal(stamp.CreatedAt) {
		return models.ActionUpdated, stamp.UpdatedAt.Time
	}
	return models.ActionCreated, stamp.CreatedAt
}

// Describe returns the localized sentence for an action on an entity type,
// falling back to "<action> <entity type with spaces>".
func Describe(lang locale.Lang, action models.ActionType, entity models.EntityType) string {
	if s, ok := locale.Lookup(lang, string(action)+"_"+string(entity)); ok {
		return s
	}
	return string(action) + " " + strings.ReplaceAll(string(entity), "_", " ")
}

// EntityLabel is the short, localized name of an entity type.
func EntityLabel(lang locale.Lang, entity models.EntityType) string {
	if s, ok := locale.Lookup(lang, "entity_"+string(entity)); ok {
		return s
	}
	return strings.ReplaceAll(string(entity), "_", " ")
}

// Entry builds the feed entry for one row.
func Entry(lang locale.Lang, entity models.EntityType, stamp models.RecordStamp) models.ActivityEntry {
	action, ts := Classify(stamp)
	return models.ActivityEntry{
		ID:          string(entity) + "-" + stamp.ID,
		ActionType:  action,
		Description: Describe(lang, action, entity),
		EntityType:  entity,
		EntityID:    stamp.ID,
		Timestamp:   ts,
	}
}

// Feed returns every activity entry of the owner, newest first. One read is
// issued per entity type, concurrently; the call fails as a whole if any read does.
func (a *Aggregator) Feed(ctx context.Context, ownerID string, lang locale.Lang) ([]models.ActivityEntry, error) {
	// the version is read before the fetch so a write landing mid-fetch
	// leaves the result under a key no later read asks for
	version, cacheable := a.feedVersion(ctx, ownerID)
	if cacheable {
		if entries, ok := a.cachedFeed(ctx, feedKey(ownerID, version, lang)); ok {
			return entries, nil
		}
	}

	results := make([][]models.RecordStamp, len(a.entities))

	g, gctx := errgroup.WithContext(ctx)
	for i, entity := range a.entities {
		g.Go(func() error {
			stamps, err := a.store.Stamps(gctx, entity, ownerID)
			if err != nil {
				return fmt.Errorf("fetch %s activity: %w", entity, err)
			}
			results[i] = stamps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := Merge(lang, a.entities, results)
	if cacheable {
		a.storeFeed(ctx, feedKey(ownerID, version, lang), entries)
	}

	return entries, nil
}

// Merge flattens per-entity stamps, given in entity order, into one feed sorted
// by timestamp descending. Equal timestamps keep entity order, then row order.
func Merge(lang locale.Lang, entities []models.EntityType, stamps [][]models.RecordStamp) []models.ActivityEntry {
	entries := make([]models.ActivityEntry, 0)
	for i, entity := range entities {
		for _, stamp := range stamps[i] {
			entries = append(entries, Entry(lang, entity, stamp))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	return entries
}

// Filter keeps the entries matching f, in their original order.
func Filter(entries []models.ActivityEntry, f models.ActionFilter) []models.ActivityEntry {
	if f == models.FilterAll || f == "" {
		return entries
	}

	filtered := make([]models.ActivityEntry, 0, len(entries))
	for _, e := range entries {
		if string(e.ActionType) == string(f) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// UnseenCount sums, over every entity type, the owner's rows updated after the
// last-seen marker. Without a marker the last 24 hours count.
func (a *Aggregator) UnseenCount(ctx context.Context, ownerID string) (int, error) {
	marker, found, err := a.markers.Get(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	since := lastseen.Effective(marker, found, a.now())

	counts := make([]int, len(a.entities))

	g, gctx := errgroup.WithContext(ctx)
	for i, entity := range a.entities {
		g.Go(func() error {
			n, err := a.store.CountUpdatedSince(gctx, entity, ownerID, since)
			if err != nil {
				return fmt.Errorf("count %s activity: %w", entity, err)
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	return total, nil
}

// MarkSeen moves the owner's marker to now.
func (a *Aggregator) MarkSeen(ctx context.Context, ownerID string) (lastseen.Marker, error) {
	current, _, err := a.markers.Get(ctx, ownerID)
	if err != nil {
		return lastseen.Marker{}, err
	}

	next := current.Next(a.now())
	if err := a.markers.Set(ctx, ownerID, next); err != nil {
		return lastseen.Marker{}, err
	}
	return next, nil
}

func versionKey(ownerID string) string {
	return "activity:feed:ver:" + ownerID
}

func feedKey(ownerID string, version int64, lang locale.Lang) string {
	return "activity:feed:" + ownerID + ":" + strconv.FormatInt(version, 10) + ":" + string(lang)
}

// Invalidate bumps the owner's feed version, orphaning every cached feed
// rendered before it. Orphans age out with the cache TTL.
func (a *Aggregator) Invalidate(ctx context.Context, ownerID string) error {
	if a.cache == nil {
		return nil
	}
	_, err := a.cache.Incr(ctx, versionKey(ownerID))
	return err
}

// feedVersion reports the owner's current feed version and whether the cache
// can be used at all.
func (a *Aggregator) feedVersion(ctx context.Context, ownerID string) (int64, bool) {
	if a.cache == nil {
		return 0, false
	}

	raw, err := a.cache.Get(ctx, versionKey(ownerID))
	if errors.Is(err, cache.ErrMiss) {
		return 0, true
	}
	if err != nil {
		a.logger.Warn("feed version read failed", "owner", ownerID, "error", err)
		return 0, false
	}

	version, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		a.logger.Warn("feed version is not a number", "owner", ownerID, "value", string(raw))
		return 0, false
	}
	return version, true
}

func (a *Aggregator) cachedFeed(ctx context.Context, key string) ([]models.ActivityEntry, bool) {
	raw, err := a.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			a.logger.Warn("feed cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var entries []models.ActivityEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (a *Aggregator) storeFeed(ctx context.Context, key string, entries []models.ActivityEntry) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, key, raw, a.cacheTTL); err != nil {
		a.logger.Warn("feed cache write failed", "key", key, "error", err)
	}
}
