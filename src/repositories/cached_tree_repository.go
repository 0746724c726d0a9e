package repositories

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/infra/redis"
)

// CachedTreeRepository decorates the tree query with a redis cache. Every
// cached result is registered under each person it contains, so writes can
// invalidate all trees a person appears in. A nil redis client turns the
// decorator into a pass-through.
type CachedTreeRepository struct {
	treeQueryRepository *TreeQueryRepository
	redisClient         *redis.RedisClient
}

type cacheableTree struct {
	TreeRows   []domain.TreeRow     `json:"tree_rows"`
	LifeEvents []entities.LifeEvent `json:"life_events"`
}

func NewCachedTreeRepository(
	treeQueryRepository *TreeQueryRepository,
	redisClient *redis.RedisClient,
) *CachedTreeRepository {
	return &CachedTreeRepository{
		treeQueryRepository: treeQueryRepository,
		redisClient:         redisClient,
	}
}

func (r *CachedTreeRepository) QueryTree(
	ctx context.Context,
	personID int64,
	depthLimit int,
	direction domain.TreeDirection,
) ([]domain.TreeRow, []entities.LifeEvent, error) {
	if r.redisClient == nil {
		return r.treeQueryRepository.QueryTree(ctx, personID, depthLimit, direction)
	}

	cacheKey := r.generateCacheKey(personID, depthLimit, direction)

	cached, found, err := r.getFromCache(ctx, cacheKey)
	if found && err == nil {
		log.Printf("Cache HIT for key: %s", cacheKey)
		return cached.TreeRows, cached.LifeEvents, nil
	}

	if err != nil {
		// Cache errors degrade to a postgres read
		log.Printf("Cache error for key %s: %v", cacheKey, err)
	}

	treeRows, lifeEvents, err := r.treeQueryRepository.QueryTree(ctx, personID, depthLimit, direction)
	if err != nil {
		return nil, nil, err
	}

	go func() {
		ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		r.setInCache(ctxWithTimeout, cacheKey, treeRows, lifeEvents)
	}()

	return treeRows, lifeEvents, nil
}

func (r *CachedTreeRepository) generateCacheKey(personID int64, depthLimit int, direction domain.TreeDirection) string {
	keyData := fmt.Sprintf("tree:%d:depth:%d:direction:%s", personID, depthLimit, direction)

	hash := md5.Sum([]byte(keyData))
	return fmt.Sprintf("family:tree:%x", hash)
}

func (r *CachedTreeRepository) getFromCache(ctx context.Context, cacheKey string) (*cacheableTree, bool, error) {
	cachedJSON, found, err := r.redisClient.GetKey(ctx, cacheKey)
	if !found || err != nil {
		return nil, found, err
	}

	var result cacheableTree
	if err := json.Unmarshal([]byte(cachedJSON), &result); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached tree: %w", err)
	}

	return &result, true, nil
}

func (r *CachedTreeRepository) setInCache(
	ctx context.Context,
	cacheKey string,
	treeRows []domain.TreeRow,
	lifeEvents []entities.LifeEvent,
) {
	dataJSON, err := json.Marshal(cacheableTree{
		TreeRows:   treeRows,
		LifeEvents: lifeEvents,
	})
	if err != nil {
		log.Printf("Failed to marshal tree cache data for key %s: %v", cacheKey, err)
		return
	}

	registryKeys := make([]string, len(treeRows))
	for i, row := range treeRows {
		registryKeys[i] = fmt.Sprintf("registry:person:%d", row.ID)
	}

	if err := r.redisClient.SetWithRegistry(ctx, cacheKey, string(dataJSON), registryKeys); err != nil {
		log.Printf("Failed to set tree cache for key %s: %v", cacheKey, err)
		return
	}
}

// InvalidateByPersonIDs drops every cached tree any of the given persons
// appears in, registry sets included.
func (r *CachedTreeRepository) InvalidateByPersonIDs(ctx context.Context, personIDs []int64) error {
	if r.redisClient == nil || len(personIDs) == 0 {
		return nil
	}

	registryKeys := make([]string, len(personIDs))
	for i, personID := range personIDs {
		registryKeys[i] = fmt.Sprintf("registry:person:%d", personID)
	}

	registryResults, err := r.redisClient.GetSetMembers(ctx, registryKeys)
	if err != nil {
		return fmt.Errorf("failed to get registry data: %w", err)
	}

	allKeysToDelete := make(map[string]bool)

	for registryKey, relatedKeys := range registryResults {
		allKeysToDelete[registryKey] = true

		for _, relatedKey := range relatedKeys {
			allKeysToDelete[relatedKey] = true
		}
	}

	keysToDelete := make([]string, 0, len(allKeysToDelete))
	for key := range allKeysToDelete {
		keysToDelete = append(keysToDelete, key)
	}

	if len(keysToDelete) > 0 {
		log.Printf("Invalidating %d cache keys for %d persons", len(keysToDelete), len(personIDs))
		return r.redisClient.DeleteKeys(ctx, keysToDelete)
	}

	return nil
}
