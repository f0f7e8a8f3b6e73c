package counter

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/planovida/planovida/internal/pkg/cache"
	"github.com/planovida/planovida/internal/pkg/database"
)

const planViewsKey = "plan:counters:views"

// AddPlanView increments the pending view counter for a plan in Redis
func AddPlanView(planID uint) error {
	ctx := context.Background()
	field := strconv.FormatUint(uint64(planID), 10)
	return cache.GetClient().HIncrBy(ctx, planViewsKey, field, 1).Err()
}

// FlushAll flushes the pending plan view counters to the database
func FlushAll() error {
	return flushHashToTable(planViewsKey, "life_plans", "view_count")
}

// flushHashToTable drains a Redis hash atomically and applies batched increments to the target table.
// Uses RENAME to a temporary key for atomic drain without losing in-flight increments.
func flushHashToTable(redisKey, table, column string) error {
	ctx := context.Background()
	rdb := cache.GetClient()

	// Atomically move the hash to a temp key for draining
	tmpKey := fmt.Sprintf("%s:tmp:%d", redisKey, time.Now().UnixNano())
	if err := rdb.Do(ctx, "RENAME", redisKey, tmpKey).Err(); err != nil {
		// If key does not exist, nothing to flush
		if strings.Contains(strings.ToLower(err.Error()), "no such key") {
			return nil
		}
		return err
	}

	entries, err := rdb.HGetAll(ctx, tmpKey).Result()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		_ = rdb.Del(ctx, tmpKey).Err()
		return nil
	}

	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	db := database.GetDB()
	for _, id := range ids {
		inc, perr := strconv.ParseInt(entries[id], 10, 64)
		if perr != nil || inc == 0 {
			continue
		}
		stmt := fmt.Sprintf("UPDATE %s SET %s = %s + ? WHERE id = ?", table, column, column)
		if err := db.Exec(stmt, inc, id).Error; err != nil {
			return err
		}
	}

	return rdb.Del(ctx, tmpKey).Err()
}
