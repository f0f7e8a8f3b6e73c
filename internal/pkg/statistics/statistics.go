package statistics

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/planovida/planovida/app/models"
	"github.com/planovida/planovida/internal/pkg/cache"
	"github.com/planovida/planovida/internal/pkg/database"
	"github.com/planovida/planovida/internal/pkg/progress"
)

const (
	CacheKeyPlansTotal  = "statistics:plans:total"
	CacheKeyGoalsTotal  = "statistics:goals:total"
	CacheKeyPlanOverall = "statistics:plan:%d:overall" // Format with plan ID
	CacheExpiration     = 30 * time.Minute
)

// StatisticsData holds the instance-wide counters shown on the landing page
type StatisticsData struct {
	TotalPlans int
	TotalGoals int
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// ShouldUpdateCache checks whether the cache refresh interval has elapsed
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cached counters when they are stale
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Error updating statistics cache: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// UpdateStatisticsCache recounts plans and goals and stores both in the cache
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var totalPlans int64
	if err := db.Model(&models.LifePlan{}).Count(&totalPlans).Error; err != nil {
		log.Printf("Error counting total plans: %v", err)
		return err
	}

	var totalGoals int64
	if err := db.Model(&models.Goal{}).Count(&totalGoals).Error; err != nil {
		log.Printf("Error counting total goals: %v", err)
		return err
	}

	if err := cache.Set(CacheKeyPlansTotal, strconv.FormatInt(totalPlans, 10), CacheExpiration); err != nil {
		log.Printf("Error caching total plans: %v", err)
		return err
	}
	if err := cache.Set(CacheKeyGoalsTotal, strconv.FormatInt(totalGoals, 10), CacheExpiration); err != nil {
		log.Printf("Error caching total goals: %v", err)
		return err
	}

	return nil
}

// GetTotalPlans returns the total number of plans from cache or database
func GetTotalPlans() int {
	return cachedCount(CacheKeyPlansTotal, &models.LifePlan{})
}

// GetTotalGoals returns the total number of goals from cache or database
func GetTotalGoals() int {
	return cachedCount(CacheKeyGoalsTotal, &models.Goal{})
}

func cachedCount(key string, model interface{}) int {
	val, err := cache.Get(key)
	if err != nil {
		var count int64
		db := database.GetDB()
		if err := db.Model(model).Count(&count).Error; err != nil {
			log.Printf("Error counting for %s: %v", key, err)
			return 0
		}
		if err := cache.Set(key, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
			log.Printf("Error caching %s: %v", key, err)
		}
		return int(count)
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return int(count)
}

// GetPlanOverall returns the cached overall completion percentage of one
// plan, recomputing from the goal snapshot on a cache miss.
func GetPlanOverall(planID uint) int {
	key := fmt.Sprintf(CacheKeyPlanOverall, planID)
	if val, err := cache.GetInt(key); err == nil {
		return val
	}

	var goals []models.Goal
	db := database.GetDB()
	if err := db.Where("plan_id = ?", planID).Find(&goals).Error; err != nil {
		log.Printf("Error loading goals for plan %d: %v", planID, err)
		return 0
	}

	overall := progress.Overall(progress.ComputeAreaStats(goals, progress.Options{}))
	if err := cache.Set(key, overall, CacheExpiration); err != nil {
		log.Printf("Error caching overall for plan %d: %v", planID, err)
	}
	return overall
}

// RefreshPlanOverall recomputes a plan's overall percentage from the
// current goal snapshot and replaces the cached value.
func RefreshPlanOverall(planID uint) error {
	var goals []models.Goal
	db := database.GetDB()
	if err := db.Where("plan_id = ?", planID).Find(&goals).Error; err != nil {
		return err
	}

	overall := progress.Overall(progress.ComputeAreaStats(goals, progress.Options{}))
	return cache.Set(fmt.Sprintf(CacheKeyPlanOverall, planID), overall, CacheExpiration)
}

// InvalidatePlanOverall drops a plan's cached percentage after a goal
// mutation so the next read recomputes it.
func InvalidatePlanOverall(planID uint) {
	if err := cache.Delete(fmt.Sprintf(CacheKeyPlanOverall, planID)); err != nil {
		log.Printf("Error invalidating overall for plan %d: %v", planID, err)
	}
}

// GetStatisticsData returns all statistics data as StatisticsData structure
func GetStatisticsData() StatisticsData {
	UpdateCacheIfNeeded()

	return StatisticsData{
		TotalPlans: GetTotalPlans(),
		TotalGoals: GetTotalGoals(),
	}
}
