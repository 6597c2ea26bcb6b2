package services

import (
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/yeremiapane/canteen-app/store"
	"github.com/yeremiapane/canteen-app/utils"
)

const (
	defaultSchedule  = "0 2 * * *"
	defaultTimezone  = "Asia/Jakarta"
	defaultRetention = 23 * time.Hour
)

// CleanupJob purges stale orders once a day and restarts the token
// numbering. It talks to the store directly, bypassing the order service;
// it is the only component allowed to touch the id sequence.
type CleanupJob struct {
	Store     *store.OrderStore
	Schedule  string
	Location  *time.Location
	Retention time.Duration

	cron *cron.Cron
}

// NewCleanupJob builds a job from the environment: CLEANUP_SCHEDULE (cron
// expression), CLEANUP_TZ and CLEANUP_RETENTION_HOURS.
func NewCleanupJob(db *gorm.DB) *CleanupJob {
	schedule := os.Getenv("CLEANUP_SCHEDULE")
	if schedule == "" {
		schedule = defaultSchedule
	}

	tz := os.Getenv("CLEANUP_TZ")
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		utils.ErrorLogger.Printf("Unknown cleanup timezone %q, falling back to UTC: %v", tz, err)
		loc = time.UTC
	}

	retention := defaultRetention
	if raw := os.Getenv("CLEANUP_RETENTION_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			retention = time.Duration(hours) * time.Hour
		}
	}

	return &CleanupJob{
		Store:     store.NewOrderStore(db),
		Schedule:  schedule,
		Location:  loc,
		Retention: retention,
	}
}

// Start schedules Run once daily. The cron runner executes the job
// synchronously on its own goroutine, so a run never overlaps itself.
func (j *CleanupJob) Start() error {
	j.cron = cron.New(cron.WithLocation(j.Location))
	if _, err := j.cron.AddFunc(j.Schedule, j.Run); err != nil {
		return err
	}
	j.cron.Start()
	utils.InfoLogger.Printf("Cleanup job scheduled (%s, %s)", j.Schedule, j.Location)
	return nil
}

func (j *CleanupJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// Run executes the three cleanup steps. The steps are independent: a
// failure is logged and the next step still runs.
func (j *CleanupJob) Run() {
	utils.InfoLogger.Println("Cleanup run started")

	if n, err := j.Store.DeleteActive(); err != nil {
		utils.ErrorLogger.Printf("Cleanup: deleting in-flight orders failed: %v", err)
	} else {
		utils.InfoLogger.Printf("Cleanup: removed %d in-flight orders", n)
	}

	cutoff := time.Now().Add(-j.Retention)
	if n, err := j.Store.DeleteCompletedBefore(cutoff); err != nil {
		utils.ErrorLogger.Printf("Cleanup: deleting expired completed orders failed: %v", err)
	} else {
		utils.InfoLogger.Printf("Cleanup: removed %d completed orders older than %s", n, j.Retention)
	}

	// Token numbers only restart when nothing survived the purge. A
	// completed order still inside the retention window keeps its token,
	// and resetting anyway could hand its number to a new order.
	count, err := j.Store.Count()
	if err != nil {
		utils.ErrorLogger.Printf("Cleanup: counting remaining orders failed: %v", err)
		return
	}
	if count > 0 {
		utils.InfoLogger.Printf("Cleanup: %d orders remain, token numbering left untouched", count)
		return
	}
	if err := j.Store.ResetSequence(); err != nil {
		utils.ErrorLogger.Printf("Cleanup: resetting token numbering failed: %v", err)
		return
	}
	utils.InfoLogger.Println("Cleanup: token numbering restarted from 1")
}
