package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the internal reminder sweeps on a fixed cadence. The
// on-demand HTTP trigger runs the same Sweep; overlap between the two is
// tolerated by the engine, not prevented here.
type Scheduler struct {
	cron      *cron.Cron
	engine    *ReminderEngine
	sweepSpec string
}

func NewScheduler(engine *ReminderEngine, sweepSpec string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		engine:    engine,
		sweepSpec: sweepSpec,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.sweepSpec, s.runSweep); err != nil {
		return fmt.Errorf("schedule reminder sweep %q: %w", s.sweepSpec, err)
	}
	if _, err := s.cron.AddFunc("*/5 * * * *", func() {
		log.Printf("Heartbeat: %s", time.Now().UTC().Format(time.RFC3339))
	}); err != nil {
		return fmt.Errorf("schedule heartbeat: %w", err)
	}
	s.cron.Start()
	log.Printf("Internal scheduler started, sweeping on %q (UTC)", s.sweepSpec)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("Internal scheduler stopped")
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := s.engine.Sweep(ctx)
	if err != nil {
		log.Printf("Error: scheduled reminder sweep failed: %v", err)
		return
	}
	log.Printf("Reminder sweep completed: processed %d, sent %d", result.ProcessedCount, result.SentCount)
}
