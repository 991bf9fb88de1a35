package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/skydash/weather-pipeline/internal/weather"
)

// Scheduler keeps the cache slot warm by refreshing weather for the default
// place on a fixed interval, the way the original app reloads its remembered
// city.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	city      string
	interval  time.Duration
}

// New creates a Scheduler for the given default city.
func New(city string, interval time.Duration, service *weather.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		city:      city,
		interval:  interval,
	}
}

// Start runs an immediate warm-up fetch and schedules the periodic refresh.
func (s *Scheduler) Start() error {
	if s.city == "" {
		log.Println("scheduler: no default city configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().StartImmediately().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		log.Printf("scheduler: refreshing weather for %s", s.city)
		if _, _, err := s.service.Search(ctx, s.city); err != nil {
			log.Printf("scheduler: refresh failed for %s: %v", s.city, err)
			return
		}
		log.Printf("scheduler: refreshed weather for %s", s.city)
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
