package systems

import (
	"sort"
	"time"

	"github.com/automoto/lovesme/components"
	cfg "github.com/automoto/lovesme/config"
	"github.com/automoto/lovesme/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// After schedules fn to run once, delay after the current scheduler time.
// There is no way to cancel it.
func After(ecs *ecs.ECS, delay time.Duration, fn func(*ecs.ECS)) {
	scheduler := getOrCreateScheduler(ecs)
	scheduler.Pending = append(scheduler.Pending, components.Timer{
		At:  scheduler.Now + delay,
		Seq: scheduler.NextSeq,
		Fn:  fn,
	})
	scheduler.NextSeq++
}

// UpdateScheduler advances the clock by one tick and runs every due timer in
// (due time, scheduling order) order. Timers scheduled by a callback run on a
// later tick at the earliest.
func UpdateScheduler(ecs *ecs.ECS) {
	scheduler := getOrCreateScheduler(ecs)
	scheduler.Now += cfg.Timing.Tick

	var due, pending []components.Timer
	for _, t := range scheduler.Pending {
		if t.At <= scheduler.Now {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	if len(due) == 0 {
		return
	}
	scheduler.Pending = pending

	sort.Slice(due, func(i, j int) bool {
		if due[i].At != due[j].At {
			return due[i].At < due[j].At
		}
		return due[i].Seq < due[j].Seq
	})
	for _, t := range due {
		t.Fn(ecs)
	}
}

// PendingTimers returns how many callbacks are waiting to fire
func PendingTimers(ecs *ecs.ECS) int {
	return len(getOrCreateScheduler(ecs).Pending)
}

// getOrCreateScheduler returns the singleton Scheduler component
func getOrCreateScheduler(ecs *ecs.ECS) *components.SchedulerData {
	entry, ok := components.Scheduler.First(ecs.World)
	if !ok {
		entry = factory.CreateScheduler(ecs)
	}
	return components.Scheduler.Get(entry)
}
