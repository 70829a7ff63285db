package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Timer is a one-shot deferred callback
type Timer struct {
	At  time.Duration // scheduler clock time it fires at
	Seq uint64        // breaks ties in scheduling order
	Fn  func(*ecs.ECS)
}

// SchedulerData is the singleton logical clock and its pending timers.
// Timers cannot be cancelled.
type SchedulerData struct {
	Now     time.Duration
	Pending []Timer
	NextSeq uint64
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
