package clock

import "time"

// Scheduler drives two independent fixed-interval loops, the simulation tick
// and the spawn cycle, from explicit deadlines. It starts no goroutines and
// never reads a clock itself: callers pass the current time to RunDue, which
// makes it equally usable from a frame loop, a timer goroutine or a test.
//
// Scheduler is not safe for concurrent use.
type Scheduler struct {
	tickEvery  time.Duration
	spawnEvery time.Duration
	onTick     func(at time.Time)
	onSpawn    func(at time.Time)

	running    bool
	nextTick   time.Time
	nextSpawn  time.Time
	maxBacklog int
}

// NewScheduler creates a stopped scheduler. Both intervals must be positive.
func NewScheduler(tickEvery, spawnEvery time.Duration, onTick, onSpawn func(at time.Time)) *Scheduler {
	if tickEvery <= 0 || spawnEvery <= 0 {
		panic("clock: scheduler intervals must be positive")
	}
	return &Scheduler{
		tickEvery:  tickEvery,
		spawnEvery: spawnEvery,
		onTick:     onTick,
		onSpawn:    onSpawn,
	}
}

// Start arms both loops to fire at now. It reports false if already running.
func (s *Scheduler) Start(now time.Time) bool {
	if s.running {
		return false
	}
	s.running = true
	s.nextTick = now
	s.nextSpawn = now
	return true
}

// Stop disarms both loops. Stopping a stopped scheduler is a no-op that
// reports false.
func (s *Scheduler) Stop() bool {
	if !s.running {
		return false
	}
	s.running = false
	s.nextTick = time.Time{}
	s.nextSpawn = time.Time{}
	return true
}

// SetMaxBacklog limits how many overdue deadlines of each loop a single
// RunDue fires. Older deadlines are skipped in whole intervals, so the loops
// keep their phase. Zero or less means no limit.
func (s *Scheduler) SetMaxBacklog(n int) {
	s.maxBacklog = n
}

func (s *Scheduler) Running() bool {
	return s.running
}

// Next returns the earliest pending deadline.
func (s *Scheduler) Next() (time.Time, bool) {
	if !s.running {
		return time.Time{}, false
	}
	if s.nextSpawn.After(s.nextTick) {
		return s.nextTick, true
	}
	return s.nextSpawn, true
}

// RunDue fires every callback whose deadline is at or before now, in
// deadline order, passing each its scheduled time. A spawn and a tick due at
// the same instant fire spawn first. If a callback stops the scheduler the
// remaining work is dropped. It returns the number of callbacks fired.
func (s *Scheduler) RunDue(now time.Time) int {
	if s.running && s.maxBacklog > 0 {
		s.nextTick = s.skipOverdue(s.nextTick, s.tickEvery, now)
		s.nextSpawn = s.skipOverdue(s.nextSpawn, s.spawnEvery, now)
	}

	fired := 0
	for s.running {
		if s.nextTick.After(now) && s.nextSpawn.After(now) {
			break
		}
		if !s.nextSpawn.After(s.nextTick) {
			at := s.nextSpawn
			s.nextSpawn = at.Add(s.spawnEvery)
			s.onSpawn(at)
		} else {
			at := s.nextTick
			s.nextTick = at.Add(s.tickEvery)
			s.onTick(at)
		}
		fired++
	}
	return fired
}

func (s *Scheduler) skipOverdue(next time.Time, every time.Duration, now time.Time) time.Time {
	if next.After(now) {
		return next
	}
	due := int64(now.Sub(next)/every) + 1
	if over := due - int64(s.maxBacklog); over > 0 {
		next = next.Add(time.Duration(over) * every)
	}
	return next
}
