package controller

import "testing"

func TestTimersFireInDeadlineOrder(t *testing.T) {
	timers := NewTimers()
	var fired []TimerID
	timers.After(TimerAttackCooldown, 1.0, func() { fired = append(fired, TimerAttackCooldown) })
	timers.After(TimerPlatformRestore, 0.3, func() { fired = append(fired, TimerPlatformRestore) })

	timers.Advance(0.25)
	if len(fired) != 0 {
		t.Fatalf("nothing should fire before 0.3s, got %v", fired)
	}
	timers.Advance(0.05)
	if len(fired) != 1 || fired[0] != TimerPlatformRestore {
		t.Fatalf("expected platform restore at 0.3s, got %v", fired)
	}
	timers.Advance(1.0)
	if len(fired) != 2 || fired[1] != TimerAttackCooldown {
		t.Fatalf("expected cooldown next, got %v", fired)
	}
	if _, ok := timers.Pending(TimerAttackCooldown); ok {
		t.Fatalf("fired timer should not be pending")
	}
}

func TestTimersReplaceSameID(t *testing.T) {
	timers := NewTimers()
	calls := 0
	first := func() { t.Fatalf("replaced timer must not fire") }
	timers.After(TimerPlatformRestore, 0.3, first)
	timers.Advance(0.2)
	timers.After(TimerPlatformRestore, 0.3, func() { calls++ })

	timers.Advance(0.2)
	if calls != 0 {
		t.Fatalf("replacement fired early")
	}
	left, ok := timers.Pending(TimerPlatformRestore)
	if !ok || left <= 0 {
		t.Fatalf("expected replacement pending, left=%v ok=%v", left, ok)
	}
	timers.Advance(0.1)
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
	timers.Advance(5)
	if calls != 1 {
		t.Fatalf("timer fired twice")
	}
}

func TestTimersCallbackCanReschedule(t *testing.T) {
	timers := NewTimers()
	count := 0
	var again func()
	again = func() {
		count++
		if count < 3 {
			timers.After(TimerAttackCooldown, 0.5, again)
		}
	}
	timers.After(TimerAttackCooldown, 0.5, again)
	for i := 0; i < 10; i++ {
		timers.Advance(0.5)
	}
	if count != 3 {
		t.Fatalf("expected 3 firings, got %d", count)
	}
}
