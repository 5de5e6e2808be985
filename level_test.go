package asteroids

import (
	"sync"
	"testing"
)

func TestLevelNext(t *testing.T) {
	tests := []struct {
		from, max, want Level
	}{
		{1, 5, 2},
		{4, 5, 5},
		{5, 5, 5},
		{1, 1, 1},
	}
	for _, tt := range tests {
		if got := tt.from.Next(tt.max); got != tt.want {
			t.Errorf("Level(%d).Next(%d) = %d, want %d", tt.from, tt.max, got, tt.want)
		}
	}
}

func TestMeteorCount(t *testing.T) {
	tuning := DefaultTuning()
	if tuning.MaxLevel() != 5 {
		t.Fatalf("MaxLevel = %d, want 5", tuning.MaxLevel())
	}

	for level, want := range map[Level]int{0: 4, 1: 4, 2: 5, 3: 7, 4: 9, 5: 11, 9: 11} {
		if got := tuning.MeteorCount(level); got != want {
			t.Errorf("MeteorCount(%d) = %d, want %d", level, got, want)
		}
	}

	if got := (Tuning{}).MeteorCount(1); got != 0 {
		t.Errorf("MeteorCount with no table = %d, want 0", got)
	}
}

func TestLivesTakeOne(t *testing.T) {
	l := NewLives(1)
	if !l.TakeOne() || l.Count() != 0 {
		t.Fatalf("first TakeOne: count = %d", l.Count())
	}
	if l.TakeOne() || l.Count() != 0 {
		t.Fatalf("TakeOne at zero changed the count to %d", l.Count())
	}
	l.Set(3)
	if l.Count() != 3 {
		t.Fatalf("Set(3): count = %d", l.Count())
	}
}

func TestLivesConcurrentTakeOne(t *testing.T) {
	l := NewLives(10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	taken := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.TakeOne() {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if taken != 10 || l.Count() != 0 {
		t.Fatalf("taken = %d, count = %d, want 10 and 0", taken, l.Count())
	}
}

func TestEventEmitter(t *testing.T) {
	e := NewEventEmitter()

	var order []string
	e.On(EventScore, func(data interface{}) { order = append(order, "first") })
	e.On(EventScore, func(data interface{}) { order = append(order, "second") })
	e.Once(EventScore, func(data interface{}) { order = append(order, "once") })

	e.Emit(EventScore, nil)
	e.Emit(EventScore, nil)
	e.Emit(EventLevelUp, nil)

	want := []string{"first", "second", "once", "first", "second"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
