package logging

import "testing"

func TestNewIntervalSampler(t *testing.T) {
	tests := []struct {
		name     string
		interval int
		want     int
	}{
		{"default for zero", 0, 50},
		{"default for negative", -3, 50},
		{"custom", 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewIntervalSampler(tt.interval).Interval(); got != tt.want {
				t.Errorf("Interval = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntervalSamplerShouldLog(t *testing.T) {
	s := NewIntervalSampler(50)
	var logged []int
	for i := 0; i < 120; i++ {
		if s.ShouldLog(i) {
			logged = append(logged, i)
		}
	}
	want := []int{0, 50, 100}
	if len(logged) != len(want) {
		t.Fatalf("logged %v, want %v", logged, want)
	}
	for i := range want {
		if logged[i] != want[i] {
			t.Fatalf("logged %v, want %v", logged, want)
		}
	}
	if s.ShouldLog(-1) {
		t.Error("negative index should not log")
	}
}

func TestIntervalSamplerNil(t *testing.T) {
	var s *IntervalSampler
	if !s.ShouldLog(7) {
		t.Error("nil sampler should always log")
	}
	if s.Interval() != 1 {
		t.Errorf("nil sampler interval = %d", s.Interval())
	}
}
