package settings

import "testing"

func TestDefaults(t *testing.T) {
	s := New()
	if s.Rate() != DefaultRate {
		t.Errorf("default rate = %v, want %v", s.Rate(), DefaultRate)
	}
	if s.Volume() != DefaultVolume {
		t.Errorf("default volume = %v, want %v", s.Volume(), DefaultVolume)
	}
}

func TestSetRate(t *testing.T) {
	s := New()
	if err := s.SetRate(2.0); err != nil {
		t.Fatalf("SetRate(2.0): %v", err)
	}
	if s.Rate() != 2.0 {
		t.Errorf("rate = %v, want 2.0", s.Rate())
	}

	for _, bad := range []float64{0.24, 4.01, -1, 0, 100} {
		if err := s.SetRate(bad); err != ErrRateOutOfRange {
			t.Errorf("SetRate(%v) = %v, want ErrRateOutOfRange", bad, err)
		}
		if s.Rate() != 2.0 {
			t.Errorf("rate changed to %v after rejected SetRate(%v)", s.Rate(), bad)
		}
	}

	// Boundaries are inclusive.
	if err := s.SetRate(RateMin); err != nil {
		t.Errorf("SetRate(min): %v", err)
	}
	if err := s.SetRate(RateMax); err != nil {
		t.Errorf("SetRate(max): %v", err)
	}
}

func TestSetVolume(t *testing.T) {
	s := New()
	if err := s.SetVolume(0.5); err != nil {
		t.Fatalf("SetVolume(0.5): %v", err)
	}
	if s.Volume() != 0.5 {
		t.Errorf("volume = %v, want 0.5", s.Volume())
	}

	for _, bad := range []float64{0.09, 2.01, -0.5, 0} {
		if err := s.SetVolume(bad); err != ErrVolumeOutOfRange {
			t.Errorf("SetVolume(%v) = %v, want ErrVolumeOutOfRange", bad, err)
		}
		if s.Volume() != 0.5 {
			t.Errorf("volume changed to %v after rejected SetVolume(%v)", s.Volume(), bad)
		}
	}

	if err := s.SetVolume(VolumeMin); err != nil {
		t.Errorf("SetVolume(min): %v", err)
	}
	if err := s.SetVolume(VolumeMax); err != nil {
		t.Errorf("SetVolume(max): %v", err)
	}
}
