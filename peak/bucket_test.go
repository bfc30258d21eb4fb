package peak_test

import (
	"errors"
	"testing"

	"github.com/kestrelvision/posegroup/peak"
)

func TestBucket_GroupsAndPreservesOrder(t *testing.T) {
	x := []float64{2, 6, 2, 6}
	y := []float64{1, 1, 7, 7}
	s := []float64{0.9, 0.8, 0.7, 0.6}
	ch := []int{0, 1, 0, 1}

	buckets, err := peak.Bucket(x, y, s, ch, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("want 2 channels, got %d", len(buckets))
	}
	if len(buckets[0]) != 2 || len(buckets[1]) != 2 {
		t.Fatalf("want 2 peaks per channel, got %v", buckets)
	}
	// Order within channel 0 must match original relative order: (2,1) then (2,7).
	if buckets[0][0].Y != 1 || buckets[0][1].Y != 7 {
		t.Errorf("channel 0 order not preserved: %+v", buckets[0])
	}
}

func TestBucket_LengthMismatch(t *testing.T) {
	_, err := peak.Bucket([]float64{1}, []float64{1, 2}, []float64{1}, []int{0}, 1)
	if !errors.Is(err, peak.ErrLengthMismatch) {
		t.Errorf("want ErrLengthMismatch, got %v", err)
	}
}

func TestBucket_ChannelOutOfRange(t *testing.T) {
	_, err := peak.Bucket([]float64{1}, []float64{1}, []float64{1}, []int{5}, 1)
	if !errors.Is(err, peak.ErrChannelOutOfRange) {
		t.Errorf("want ErrChannelOutOfRange, got %v", err)
	}
}

func TestScores(t *testing.T) {
	bucket := []peak.Peak{{Score: 0.1}, {Score: 0.2}}
	got := peak.Scores(bucket)
	want := []float64{0.1, 0.2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Scores()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
