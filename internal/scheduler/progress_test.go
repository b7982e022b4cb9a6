package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressSetAndFraction(t *testing.T) {
	p := NewProgress()
	assert.Equal(t, 0.0, p.Fraction())
	p.Set(0.5)
	assert.Equal(t, 0.5, p.Fraction())
}

func TestProgressReachingOneLatchesFinishTime(t *testing.T) {
	p := NewProgress()
	time.Sleep(2 * time.Millisecond)
	p.Set(1.0)
	elapsedAtFinish := p.Elapsed()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, elapsedAtFinish, p.Elapsed(), "Elapsed should be latched once finished")
	assert.Equal(t, time.Duration(0), p.Remaining())
}

func TestProgressStopLatchesWithoutForcingFractionToOne(t *testing.T) {
	p := NewProgress()
	p.Set(0.3)
	p.Stop()
	assert.Equal(t, 0.3, p.Fraction())
	elapsed := p.Elapsed()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, elapsed, p.Elapsed())
}

func TestProgressResetClearsFractionAndFinish(t *testing.T) {
	p := NewProgress()
	p.Set(1.0)
	p.Reset()
	assert.Equal(t, 0.0, p.Fraction())
	assert.Equal(t, time.Duration(0), p.Remaining())
}
