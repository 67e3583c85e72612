package frame_test

import (
	"image/color"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/portfolio-rain/internal/frame"
	"github.com/iburimskiy/portfolio-rain/internal/rain"
)

func TestScheduleFiresOnNextTick(t *testing.T) {
	l := frame.NewLoop()
	var got []time.Duration

	id := l.Schedule(func(ts time.Duration) { got = append(got, ts) })

	assert.NotZero(t, id)
	assert.Equal(t, 1, l.Pending())
	assert.Equal(t, 1, l.Tick(5*time.Millisecond))
	assert.Equal(t, []time.Duration{5 * time.Millisecond}, got)
	assert.Zero(t, l.Pending())
	assert.Zero(t, l.Tick(10*time.Millisecond))
}

func TestRescheduleDuringTickWaitsForNextTick(t *testing.T) {
	l := frame.NewLoop()
	calls := 0
	var cb func(time.Duration)
	cb = func(time.Duration) {
		calls++
		l.Schedule(cb)
	}
	l.Schedule(cb)

	l.Tick(0)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, l.Pending())

	l.Tick(time.Millisecond)
	assert.Equal(t, 2, calls)
}

func TestTickPreservesOrder(t *testing.T) {
	l := frame.NewLoop()
	var order []int
	for i := 0; i < 4; i++ {
		i := i
		l.Schedule(func(time.Duration) { order = append(order, i) })
	}

	l.Tick(0)

	assert.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestCancel(t *testing.T) {
	l := frame.NewLoop()
	fired := false
	id := l.Schedule(func(time.Duration) { fired = true })

	l.Cancel(id)
	l.Cancel(id)
	l.Cancel(0)
	l.Cancel(999)

	assert.Zero(t, l.Pending())
	assert.Zero(t, l.Tick(0))
	assert.False(t, fired)
}

func TestCancelFromEarlierCallbackInSameTick(t *testing.T) {
	l := frame.NewLoop()
	var second rain.FrameID
	secondFired := false
	l.Schedule(func(time.Duration) { l.Cancel(second) })
	second = l.Schedule(func(time.Duration) { secondFired = true })

	assert.Equal(t, 1, l.Tick(0))
	assert.False(t, secondFired)
}

type viewport struct{ w, h float64 }

func (v viewport) Size() (float64, float64)   { return v.w, v.h }
func (v viewport) DeviceScaleFactor() float64 { return 1 }

type countingContext struct{ passes int }

func (c *countingContext) SetTransform(float64)                             {}
func (c *countingContext) Clear()                                           {}
func (c *countingContext) FillRect(_, _, _, _ float64, _ color.NRGBA)       { c.passes++ }
func (c *countingContext) SetFont(float64)                                  {}
func (c *countingContext) FillText(_ string, _, _ float64, _ color.NRGBA) {}

type canvas struct{ ctx *countingContext }

func (c *canvas) SetSize(int, int)               {}
func (c *canvas) Context() (rain.Context, bool) { return c.ctx, true }

func TestLoopDrivesRainController(t *testing.T) {
	l := frame.NewLoop()
	cv := &canvas{ctx: &countingContext{}}
	c := rain.New(cv, viewport{w: 1024, h: 768}, l, rain.WithRand(rand.New(rand.NewPCG(7, 7))))

	c.Activate()
	c.Activate()
	require.Equal(t, 1, l.Pending())
	require.Len(t, c.Columns(), 64)

	for i := 1; i <= 100; i++ {
		l.Tick(time.Duration(i) * 16700 * time.Microsecond)
		require.Equal(t, 1, l.Pending())
	}
	assert.Equal(t, 50, cv.ctx.passes)

	c.Deactivate()
	assert.Zero(t, l.Pending())
	assert.Zero(t, l.Tick(10*time.Second))
	assert.Equal(t, 50, cv.ctx.passes)
}
