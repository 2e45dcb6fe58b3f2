package animated_test

import (
	"testing"
	"time"

	"github.com/delaneyj/animparty/animated"
	"github.com/delaneyj/animparty/frameloop"
	"github.com/delaneyj/animparty/interaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

// a follower eases toward every new position of its leader
func TestTrackFollowsSource(t *testing.T) {
	loop := frameloop.New()
	rt := animated.CreateRuntime(nil)
	leader := animated.Value(rt, 0)
	follower := animated.Value(rt, 0)

	settled := 0
	follower.Track(animated.NewTracking(leader, func(to float64) animated.Animation {
		a, err := animated.Timing(loop, animated.TimingConfig{
			ToValue:  to,
			Duration: 100 * time.Millisecond,
			Easing:   ease.Linear,
		})
		require.NoError(t, err)
		return a
	}, func(r animated.EndResult) {
		assert.True(t, r.Finished)
		settled++
	}))
	assert.True(t, follower.IsTracking())
	assert.Equal(t, 1, leader.NumDependents())

	leader.SetValue(100)
	loop.Run(10*time.Millisecond, 100)
	assert.Equal(t, 100.0, follower.Value())
	assert.True(t, follower.IsTracking())

	leader.SetValue(50)
	loop.Step(10 * time.Millisecond)
	assert.Less(t, follower.Value(), 100.0)
	assert.Greater(t, follower.Value(), 50.0)

	loop.Run(10*time.Millisecond, 100)
	assert.Equal(t, 50.0, follower.Value())
	assert.Equal(t, 2, settled)
}

// each restart hands the interrupted inner animation over as previous
func TestTrackHandsOverPrevious(t *testing.T) {
	rt := animated.CreateRuntime(nil)
	leader := animated.Value(rt, 0)
	follower := animated.Value(rt, 0)

	made := []*scripted{}
	follower.Track(animated.NewTracking(leader, func(float64) animated.Animation {
		s := &scripted{}
		made = append(made, s)
		return s
	}, nil))
	require.Len(t, made, 1)
	assert.Nil(t, made[0].previous)

	made[0].Tick(3)
	leader.SetValue(10)
	require.Len(t, made, 2)
	assert.Equal(t, 1, made[0].stops)
	assert.Same(t, made[0], made[1].previous)
	assert.Equal(t, 3.0, made[1].from)

	made[0].Tick(99)
	assert.Equal(t, 3.0, follower.Value())
}

// tracking replaces a running animation, and animating replaces tracking
func TestTrackAndAnimateAreExclusive(t *testing.T) {
	im := interaction.NewManager()
	rt := animated.CreateRuntime(im)
	leader := animated.Value(rt, 0)
	follower := animated.Value(rt, 0)

	running := &scripted{interaction: true}
	follower.Animate(running, nil)
	require.Equal(t, 1, im.Pending())

	inner := []*scripted{}
	follower.Track(animated.NewTracking(leader, func(float64) animated.Animation {
		s := &scripted{interaction: true}
		inner = append(inner, s)
		return s
	}, nil))
	assert.Equal(t, 1, running.stops)
	assert.False(t, follower.IsAnimating())
	assert.True(t, follower.IsTracking())
	require.Len(t, inner, 1)
	assert.Same(t, running, inner[0].previous)
	assert.Equal(t, 1, im.Pending())

	next := &scripted{}
	follower.Animate(next, nil)
	assert.Equal(t, 1, inner[0].stops)
	assert.Same(t, inner[0], next.previous)
	assert.True(t, follower.IsAnimating())
	assert.False(t, follower.IsTracking())
	assert.Equal(t, 0, leader.NumDependents())
	assert.Equal(t, 0, im.Pending())

	leader.SetValue(5)
	assert.Len(t, inner, 1)
}

// setting the follower's value tears the tracking relationship down
func TestSetValueStopsTracking(t *testing.T) {
	rt := animated.CreateRuntime(nil)
	leader := animated.Value(rt, 0)
	follower := animated.Value(rt, 0)

	inner := []*scripted{}
	follower.Track(animated.NewTracking(leader, func(float64) animated.Animation {
		s := &scripted{}
		inner = append(inner, s)
		return s
	}, nil))

	follower.SetValue(7)
	assert.False(t, follower.IsTracking())
	assert.Equal(t, 1, inner[0].stops)
	assert.Equal(t, 0, leader.NumDependents())

	leader.SetValue(1)
	assert.Len(t, inner, 1)
	assert.Equal(t, 7.0, follower.Value())
}

// stopping tracking is idempotent and leaves animations alone
func TestStopTracking(t *testing.T) {
	rt := animated.CreateRuntime(nil)
	leader := animated.Value(rt, 0)
	follower := animated.Value(rt, 0)

	tracking := animated.NewTracking(leader, func(float64) animated.Animation {
		return &scripted{}
	}, nil)
	follower.Track(tracking)
	assert.Same(t, leader, tracking.Source())

	follower.StopTracking()
	follower.StopTracking()
	assert.False(t, follower.IsTracking())
	assert.Equal(t, 0, leader.NumDependents())

	running := &scripted{}
	follower.Animate(running, nil)
	follower.StopTracking()
	assert.True(t, follower.IsAnimating())
	assert.Equal(t, 0, running.stops)
}

// a tracking relationship cannot be reused
func TestTrackTwicePanics(t *testing.T) {
	rt := animated.CreateRuntime(nil)
	leader := animated.Value(rt, 0)
	a := animated.Value(rt, 0)
	b := animated.Value(rt, 0)

	tracking := animated.NewTracking(leader, func(float64) animated.Animation {
		return &scripted{}
	}, nil)
	a.Track(tracking)
	assert.Panics(t, func() {
		b.Track(tracking)
	})
}

// a follower bound to a view updates it on every inner tick
func TestTrackDrivesView(t *testing.T) {
	loop := frameloop.New()
	rt := animated.CreateRuntime(nil)
	leader := animated.Value(rt, 0)
	follower := animated.Value(rt, 0)
	view := &countingView{}
	bind(view, map[string]animated.Scalar{"left": follower})

	follower.Track(animated.NewTracking(leader, func(to float64) animated.Animation {
		a, err := animated.Spring(loop, animated.SpringConfig{ToValue: to})
		require.NoError(t, err)
		return a
	}, nil))

	leader.SetValue(1)
	loop.Run(16*time.Millisecond, 1000)
	assert.Equal(t, 1.0, view.last().Properties["left"])
	assert.Greater(t, view.count(), 10)
}
