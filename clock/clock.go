// This file is part of yasp.
//
// yasp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// yasp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with yasp.  If not, see <https://www.gnu.org/licenses/>.

// Package clock converts the wait units of a dump into real time and paces
// playback by sleeping for that time.
//
// Sleeping is best effort. The accuracy depends on the scheduler of the host
// operating system. With drift compensation enabled, the Clock keeps a
// deadline measured from the first wait so that time spent writing to the
// hardware between waits doesn't accumulate as lag.
package clock

import (
	"time"

	"github.com/yasp-player/yasp/logger"
)

// Sleeper is the source of time for the Clock. Implementations other than
// the default are useful for testing.
type Sleeper interface {
	Sleep(d time.Duration)
	Now() time.Time
}

type realTime struct{}

func (realTime) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (realTime) Now() time.Time {
	return time.Now()
}

// RealTime is the Sleeper used by NewS98() and NewVGM().
var RealTime Sleeper = realTime{}

// the number of samples per second in a VGM file
const vgmSampleRate = 44100

// when compensating for drift, the clock will not try to catch up by more than
// this amount. if playback falls further behind (because the host was
// suspended for example) the deadline is moved forward
const maxLag = 250 * time.Millisecond

// Clock converts wait units to durations and sleeps for that duration.
type Clock struct {
	sleeper Sleeper

	// the length of one wait unit in seconds for S98 dumps. zero for VGM
	// dumps
	step float64

	compensate bool
	deadline   time.Time

	// total of all waits
	elapsed time.Duration
}

// NewS98 creates a Clock for S98 dumps. The length of each wait unit is step
// seconds.
func NewS98(step float64, sleeper Sleeper) *Clock {
	return &Clock{
		sleeper: sleeper,
		step:    step,
	}
}

// NewVGM creates a Clock for VGM dumps. Wait units are samples at 44100Hz.
func NewVGM(sleeper Sleeper) *Clock {
	return &Clock{
		sleeper: sleeper,
	}
}

// SetCompensation turns drift compensation on or off.
func (clk *Clock) SetCompensation(compensate bool) {
	clk.compensate = compensate
	clk.deadline = time.Time{}
}

// Elapsed returns the length of the wait in real time.
func (clk *Clock) Elapsed(units uint64) time.Duration {
	if clk.step == 0 {
		return time.Duration(units * uint64(time.Second) / vgmSampleRate)
	}
	return time.Duration(float64(units) * clk.step * float64(time.Second))
}

// Total returns the sum of all waits so far. This is the position in the dump
// in real time.
func (clk *Clock) Total() time.Duration {
	return clk.elapsed
}

// Wait for the number of wait units.
func (clk *Clock) Wait(units uint64) {
	clk.Sleep(clk.Elapsed(units))
}

// Sleep for the duration, or if drift compensation is enabled, until the
// deadline advanced by the duration.
func (clk *Clock) Sleep(d time.Duration) {
	clk.elapsed += d

	if !clk.compensate {
		if d > 0 {
			clk.sleeper.Sleep(d)
		}
		return
	}

	now := clk.sleeper.Now()
	if clk.deadline.IsZero() {
		clk.deadline = now
	}
	clk.deadline = clk.deadline.Add(d)

	remaining := clk.deadline.Sub(now)
	if remaining > 0 {
		clk.sleeper.Sleep(remaining)
		return
	}

	if -remaining > maxLag {
		logger.Logf(logger.Allow, "clock", "playback is %v behind. resynchronising", -remaining)
		clk.deadline = now
	}
}
