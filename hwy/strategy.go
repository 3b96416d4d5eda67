// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"os"
	"strconv"
)

// Strategy selects how search kernels leave their scan loop once a match
// is found. It is fixed for the lifetime of the process.
type Strategy uint8

const (
	// StrategyBlocked evaluates predicates over whole blocks without
	// branching and resolves the matching lane afterwards. It suits targets
	// whose vector loops cannot exit on an individual lane.
	StrategyBlocked Strategy = iota

	// StrategyEarlyExit stops the scan at the first matching element.
	StrategyEarlyExit
)

// String returns "blocked" or "early-exit".
func (s Strategy) String() string {
	switch s {
	case StrategyBlocked:
		return "blocked"
	case StrategyEarlyExit:
		return "early-exit"
	default:
		return "unknown"
	}
}

// DefaultStrategy returns the strategy used for level when neither a build
// tag nor HWY_EARLY_EXIT overrides it. Scalar code has no vector loop to
// feed, so it short-circuits like predicated targets do.
func (d DispatchLevel) DefaultStrategy() Strategy {
	if d == DispatchScalar || d.Predicated() {
		return StrategyEarlyExit
	}
	return StrategyBlocked
}

// StrategySource names where the current strategy came from.
type StrategySource uint8

const (
	// SourceDetected means the strategy follows the detected dispatch level.
	SourceDetected StrategySource = iota
	// SourceEnv means HWY_EARLY_EXIT selected the strategy.
	SourceEnv
	// SourceBuildTag means the hwy_earlyexit or hwy_noearlyexit build tag did.
	SourceBuildTag
)

func (s StrategySource) String() string {
	switch s {
	case SourceDetected:
		return "detected"
	case SourceEnv:
		return "env"
	case SourceBuildTag:
		return "build-tag"
	default:
		return "unknown"
	}
}

var (
	currentStrategy Strategy
	strategySource  StrategySource
)

// EarlyExitEnv is the environment variable that overrides the detected
// strategy. Values are parsed with strconv.ParseBool; unparsable values are
// ignored.
const EarlyExitEnv = "HWY_EARLY_EXIT"

// resolveStrategy runs once, from the per-architecture init after the
// dispatch level is known.
func resolveStrategy() {
	if strategyForced {
		currentStrategy, strategySource = forcedStrategy, SourceBuildTag
		return
	}
	if val, ok := os.LookupEnv(EarlyExitEnv); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			currentStrategy, strategySource = StrategyBlocked, SourceEnv
			if b {
				currentStrategy = StrategyEarlyExit
			}
			return
		}
	}
	currentStrategy, strategySource = currentLevel.DefaultStrategy(), SourceDetected
}

// CurrentStrategy returns the search strategy selected at startup.
func CurrentStrategy() Strategy {
	return currentStrategy
}

// CurrentStrategySource reports what selected CurrentStrategy.
func CurrentStrategySource() StrategySource {
	return strategySource
}

// EarlyExitCapable reports whether search kernels use single-pass early
// exit loops. When false they use blocked scans with lane tie-breaking.
func EarlyExitCapable() bool {
	return currentStrategy == StrategyEarlyExit
}
