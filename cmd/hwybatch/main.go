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

// Command hwybatch reports the capability detection of the batch kernels and
// times them on synthetic data.
//
// Usage:
//
//	hwybatch info
//	hwybatch info --json
//	hwybatch bench -n 1000000 --kernel find_if,copy_if
//	HWY_EARLY_EXIT=0 hwybatch bench        # force the blocked strategy
//
// Logs go to stderr; --log-format selects text or json output and
// --log-level the minimum level.
package main

import "os"

func main() {
	a := &app{stdout: os.Stdout, stderr: os.Stderr}
	if err := newRootCmd(a).Execute(); err != nil {
		a.log().Error("hwybatch failed", "err", err)
		os.Exit(1)
	}
}
