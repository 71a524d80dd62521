/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"log/slog"

	applog "godeckwriter/internal/log"
)

// Recorder is the surface behind the double-shift gesture. The UI only flips
// it on and off; the capture mechanics live with whoever provides the
// implementation.
type Recorder interface {
	// Toggle flips the recording state and reports the new state.
	Toggle() (recording bool, err error)
	// Recording reports whether a recording is in progress.
	Recording() bool
}

// LogRecorder is the default Recorder: it tracks the on/off state and logs
// transitions. Useful until a platform capture backend is plugged in.
type LogRecorder struct {
	on bool
}

func (r *LogRecorder) Toggle() (bool, error) {
	r.on = !r.on
	if r.on {
		applog.WithComponent("ui").Info("recording started")
	} else {
		applog.WithComponent("ui").Info("recording stopped", slog.Bool("had_capture", false))
	}
	return r.on, nil
}

func (r *LogRecorder) Recording() bool { return r.on }
