// Copyright 2026 The Authors
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

// Package logger provides a configurable logger shared across the
// opening-aggregation and lookup-prover components. Call sites identify
// themselves with a Component rather than writing their own ad hoc
// "component" field, so the set of loggable subsystems stays closed and
// grep-able from one place.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// Component names a subsystem that logs through this package. Adding one
// means adding a constant below, keeping the set of loggable subsystems
// enumerable rather than a free-form string any caller could typo.
type Component string

const (
	ComponentOpening  Component = "opening"
	ComponentQuotient Component = "quotient"
	ComponentLookup   Component = "lookup"
	ComponentPCS      Component = "pcs"
	ComponentR1CSIO   Component = "r1csio"
)

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set lets a caller override the global logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable silences the global logger.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns a sublogger tagged with component, so every line it emits
// carries which part of the pipeline produced it without every call site
// repeating a Str("component", ...) call.
func Logger(component Component) *zerolog.Logger {
	l := logger.With().Str("component", string(component)).Logger()
	return &l
}
