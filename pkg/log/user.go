// Copyright 2025 walteh LLC
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

package log

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback on the console and mirrors
// every message to the diagnostic logger.
type UserLogger struct {
	log zerolog.Logger

	info    pterm.PrefixPrinter
	success pterm.PrefixPrinter
	warning pterm.PrefixPrinter
	failure pterm.PrefixPrinter
}

// 🎯 NewUserLogger creates a user logger writing to w
func NewUserLogger(ctx context.Context, w io.Writer) *UserLogger {
	return &UserLogger{
		log:     *zerolog.Ctx(ctx),
		info:    *pterm.Info.WithWriter(w).WithPrefix(pterm.Prefix{Text: "📦", Style: pterm.Info.Prefix.Style}),
		success: *pterm.Success.WithWriter(w).WithPrefix(pterm.Prefix{Text: "✅", Style: pterm.Success.Prefix.Style}),
		warning: *pterm.Warning.WithWriter(w).WithPrefix(pterm.Prefix{Text: "⚠️", Style: pterm.Warning.Prefix.Style}),
		failure: *pterm.Error.WithWriter(w).WithPrefix(pterm.Prefix{Text: "❌", Style: pterm.Error.Prefix.Style}),
	}
}

// 📝 Step announces a step of the run
func (u *UserLogger) Step(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.info.Println(msg)
	u.log.Info().Msg(msg)
}

// Success reports a finished step
func (u *UserLogger) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.success.Println(msg)
	u.log.Info().Msg(msg)
}

// Warning reports something the operator should look at
func (u *UserLogger) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	u.warning.Println(msg)
	u.log.Warn().Msg(msg)
}

// 🔍 LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	switch {
	case valid:
		u.success.Println(description)
		u.log.Info().Msg(description)
	case err != nil:
		u.failure.Println(description)
		u.failure.Println(err.Error())
		u.log.Error().Err(err).Msg(description)
	default:
		u.warning.Println(description)
		u.log.Warn().Msg(description)
	}
}
