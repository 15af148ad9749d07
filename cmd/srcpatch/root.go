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

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/srcpatch/cmd/srcpatch/commands"
	"github.com/walteh/srcpatch/cmd/srcpatch/opts"
	"github.com/walteh/srcpatch/pkg/log"
	"github.com/walteh/srcpatch/pkg/profile"
)

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "srcpatch",
		Short: "Apply a fixed set of source edits to a project, with backups",
		Long: `srcpatch applies a named profile of edits to known source files.
Every target is backed up next to itself before it is changed, each edit
checks whether it was already applied, and edits that cannot find the text
they expect are reported instead of being skipped silently.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}

			ctx := log.WithLogger(cmd.Context(), os.Stderr, rootOpts.Debug)
			cmd.SetContext(ctx)

			rootOpts.UserLogger = log.NewUserLogger(ctx, cmd.OutOrStdout())
			return rootOpts.LoadConfig(ctx)
		},
	}

	addRootFlags(rootCmd, rootOpts)

	rootCmd.AddCommand(
		commands.NewApplyCmd(rootOpts),
		commands.NewCheckCmd(rootOpts),
		commands.NewRestoreCmd(rootOpts),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "config file path (default: srcpatch.{hcl,yaml,yml,json} if present)")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&o.Project, "project", "", "project root the target paths are relative to")
	cmd.PersistentFlags().StringVarP(&o.Profile, "profile", "p", "", "profile to apply (available: "+strings.Join(profile.Names(), ", ")+")")
	cmd.PersistentFlags().StringVar(&o.BackupSuffix, "backup-suffix", "", "suffix of backup files (default .backup)")
}

