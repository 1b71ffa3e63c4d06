// Copyright 2025 go-lanes Authors
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
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/go-lanes/lanes/lane"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print dispatch level and lane counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.engine(a.cfg.TailMode())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "dispatch: %s (%d bytes)\n", lane.CurrentName(), lane.CurrentWidth())
			fmt.Fprintf(out, "lanes:    int8=%d int16=%d int32=%d int64=%d\n",
				lane.MaxLanes[int8](), lane.MaxLanes[int16](), lane.MaxLanes[int32](), lane.MaxLanes[int64]())
			fmt.Fprintf(out, "engine:   %v\n", e)
			return nil
		},
	}
}
