package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-specfun/sf"
)

type cpuInfo struct {
	Dispatch   string `json:"dispatch"`
	Level      string `json:"level"`
	FMA        bool   `json:"fma"`
	Width      int    `json:"width"`
	NoFMAEnv   bool   `json:"no_fma_env"`
	GOOS       string `json:"goos"`
	GOARCH     string `json:"goarch"`
	NumCPU     int    `json:"num_cpu"`
	GOMAXPROCS int    `json:"gomaxprocs"`
}

func newCPUCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Show the dispatch level chosen for this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := cpuInfo{
				Dispatch:   sf.CurrentName(),
				Level:      sf.CurrentLevel().String(),
				FMA:        sf.HasFMA(),
				Width:      sf.CurrentWidth(),
				NoFMAEnv:   sf.NoFMAEnv(),
				GOOS:       runtime.GOOS,
				GOARCH:     runtime.GOARCH,
				NumCPU:     runtime.NumCPU(),
				GOMAXPROCS: runtime.GOMAXPROCS(0),
			}
			w := cmd.OutOrStdout()
			if a.format == formatJSON {
				return jsonOut.NewEncoder(w).Encode(info)
			}
			fmt.Fprintf(w, "dispatch:   %s (%s)\n", info.Dispatch, info.Level)
			fmt.Fprintf(w, "fma:        %v\n", info.FMA)
			fmt.Fprintf(w, "width:      %d bytes\n", info.Width)
			fmt.Fprintf(w, "SF_NO_FMA:  %v\n", info.NoFMAEnv)
			fmt.Fprintf(w, "platform:   %s/%s\n", info.GOOS, info.GOARCH)
			fmt.Fprintf(w, "cpus:       %d (GOMAXPROCS %d)\n", info.NumCPU, info.GOMAXPROCS)
			return nil
		},
	}
}
