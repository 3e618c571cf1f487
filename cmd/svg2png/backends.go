package main

import (
	"github.com/flanksource/svg2png"
	"github.com/flanksource/svg2png/raster"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type backendInfo struct {
	Name      string `json:"name" yaml:"name"`
	Available bool   `json:"available" yaml:"available"`
	Selected  bool   `json:"selected" yaml:"selected"`
}

type backendList []backendInfo

func (b backendList) Headers() []string {
	return []string{"backend", "available", "selected"}
}

func (b backendList) Rows() [][]string {
	yesNo := func(v bool) string { return lo.Ternary(v, "yes", "no") }
	return lo.Map(b, func(info backendInfo, _ int) []string {
		return []string{info.Name, yesNo(info.Available), yesNo(info.Selected)}
	})
}

func listBackends(opts svg2png.BackendOptions) (backendList, error) {
	manager, err := svg2png.NewRasterizer(opts)
	if err != nil {
		return nil, err
	}
	available := manager.Available()
	selected := manager.Name()
	return lo.Map(raster.DefaultBackends(), func(r raster.Rasterizer, _ int) backendInfo {
		return backendInfo{
			Name:      r.Name(),
			Available: lo.Contains(available, r.Name()),
			Selected:  r.Name() == selected,
		}
	}), nil
}

func newBackendsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List rasterizer backends and which one would be used",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := listBackends(svg2png.Flags.BackendOptions)
			if err != nil {
				return err
			}
			opts := svg2png.Flags.FormatOptions
			return svg2png.FormatToFile(list, opts, opts.Output)
		},
	}
}
