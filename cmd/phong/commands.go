package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taigrr/phong/pkg/render"
	"github.com/taigrr/phong/pkg/scene"
)

func newRootCmd() *cobra.Command {
	opts := newOptions()

	cmd := &cobra.Command{
		Use:   "phong -f FILE",
		Short: "Ray trace a Phong-shaded sphere",
		Long: "Ray trace a single sphere lit by one point light and write the image as\n" +
			"plain PPM (or PNG when FILE ends in .png).",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.filename, "filename", "f", "", "output image path (.ppm or .png)")
	cmd.Flags().IntVarP(&opts.size, "size", "s", 1000, "canvas width and height in pixels")
	_ = cmd.MarkFlagRequired("filename")
	opts.addSceneFlags(cmd.PersistentFlags())

	cmd.AddCommand(newPreviewCmd(opts))
	return cmd
}

func newPreviewCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Preview the sphere in the terminal and orbit the light",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.buildScene()
			if err != nil {
				return err
			}
			return runPreview(cmd.Context(), s, opts)
		},
	}
}

func runRender(cmd *cobra.Command, opts *options) error {
	if opts.size <= 0 {
		return fmt.Errorf("size must be positive, got %d", opts.size)
	}

	s, err := opts.buildScene()
	if err != nil {
		return err
	}

	c := render.NewCanvas(opts.size, opts.size)
	start := time.Now()
	if err := scene.Render(cmd.Context(), s, c, opts.workers); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := c.Save(opts.filename); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s rendered %dx%d to %s in %s\n",
		successStyle.Render("✓"), c.Width, c.Height,
		pathStyle.Render(opts.filename), time.Since(start).Round(time.Millisecond))
	return nil
}
