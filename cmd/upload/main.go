package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"rude-dashboard-be/internal/config"
	"rude-dashboard-be/pkg/cdn"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dir    string
		folder string
	)

	cmd := &cobra.Command{
		Use:   "rude-upload",
		Short: "Upload a local asset directory to Cloudinary, one asset per file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpload(cmd.Context(), dir, folder)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&dir, "dir", "", "local directory to upload (walked recursively)")
	cmd.Flags().StringVar(&folder, "folder", "", "remote Cloudinary folder")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

func runUpload(parent context.Context, dir, folder string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	cfg := config.Load()
	up, err := cdn.NewCloudinaryUploader(cfg.Cloudinary.URL)
	if err != nil {
		return err
	}

	report, err := cdn.UploadDir(ctx, up, dir, folder, func(path string, res *cdn.UploadResult, err error) {
		if err != nil {
			color.Red("✗ %s: %v", path, err)
			return
		}
		color.Green("✓ %s -> %s", path, res.PublicID)
	})
	if err != nil {
		return err
	}

	fmt.Println()
	color.Cyan("Uploaded: %d", len(report.Uploaded))
	color.Yellow("Skipped:  %d", len(report.Skipped))
	if len(report.Failed) > 0 {
		color.Red("Failed:   %d", len(report.Failed))
		return fmt.Errorf("%d file(s) failed to upload", len(report.Failed))
	}
	return nil
}
