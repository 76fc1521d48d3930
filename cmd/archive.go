package main

import (
	"github.com/stream-ops/orders-cli/pkg/drive"
)

// newArchiver builds the best-effort Drive sink from config. Disabled
// or unconfigured archival yields a no-op archiver.
func newArchiver() *drive.Archiver {
	if !cfg.Archive.Enabled || cfg.Archive.Token == "" {
		return drive.NewArchiver(nil)
	}
	var opts []drive.Option
	if cfg.Archive.BaseURL != "" {
		opts = append(opts, drive.WithBaseURL(cfg.Archive.BaseURL))
	}
	return drive.NewArchiver(drive.NewClient(cfg.Archive.Token, cfg.Archive.FolderID, opts...))
}
