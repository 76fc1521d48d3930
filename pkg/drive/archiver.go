package drive

import (
	"context"

	"go.uber.org/zap"
)

// XLSXMime is the content type of uploaded and generated workbooks.
const XLSXMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Archiver is the best-effort failure boundary around the Drive sink.
// A nil or disabled Archiver is a no-op, and an upload failure is
// logged and swallowed: archival must never abort or alter the primary
// pipeline output.
type Archiver struct {
	client Client
}

// NewArchiver wraps a Drive client. Pass nil to disable archival.
func NewArchiver(client Client) *Archiver {
	return &Archiver{client: client}
}

// Archive uploads a copy of the file, reporting failures at Warn only.
func (a *Archiver) Archive(ctx context.Context, name string, data []byte) {
	if a == nil || a.client == nil {
		return
	}
	id, err := a.client.Upload(ctx, name, XLSXMime, data)
	if err != nil {
		zap.L().Warn("drive: archival upload failed",
			zap.String("file", name),
			zap.Error(err),
		)
		return
	}
	zap.L().Debug("drive: archived file",
		zap.String("file", name),
		zap.String("id", id),
	)
}
