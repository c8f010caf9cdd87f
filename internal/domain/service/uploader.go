package service

import "context"

// Uploader pushes a locally staged file to object storage and returns its public URL.
// The local file is removed whether or not the upload succeeds.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (string, error)
}
