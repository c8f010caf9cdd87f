package impl

import (
	"io"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

func ptr[T any](v T) *T {
	return &v
}
