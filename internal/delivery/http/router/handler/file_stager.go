package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"videotube/config"
	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var safeExtension = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// FileStagerParams holds dependencies for FileStager, injected by Fx.
type FileStagerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// FileStager copies multipart files into the upload temp dir so the usecases can
// hand local paths to the storage uploader.
type FileStager struct {
	dir     string
	maxSize int64
	logger  *slog.Logger
}

// NewFileStager creates the temp dir if needed.
func NewFileStager(params FileStagerParams) (*FileStager, error) {
	dir := params.Config.Upload.TempDir
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.Wrapf(err, "create upload dir %s", dir)
	}

	return &FileStager{
		dir:     dir,
		maxSize: params.Config.Upload.MaxFileSize,
		logger:  params.Logger,
	}, nil
}

// Stage writes the file of the given form field to a randomly named temp file and
// returns its path. A missing field yields an empty path and no error.
func (s *FileStager) Stage(c echo.Context, field string) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.IsAny(err, http.ErrMissingFile, http.ErrNotMultipart) {
			return "", nil
		}

		return "", errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Invalid multipart form"), err.Error())
	}

	if header.Size > s.maxSize {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithMessage(field + " file is too large"))
	}

	return s.copyToTemp(header)
}

func (s *FileStager) copyToTemp(header *multipart.FileHeader) (path string, err error) {
	src, err := header.Open()
	if err != nil {
		return "", errors.Wrap(err, "open multipart file")
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !safeExtension.MatchString(ext) {
		ext = ""
	}

	dst, err := os.CreateTemp(s.dir, "upload-*"+ext)
	if err != nil {
		return "", errors.Wrap(err, "create temp file")
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close temp file")
		}
		if err != nil {
			s.Discard(dst.Name())
		}
	}()

	// One byte past the limit tells an oversized body from an exact fit
	written, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1))
	if err != nil {
		return "", errors.Wrap(err, "write temp file")
	}
	if written > s.maxSize {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("File is too large"))
	}

	return dst.Name(), nil
}

// Discard removes staged files the uploader did not consume. Paths already
// removed are ignored.
func (s *FileStager) Discard(paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("Failed to remove staged file", slog.String("path", path), slog.Any("error", err))
		}
	}
}
