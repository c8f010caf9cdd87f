// Package impl contains the implementation of the application's business logic.
package impl

import (
	"regexp"
	"strings"

	domainerrors "videotube/internal/domain/errors"
	"videotube/internal/domain/repository"
	"videotube/internal/errors"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func isBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}

	return false
}

func normalizeIdentifier(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func validationError(message string) error {
	return domainerrors.ErrValidationFailed.WithMessage(message)
}

// translateRepoError maps persistence errors onto the application error taxonomy.
// notFound is the domain error reported when the repository signals a missing record.
func translateRepoError(err error, notFound *domainerrors.BaseError, message string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrInvalidID):
		return errors.Wrap(validationError("Invalid id"), message)
	case errors.Is(err, repository.ErrDuplicateKey):
		return errors.Wrap(domainerrors.ErrConflict, message)
	case notFound != nil && errors.IsAny(err,
		repository.ErrUserNotFound,
		repository.ErrVideoNotFound,
		repository.ErrCommentNotFound,
		repository.ErrChannelNotFound,
	):
		return errors.Wrap(notFound, message)
	default:
		return errors.Wrap(err, message)
	}
}
