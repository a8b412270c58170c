package services

import (
	"errors"

	"github.com/ToeMom/GroupUp-Final/models"
)

func errorsIsNotFound(err error) bool {
	return errors.Is(err, models.ErrEventNotFound) ||
		errors.Is(err, models.ErrUserNotFound) ||
		errors.Is(err, models.ErrCommentNotFound) ||
		errors.Is(err, models.ErrCategoryNotFound)
}
