package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mybayani/emergency-backend/internal/domain"
)

// MapError converts driver errors to domain errors.
// Context errors pass through.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if id != nil {
		prefix = fmt.Sprintf("%s %v", entity, id)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", prefix, err)
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
	}

	return fmt.Errorf("%s: %w", prefix, err)
}
