package mapper

import (
	"context"
	"errors"

	"github.com/gofrs/uuid"
	"github.com/tsbridge/tsbridge/src/tsbridge/entity"
)

// ContextToSessionUUID extracts the active session's UUID from the request context.
func ContextToSessionUUID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("context does not contain a session UUID")
	}
	return id, nil
}
