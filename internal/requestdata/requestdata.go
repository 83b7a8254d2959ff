package requestdata

import (
	"context"

	"github.com/google/uuid"
)

var requestDataKey = struct{}{}

// RequestData is the identity the auth middleware extracts from a verified
// token. Services treat it as trust context and never re-verify it.
type RequestData struct {
	TokenString   string
	UserID        uuid.UUID
	Branch        string
	CurrentBranch string
	IsAdmin       bool
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey).(*RequestData); ok {
		return rd
	}
	return nil
}
