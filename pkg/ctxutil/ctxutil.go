// Package ctxutil carries per-update identity through contexts for log
// correlation.
package ctxutil

import "context"

type ctxKey string

const (
	operatorIDKey ctxKey = "operator_id"
	updateIDKey   ctxKey = "update_id"
)

// WithOperatorID stores the acting operator's Telegram ID in the context.
func WithOperatorID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, operatorIDKey, id)
}

// OperatorIDFromCtx extracts the operator ID from the context.
// Returns 0 and false if the value is missing or has the wrong type.
func OperatorIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(operatorIDKey).(int64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// WithUpdateID stores the Telegram update ID in the context.
func WithUpdateID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, updateIDKey, id)
}

// UpdateIDFromCtx extracts the update ID from the context.
// Returns 0 if absent.
func UpdateIDFromCtx(ctx context.Context) int {
	id, _ := ctx.Value(updateIDKey).(int)
	return id
}
