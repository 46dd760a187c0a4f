package llm

import (
	"context"
	"strings"
)

// Untagged is the purpose recorded for calls made without WithPurpose.
const Untagged = "untagged"

type purposeCtxKey struct{}

// WithPurpose labels calls made with ctx, e.g. "mentor-chat". The label
// groups events in `llm list` and `llm stats`. A blank label leaves ctx
// unchanged.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return ctx
	}
	return context.WithValue(ctx, purposeCtxKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or Untagged.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey{}).(string); ok {
		return p
	}
	return Untagged
}
