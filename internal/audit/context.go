// Package audit implements the data-mutation audit subsystem: request
// context propagation, sensitive-field masking, field-level diffing and
// the generic operation interceptor. Audit failures never surface to the
// business operation that triggered them.
package audit

import "context"

// RequestContext carries per-request actor identity and network metadata.
// It is created once when a request begins, attached to the request's
// context.Context, and flows into every call and goroutine spawned under
// that request. Concurrent requests hold distinct values and can never
// observe each other's context.
type RequestContext struct {
	ActorID    *string
	ActorName  *string
	ActorEmail *string
	ActorRole  *string
	IPAddress  string
	UserAgent  string
}

// ActorCandidate is pre-authentication attribution supplied by the request
// body (login, self-registration). The writer uses it only when no
// authenticated actor is present.
type ActorCandidate struct {
	Email string
	Name  string
}

type requestContextKey struct{}

type actorCandidateKey struct{}

// WithRequestContext returns a context carrying rc. Everything executed
// under the returned context (including spawned goroutines that capture
// it) observes rc via FromContext.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext attached to ctx, or nil when the
// execution is not within any request extent.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// WithActorCandidate returns a context carrying fallback attribution for
// authentication-adjacent operations.
func WithActorCandidate(ctx context.Context, email, name string) context.Context {
	return context.WithValue(ctx, actorCandidateKey{}, &ActorCandidate{Email: email, Name: name})
}

// CandidateFromContext returns the fallback attribution, or nil.
func CandidateFromContext(ctx context.Context) *ActorCandidate {
	ac, _ := ctx.Value(actorCandidateKey{}).(*ActorCandidate)
	return ac
}
