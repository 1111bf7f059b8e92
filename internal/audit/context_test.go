package audit

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFromContext_EmptyOutsideRequestExtent(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))
	assert.Nil(t, CandidateFromContext(context.Background()))
}

func TestWithRequestContext_RoundTrip(t *testing.T) {
	rc := &RequestContext{
		ActorEmail: strPtr("admin@assoc.test"),
		IPAddress:  "10.0.0.9",
		UserAgent:  "curl/8.0",
	}
	ctx := WithRequestContext(context.Background(), rc)

	got := FromContext(ctx)
	require.NotNil(t, got)
	assert.Same(t, rc, got)
}

func TestWithRequestContext_PropagatesIntoSpawnedGoroutines(t *testing.T) {
	rc := &RequestContext{IPAddress: "10.0.0.1"}
	ctx := WithRequestContext(context.Background(), rc)

	done := make(chan *RequestContext, 1)
	go func(ctx context.Context) {
		done <- FromContext(ctx)
	}(ctx)

	assert.Same(t, rc, <-done)
}

func TestRequestContext_ConcurrentIsolation(t *testing.T) {
	// Two concurrently active requests must never observe each other's
	// context, including from continuations they spawn.
	const iterations = 200

	var wg sync.WaitGroup
	for i := 0; i < iterations; i++ {
		for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
			wg.Add(1)
			go func(ip string) {
				defer wg.Done()
				ctx := WithRequestContext(context.Background(), &RequestContext{IPAddress: ip})

				inner := make(chan string, 1)
				go func(ctx context.Context) {
					inner <- FromContext(ctx).IPAddress
				}(ctx)

				if got := <-inner; got != ip {
					t.Errorf("context leaked across requests: got %s, want %s", got, ip)
				}
			}(ip)
		}
	}
	wg.Wait()
}

func TestWithActorCandidate_RoundTrip(t *testing.T) {
	ctx := WithActorCandidate(context.Background(), "new@assoc.test", "New User")

	ac := CandidateFromContext(ctx)
	require.NotNil(t, ac)
	assert.Equal(t, "new@assoc.test", ac.Email)
	assert.Equal(t, "New User", ac.Name)
}
