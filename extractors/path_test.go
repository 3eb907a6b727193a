package extractors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/torchweb/torch"
	"github.com/torchweb/torch/extractors"
)

// route registers h at pattern and dispatches a GET for path.
func route(t *testing.T, pattern, path string, h torch.HandlerFunc) *torch.Response {
	t.Helper()
	rt := torch.NewRouter()
	rt.GET(pattern, h)
	return rt.Dispatch(context.Background(), torch.NewRequest(http.MethodGet, path))
}

func TestPathScalar(t *testing.T) {
	t.Parallel()

	t.Run("uint32", func(t *testing.T) {
		t.Parallel()

		resp := route(t, "/users/:id", "/users/123",
			torch.Handler1(func(ctx context.Context, id extractors.Path[uint32]) string {
				return fmt.Sprintf("User %d", id.Value)
			}))
		require.Equal(t, "User 123", resp.BodyString())
	})

	t.Run("string passes through", func(t *testing.T) {
		t.Parallel()

		resp := route(t, "/files/:name", "/files/report.pdf",
			torch.Handler1(func(ctx context.Context, name extractors.Path[string]) string {
				return name.Value
			}))
		require.Equal(t, "report.pdf", resp.BodyString())
	})

	t.Run("uuid", func(t *testing.T) {
		t.Parallel()

		id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
		resp := route(t, "/orders/:id", "/orders/"+id.String(),
			torch.Handler1(func(ctx context.Context, p extractors.Path[uuid.UUID]) string {
				return p.Value.String()
			}))
		require.Equal(t, id.String(), resp.BodyString())
	})

	t.Run("parse failure is a 400", func(t *testing.T) {
		t.Parallel()

		resp := route(t, "/users/:id", "/users/not-a-number",
			torch.Handler1(func(ctx context.Context, id extractors.Path[uint32]) string {
				return "unreachable"
			}))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Contains(t, resp.BodyString(), "Invalid path parameter")
	})

	t.Run("zero params is an extraction error", func(t *testing.T) {
		t.Parallel()

		resp := route(t, "/users", "/users",
			torch.Handler1(func(ctx context.Context, id extractors.Path[uint32]) string {
				return "unreachable"
			}))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("two params reject the single form", func(t *testing.T) {
		t.Parallel()

		resp := route(t, "/a/:x/b/:y", "/a/1/b/2",
			torch.Handler1(func(ctx context.Context, id extractors.Path[uint32]) string {
				return "unreachable"
			}))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPathTuples(t *testing.T) {
	t.Parallel()

	t.Run("fields follow alphabetical parameter order", func(t *testing.T) {
		t.Parallel()

		// Parameter names sort to [user_id, version], so First is the
		// user_id value even though :version comes first in the pattern.
		resp := route(t, "/api/:version/users/:user_id", "/api/v1/users/42",
			torch.Handler1(func(ctx context.Context, p extractors.Path2[uint32, string]) string {
				return fmt.Sprintf("%d-%s", p.First, p.Second)
			}))
		require.Equal(t, "42-v1", resp.BodyString())
	})

	t.Run("positional typing fails against alphabetical order", func(t *testing.T) {
		t.Parallel()

		resp := route(t, "/api/:version/users/:user_id", "/api/v1/users/42",
			torch.Handler1(func(ctx context.Context, p extractors.Path2[string, uint32]) string {
				return "unreachable"
			}))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("three params", func(t *testing.T) {
		t.Parallel()

		// Names sort to [post, user, year].
		resp := route(t, "/blog/:year/:user/:post", "/blog/2026/ember/hello-world",
			torch.Handler1(func(ctx context.Context, p extractors.Path3[string, string, uint16]) string {
				return fmt.Sprintf("%s/%s/%d", p.First, p.Second, p.Third)
			}))
		require.Equal(t, "hello-world/ember/2026", resp.BodyString())
	})

	t.Run("wrong parameter count", func(t *testing.T) {
		t.Parallel()

		resp := route(t, "/users/:id", "/users/1",
			torch.Handler1(func(ctx context.Context, p extractors.Path2[string, string]) string {
				return "unreachable"
			}))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestParams(t *testing.T) {
	t.Parallel()

	resp := route(t, "/a/:x/b/:y", "/a/1/b/2",
		torch.Handler1(func(ctx context.Context, p extractors.Params) string {
			return p.Values["x"] + p.Values["y"]
		}))
	require.Equal(t, "12", resp.BodyString())
}

func TestPathErrorKind(t *testing.T) {
	t.Parallel()

	r := torch.NewRequest(http.MethodGet, "/")
	var p extractors.Path[uint32]
	err := p.ExtractParts(r)

	var te *torch.Error
	require.True(t, errors.As(err, &te))
	require.Equal(t, torch.KindMissingPathParam, te.Kind)
}
