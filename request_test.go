package torch_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torchweb/torch"
)

func TestNewRequest(t *testing.T) {
	t.Parallel()

	t.Run("splits path and query", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/users/123?page=2&sort=name")
		require.Equal(t, "/users/123", r.Path)
		require.Equal(t, "page=2&sort=name", r.RawQuery())
		require.Equal(t, "2", r.Query("page"))
		require.Equal(t, "name", r.Query("sort"))
	})

	t.Run("empty target becomes root", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "")
		require.Equal(t, "/", r.Path)
	})

	t.Run("repeated query key keeps last value", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/search?q=first&q=second")
		require.Equal(t, "second", r.Query("q"))
	})

	t.Run("percent decoding", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/search?name=John%20Doe")
		require.Equal(t, "John Doe", r.Query("name"))
	})

	t.Run("malformed query surfaces through QueryParams", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/search?bad=%zz")
		_, err := r.QueryParams()
		require.Error(t, err)
	})

	t.Run("body and headers chain", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodPost, "/data").
			SetBody([]byte("payload")).
			SetHeader("Content-Type", "text/plain")
		require.Equal(t, []byte("payload"), r.Body())
		require.Equal(t, "text/plain", r.Header.Get("Content-Type"))
	})
}

func TestRequestExtensions(t *testing.T) {
	t.Parallel()

	type key struct{}

	r := torch.NewRequest(http.MethodGet, "/")
	require.Nil(t, r.Get(key{}))

	r.Set(key{}, "value")
	require.Equal(t, "value", r.Get(key{}))

	r.Set(key{}, "replaced")
	require.Equal(t, "replaced", r.Get(key{}))
}
