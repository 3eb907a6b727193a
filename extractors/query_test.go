package extractors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torchweb/torch"
	"github.com/torchweb/torch/extractors"
)

func TestQueryMap(t *testing.T) {
	t.Parallel()

	t.Run("all parameters", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/search?q=torch&page=2")
		var q extractors.QueryMap
		require.NoError(t, q.ExtractParts(r))
		require.Equal(t, map[string]string{"q": "torch", "page": "2"}, q.Values)
	})

	t.Run("repeated key keeps last", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/?a=1&a=2&a=3")
		var q extractors.QueryMap
		require.NoError(t, q.ExtractParts(r))
		require.Equal(t, "3", q.Values["a"])
	})

	t.Run("empty query yields empty map", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/plain")
		var q extractors.QueryMap
		require.NoError(t, q.ExtractParts(r))
		require.Empty(t, q.Values)
	})

	t.Run("malformed escape is invalid query", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/?bad=%zz")
		var q extractors.QueryMap
		err := q.ExtractParts(r)

		var te *torch.Error
		require.True(t, errors.As(err, &te))
		require.Equal(t, torch.KindInvalidQuery, te.Kind)
	})
}

func TestQueryPairs(t *testing.T) {
	t.Parallel()

	r := torch.NewRequest(http.MethodGet, "/?a=1&b=2&a=3")
	var q extractors.QueryPairs
	require.NoError(t, q.ExtractParts(r))
	require.Equal(t, [][2]string{{"a", "1"}, {"b", "2"}, {"a", "3"}}, q.Values)
}

func TestQueryStruct(t *testing.T) {
	t.Parallel()

	type listParams struct {
		Search string   `query:"q"`
		Page   int      `query:"page"`
		Limit  *int     `query:"limit"`
		Tags   []string `query:"tags"`
		All    bool     `query:"all"`
		Ratio  float64  `query:"ratio"`
	}

	t.Run("scalar inference", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/?q=torch&page=3&limit=50&ratio=0.5&all")
		var q extractors.Query[listParams]
		require.NoError(t, q.ExtractParts(r))
		require.Equal(t, "torch", q.Value.Search)
		require.Equal(t, 3, q.Value.Page)
		require.NotNil(t, q.Value.Limit)
		require.Equal(t, 50, *q.Value.Limit)
		require.Equal(t, 0.5, q.Value.Ratio)
		require.True(t, q.Value.All, "bare key should read as a true flag")
	})

	t.Run("comma separated list", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/?tags=go,web, http")
		var q extractors.Query[listParams]
		require.NoError(t, q.ExtractParts(r))
		require.Equal(t, []string{"go", "web", "http"}, q.Value.Tags)
	})

	t.Run("repeated keys build a list", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/?tags=go&tags=web")
		var q extractors.Query[listParams]
		require.NoError(t, q.ExtractParts(r))
		require.Equal(t, []string{"go", "web"}, q.Value.Tags)
	})

	t.Run("missing fields keep zero values", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/?q=only")
		var q extractors.Query[listParams]
		require.NoError(t, q.ExtractParts(r))
		require.Equal(t, "only", q.Value.Search)
		require.Zero(t, q.Value.Page)
		require.Nil(t, q.Value.Limit)
		require.False(t, q.Value.All)
	})

	t.Run("bad number is invalid query", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/?page=many")
		var q extractors.Query[listParams]
		err := q.ExtractParts(r)

		var te *torch.Error
		require.True(t, errors.As(err, &te))
		require.Equal(t, torch.KindInvalidQuery, te.Kind)
		require.Equal(t, http.StatusBadRequest, te.Status())
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		t.Parallel()

		r := torch.NewRequest(http.MethodGet, "/?q=x&unrelated=y")
		var q extractors.Query[listParams]
		require.NoError(t, q.ExtractParts(r))
		require.Equal(t, "x", q.Value.Search)
	})

	t.Run("field name fallback is case insensitive", func(t *testing.T) {
		t.Parallel()

		type params struct {
			Verbose bool
		}
		r := torch.NewRequest(http.MethodGet, "/?verbose=true")
		var q extractors.Query[params]
		require.NoError(t, q.ExtractParts(r))
		require.True(t, q.Value.Verbose)
	})
}
