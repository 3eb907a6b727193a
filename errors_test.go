package torch_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/torchweb/torch"
)

func TestErrorStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *torch.Error
		want int
	}{
		{"missing path param", torch.ErrMissingPathParam("none bound"), http.StatusBadRequest},
		{"invalid path param", torch.ErrInvalidPathParam("not a number"), http.StatusBadRequest},
		{"invalid query", torch.ErrInvalidQuery("bad escape"), http.StatusBadRequest},
		{"invalid json", torch.ErrInvalidJSON("truncated"), http.StatusBadRequest},
		{"invalid form", torch.ErrInvalidForm("bad pair"), http.StatusBadRequest},
		{"missing header", torch.ErrMissingHeader("no auth"), http.StatusBadRequest},
		{"invalid header", torch.ErrInvalidHeader("bad value"), http.StatusBadRequest},
		{"invalid cookie", torch.ErrInvalidCookie("bad escape"), http.StatusBadRequest},
		{"missing state", torch.ErrMissingState("not registered"), http.StatusInternalServerError},
		{"content too large", torch.ErrContentTooLarge("2MB"), http.StatusRequestEntityTooLarge},
		{"unsupported media", torch.ErrUnsupportedMedia("text/plain"), http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, tt.err.Status())
			require.Equal(t, tt.want, tt.err.Response().StatusCode)
		})
	}
}

func TestErrorRendering(t *testing.T) {
	t.Parallel()

	t.Run("message includes category and detail", func(t *testing.T) {
		t.Parallel()

		err := torch.ErrInvalidPathParam("failed to parse parameter %q as %s", "id", "uint32")
		require.Equal(t, `Invalid path parameter: failed to parse parameter "id" as uint32`, err.Error())
		require.Equal(t, err.Error(), err.Response().BodyString())
	})

	t.Run("wrapped cause unwraps", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("strconv failure")
		err := torch.ErrInvalidQuery("bad page").Wrap(cause)
		require.ErrorIs(t, err, cause)

		var te *torch.Error
		require.ErrorAs(t, error(err), &te)
		require.Equal(t, torch.KindInvalidQuery, te.Kind)
	})
}
