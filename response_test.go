package torch_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/torchweb/torch"
)

func TestResponseBuilders(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		resp := torch.Text(http.StatusTeapot, "short and stout")
		require.Equal(t, http.StatusTeapot, resp.StatusCode)
		require.Equal(t, "short and stout", resp.BodyString())
		require.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		resp := torch.JSON(http.StatusCreated, map[string]int{"id": 7})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		require.JSONEq(t, `{"id":7}`, resp.BodyString())
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	})

	t.Run("json encode failure degrades to 500", func(t *testing.T) {
		t.Parallel()

		resp := torch.JSON(http.StatusOK, make(chan int))
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("header replace and append", func(t *testing.T) {
		t.Parallel()

		resp := torch.OK().
			SetHeader("X-One", "a").
			SetHeader("X-One", "b").
			AddHeader("X-Many", "1").
			AddHeader("X-Many", "2")
		require.Equal(t, []string{"b"}, resp.Header.Values("X-One"))
		require.Equal(t, []string{"1", "2"}, resp.Header.Values("X-Many"))
	})
}

func TestResponseSetCookie(t *testing.T) {
	t.Parallel()

	t.Run("name and value only", func(t *testing.T) {
		t.Parallel()

		resp := torch.OK().SetCookie(torch.Cookie{Name: "theme", Value: "dark"})
		require.Equal(t, "theme=dark", resp.Header.Get("Set-Cookie"))
	})

	t.Run("full attribute set", func(t *testing.T) {
		t.Parallel()

		expires := time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)
		resp := torch.OK().SetCookie(torch.Cookie{
			Name:     "session_id",
			Value:    "abc 123",
			Path:     "/",
			Domain:   "example.com",
			Expires:  expires,
			MaxAge:   3600,
			Secure:   true,
			HTTPOnly: true,
			SameSite: "Lax",
		})
		got := resp.Header.Get("Set-Cookie")
		require.Contains(t, got, "session_id=abc+123")
		require.Contains(t, got, "; Path=/")
		require.Contains(t, got, "; Domain=example.com")
		require.Contains(t, got, "; Expires=Fri, 02 Jan 2026 15:04:05 UTC")
		require.Contains(t, got, "; Max-Age=3600")
		require.Contains(t, got, "; Secure")
		require.Contains(t, got, "; HttpOnly")
		require.Contains(t, got, "; SameSite=Lax")
	})

	t.Run("multiple cookies accumulate", func(t *testing.T) {
		t.Parallel()

		resp := torch.OK().
			SetCookie(torch.Cookie{Name: "a", Value: "1"}).
			SetCookie(torch.Cookie{Name: "b", Value: "2"})
		require.Len(t, resp.Header.Values("Set-Cookie"), 2)
	})
}
