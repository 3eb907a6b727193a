package middlewares_test

import (
	"context"
	"net/http"

	"github.com/torchweb/torch"
)

// okHandler is the terminal handler used by most middleware tests.
func okHandler(ctx context.Context, r *torch.Request) *torch.Response {
	return torch.Text(http.StatusOK, "ok")
}

// run wraps okHandler with mw and dispatches req through it.
func run(mw torch.Middleware, req *torch.Request) *torch.Response {
	return mw(okHandler)(context.Background(), req)
}

func getReq(path string) *torch.Request {
	return torch.NewRequest(http.MethodGet, path)
}
