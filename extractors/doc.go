// Package extractors provides the typed request extractors used by the
// torch dispatch adapters.
//
// Parts extractors (Path, Query, Headers, Cookies, State and friends) read
// request metadata and compose freely on one handler. Body extractors
// (JSON, Form) consume the buffered body; a handler takes at most one.
// Every extractor is a plain struct populated in place, so handlers
// receive values, not pointers:
//
//	app.GET("/users/:id", torch.Handler1(func(ctx context.Context, id extractors.Path[uint32]) string {
//	    return fmt.Sprintf("User %d", id.Value)
//	}))
//
// Extraction failures carry a *torch.Error whose kind fixes the response
// status: malformed input is a 400-class failure, an oversized body is
// 413, a content-type mismatch is 415, and missing application state is a
// 500 because it is a wiring bug rather than a client error.
package extractors
