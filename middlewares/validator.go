package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/torchweb/torch"
)

// Substring blacklists applied to query parameters, path parameters, and
// textual bodies. This is a blunt heuristic, not a security boundary: it
// will reject legitimate input containing these substrings and cannot
// catch obfuscated attacks. Proper defense lives in parameterized queries
// and output escaping.
var (
	sqlPatterns = []string{
		"union", "select", "insert", "update", "delete", "drop", "create", "alter",
		"exec", "execute", "sp_", "xp_", "--", "/*", "*/", ";",
	}
	xssPatterns = []string{
		"<script", "</script>", "javascript:", "onload=", "onerror=", "onclick=",
		"onmouseover=", "onfocus=", "onblur=", "onchange=", "onsubmit=",
	}
)

// ValidatorConfig configures the input validation middleware.
type ValidatorConfig struct {
	RejectMarkup bool // Also reject any input bluemonday's strict policy would alter
	SkipBody     bool // Only check query and path parameters
}

// ValidatorOption configures ValidatorConfig.
type ValidatorOption func(*ValidatorConfig)

// WithMarkupRejection additionally rejects input containing any HTML
// markup, as judged by bluemonday's strict policy.
func WithMarkupRejection() ValidatorOption {
	return func(cfg *ValidatorConfig) {
		cfg.RejectMarkup = true
	}
}

// WithValidatorSkipBody limits validation to query and path parameters.
func WithValidatorSkipBody() ValidatorOption {
	return func(cfg *ValidatorConfig) {
		cfg.SkipBody = true
	}
}

// InputValidator returns middleware that rejects requests containing
// common injection substrings (SQL keywords, script fragments, path
// traversal sequences, null bytes) in query parameters, path parameters,
// or a UTF-8 body. Offending requests get a 400 before any handler runs.
func InputValidator(opts ...ValidatorOption) torch.Middleware {
	cfg := &ValidatorConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var policy *bluemonday.Policy
	if cfg.RejectMarkup {
		policy = bluemonday.StrictPolicy()
	}

	isSafe := func(input string) bool {
		lower := strings.ToLower(input)
		for _, p := range sqlPatterns {
			if strings.Contains(lower, p) {
				return false
			}
		}
		for _, p := range xssPatterns {
			if strings.Contains(lower, p) {
				return false
			}
		}
		if strings.Contains(input, "../") || strings.Contains(input, "..\\") {
			return false
		}
		if strings.ContainsRune(input, '\x00') {
			return false
		}
		if policy != nil && policy.Sanitize(input) != input {
			return false
		}
		return true
	}

	validate := func(r *torch.Request) error {
		params, _ := r.QueryParams()
		for key, value := range params {
			if !isSafe(key) || !isSafe(value) {
				return fmt.Errorf("invalid query parameter: %s", key)
			}
		}
		for key, value := range r.Params() {
			if !isSafe(key) || !isSafe(value) {
				return fmt.Errorf("invalid path parameter: %s", key)
			}
		}
		if !cfg.SkipBody {
			if body := r.Body(); len(body) > 0 && utf8.Valid(body) {
				if !isSafe(string(body)) {
					return fmt.Errorf("invalid request body content")
				}
			}
		}
		return nil
	}

	return func(next torch.HandlerFunc) torch.HandlerFunc {
		return func(ctx context.Context, r *torch.Request) *torch.Response {
			if err := validate(r); err != nil {
				return torch.Text(http.StatusBadRequest, "Input validation failed: "+err.Error())
			}
			return next(ctx, r)
		}
	}
}
