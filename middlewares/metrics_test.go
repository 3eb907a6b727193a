package middlewares_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/torchweb/torch"
	"github.com/torchweb/torch/middlewares"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	t.Run("counts requests by method and status", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		mw := middlewares.Metrics(middlewares.WithMetricsRegisterer(reg))

		run(mw, getReq("/a"))
		run(mw, getReq("/b"))

		notFound := func(ctx context.Context, r *torch.Request) *torch.Response {
			return torch.Text(http.StatusNotFound, "nope")
		}
		mw(notFound)(context.Background(), getReq("/missing"))

		families, err := reg.Gather()
		require.NoError(t, err)

		counts := map[string]float64{}
		for _, fam := range families {
			if fam.GetName() != "torch_requests_total" {
				continue
			}
			for _, m := range fam.GetMetric() {
				var status string
				for _, l := range m.GetLabel() {
					if l.GetName() == "status" {
						status = l.GetValue()
					}
				}
				counts[status] = m.GetCounter().GetValue()
			}
		}
		require.Equal(t, 2.0, counts["200"])
		require.Equal(t, 1.0, counts["404"])
	})

	t.Run("duration histogram observes", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		mw := middlewares.Metrics(
			middlewares.WithMetricsRegisterer(reg),
			middlewares.WithMetricsNamespace("app"),
		)
		run(mw, getReq("/"))

		families, err := reg.Gather()
		require.NoError(t, err)

		var sampleCount uint64
		for _, fam := range families {
			if fam.GetName() == "app_request_duration_seconds" {
				sampleCount = fam.GetMetric()[0].GetHistogram().GetSampleCount()
			}
		}
		require.EqualValues(t, 1, sampleCount)
	})
}
