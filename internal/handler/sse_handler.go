package handler

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"
	"time"

	"chain-dashboard/internal/model"
	"chain-dashboard/internal/service"

	"github.com/rs/zerolog"
	"github.com/starfederation/datastar-go/datastar"
)

const defaultPushInterval = 15 * time.Second

var statusTemplate = template.Must(template.New("dashboardStatus").Parse(`
<div id="dashboard-status">
<span class="metric">{{.Customers}} customers</span>
<span class="metric">{{.Orders}} orders</span>
<span class="metric">{{printf "%.2f" .Revenue}} revenue</span>
<span class="updated">updated {{.Updated}}</span>
</div>`))

// SSEHandler pushes the dashboard summary as datastar signals.
type SSEHandler struct {
	dashboard service.DashboardService
	interval  time.Duration
	logger    zerolog.Logger
}

// NewSSEHandler creates a handler that pushes a fresh summary every interval.
func NewSSEHandler(dashboard service.DashboardService, interval time.Duration, logger zerolog.Logger) *SSEHandler {
	if interval <= 0 {
		interval = defaultPushInterval
	}
	return &SSEHandler{
		dashboard: dashboard,
		interval:  interval,
		logger:    logger.With().Str("handler", "sse").Logger(),
	}
}

// Dashboard handles GET /sse/dashboard. The stream stays open until the
// client disconnects.
func (h *SSEHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	// The server write timeout would otherwise cut the stream.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		h.logger.Debug().Err(err).Msg("write deadline not adjustable")
	}

	sse := datastar.NewSSE(w, r)
	ctx := r.Context()

	if err := h.push(sse, r); err != nil {
		return
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug().Msg("dashboard stream closed")
			return
		case <-ticker.C:
			if err := h.push(sse, r); err != nil {
				return
			}
			if f, ok := w.(http.Flusher); ok {
				f.Flush()
			}
		}
	}
}

func (h *SSEHandler) push(sse *datastar.ServerSentEventGenerator, r *http.Request) error {
	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		h.logger.Warn().Err(err).Msg("failed to compute dashboard summary")
		return err
	}

	signals, err := json.Marshal(map[string]any{"dashboard": summary})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to marshal dashboard signals")
		return err
	}
	if err := sse.PatchSignals(signals); err != nil {
		return err
	}

	html, err := renderStatus(summary, time.Now())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to render dashboard status")
		return err
	}
	return sse.PatchElements(html)
}

func renderStatus(summary *model.DashboardSummary, now time.Time) (string, error) {
	var buf strings.Builder
	err := statusTemplate.Execute(&buf, struct {
		Customers int
		Orders    int
		Revenue   float64
		Updated   string
	}{
		Customers: summary.UserStats.TotalUsers,
		Orders:    summary.OrderStats.TotalOrders,
		Revenue:   summary.OrderStats.TotalRevenue,
		Updated:   now.Format(time.TimeOnly),
	})
	return buf.String(), err
}
