package metrics

import (
	"cinema_admin/invoice"
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cinema_admin"

var (
	once sync.Once

	ticketRenderInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ticket_render_in_progress",
			Help:      "Number of ticket PDFs currently being rendered.",
		},
	)

	ticketRenderTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticket_render_total",
			Help:      "Count of ticket PDF renders by result.",
		},
		[]string{"result"},
	)

	ticketEmbedFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticket_qr_embed_failed_total",
			Help:      "Count of ticket pages printed with the QR placeholder.",
		},
	)

	ticketCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticket_pdf_cache_total",
			Help:      "Ticket PDF cache lookups by outcome.",
		},
		[]string{"outcome"},
	)

	showtimesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "showtimes_created_total",
			Help:      "Count of showtime records created through batch submission.",
		},
	)

	showtimesToday = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "showtimes_active_today",
			Help:      "Active showtimes starting on the current local day.",
		},
	)
)

// Register đăng ký metrics (gọi nhiều lần vẫn an toàn)
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			ticketRenderInProgress,
			ticketRenderTotal,
			ticketEmbedFailed,
			ticketCache,
			showtimesCreated,
			showtimesToday,
		)
	})
}

func IncCacheHit() {
	ticketCache.WithLabelValues("hit").Inc()
}

func IncCacheMiss() {
	ticketCache.WithLabelValues("miss").Inc()
}

func AddShowtimesCreated(n int) {
	showtimesCreated.Add(float64(n))
}

func SetShowtimesToday(n int64) {
	showtimesToday.Set(float64(n))
}

// RenderObserver đẩy trạng thái render vé ra prometheus
type RenderObserver struct{}

var _ invoice.Observer = RenderObserver{}

func (RenderObserver) RenderStarted() {
	ticketRenderInProgress.Inc()
}

func (RenderObserver) RenderFinished(err error) {
	ticketRenderInProgress.Dec()
	ticketRenderTotal.WithLabelValues(renderResult(err)).Inc()
}

func (RenderObserver) EmbedFailed(string, error) {
	ticketEmbedFailed.Inc()
}

func renderResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, invoice.ErrNoTickets):
		return "no_tickets"
	default:
		return "error"
	}
}
