package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"tripboard/internal/dashboard"
)

// Recorder receives the figures of each computed dashboard view.
type Recorder interface {
	RecordSummary(st dashboard.Stats)
	RecordView(view string)
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordSummary(dashboard.Stats) {}
func (Nop) RecordView(string)             {}

// PromRecorder exposes the latest summary as gauges and counts view computations.
type PromRecorder struct {
	trips         prometheus.Gauge
	active        prometheus.Gauge
	travelers     prometheus.Gauge
	upcoming      prometheus.Gauge
	pending       prometheus.Gauge
	urgentPending prometheus.Gauge
	views         *prometheus.CounterVec
}

// NewPromRecorder registers dashboard metrics on the default registerer.
func NewPromRecorder() (*PromRecorder, error) {
	return NewPromRecorderWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromRecorderWithRegistry registers metrics on reg. A nil registerer
// defaults to the global Prometheus registerer. Already registered collectors
// are reused.
func NewPromRecorderWithRegistry(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gauge := func(name, help string) (prometheus.Gauge, error) {
		g := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
		if err := reg.Register(g); err != nil {
			if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
				return are.ExistingCollector.(prometheus.Gauge), nil
			}
			return nil, err
		}
		return g, nil
	}

	r := &PromRecorder{}
	var err error
	if r.trips, err = gauge("tripboard_trips", "Number of group trips in the last summary"); err != nil {
		return nil, err
	}
	if r.active, err = gauge("tripboard_active_trips", "Trips in progress at the last summary"); err != nil {
		return nil, err
	}
	if r.travelers, err = gauge("tripboard_travelers", "Total travelers across all trips"); err != nil {
		return nil, err
	}
	if r.upcoming, err = gauge("tripboard_upcoming_departures", "Trips departing after today"); err != nil {
		return nil, err
	}
	if r.pending, err = gauge("tripboard_pending_contracts", "Trips without a signed contract"); err != nil {
		return nil, err
	}
	if r.urgentPending, err = gauge("tripboard_urgent_pending_contracts", "Unsigned trips departing within the urgency window"); err != nil {
		return nil, err
	}

	views := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tripboard_dashboard_views_total",
		Help: "Dashboard view computations by view",
	}, []string{"view"})
	if err := reg.Register(views); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			views = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	r.views = views
	return r, nil
}

// RecordSummary sets the gauges to the figures of st.
func (r *PromRecorder) RecordSummary(st dashboard.Stats) {
	r.trips.Set(float64(st.TotalTrips))
	r.active.Set(float64(len(st.ActiveTrips)))
	r.travelers.Set(float64(st.TotalTravelers))
	r.upcoming.Set(float64(len(st.UpcomingDepartures)))
	r.pending.Set(float64(len(st.PendingContracts)))
	r.urgentPending.Set(float64(len(st.UrgentPendingContracts)))
}

// RecordView counts one computation of view ("summary", "calendar", ...).
func (r *PromRecorder) RecordView(view string) {
	r.views.WithLabelValues(view).Inc()
}
