// Package metrics records per-invocation counters and exports them in the
// node_exporter textfile format. No listener is opened.
package metrics

import (
	"time"

	"github.com/org/pw/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns a private registry for one run of the tool.
type Recorder struct {
	reg *prometheus.Registry

	storeRecords    *prometheus.GaugeVec
	genAttempts     prometheus.Counter
	genRejected     prometheus.Counter
	commandDuration *prometheus.HistogramVec
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		storeRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pw_store_records",
			Help: "Entries in the password file by status.",
		}, []string{"status"}),
		genAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pw_generate_attempts_total",
			Help: "Generator processes spawned.",
		}),
		genRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pw_generate_rejected_total",
			Help: "Generated passwords discarded for starting with punctuation.",
		}),
		commandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pw_command_duration_seconds",
			Help:    "Command run time in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
	}
	r.reg.MustRegister(r.storeRecords, r.genAttempts, r.genRejected, r.commandDuration)
	return r
}

// ObserveTally sets the store gauges.
func (r *Recorder) ObserveTally(t models.Tally) {
	r.storeRecords.WithLabelValues(models.Active.String()).Set(float64(t.Active))
	r.storeRecords.WithLabelValues(models.Inactive.String()).Set(float64(t.Inactive))
	r.storeRecords.WithLabelValues(models.PendingChange.String()).Set(float64(t.PendingChange))
}

// GenerateAttempt counts one spawned generator.
func (r *Recorder) GenerateAttempt() {
	r.genAttempts.Inc()
}

// GenerateRejected counts one discarded candidate.
func (r *Recorder) GenerateRejected() {
	r.genRejected.Inc()
}

// ObserveCommand records how long a command took.
func (r *Recorder) ObserveCommand(command string, d time.Duration) {
	r.commandDuration.WithLabelValues(command).Observe(d.Seconds())
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
