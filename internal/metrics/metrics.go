// Package metrics counts frames decoded by cmd/quicframedump, exported
// as a Prometheus counter labelled by frame category.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "quicframedump"

var framesDecoded = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "frames_decoded_total",
		Help:      "Frames decoded, by category.",
	},
	[]string{"category"},
)

// NewRegistry returns a registry with this package's collectors
// registered.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(framesDecoded)
	return reg
}

// Observe records n frames decoded in the given category
// ("regular", "ack", "tls").
func Observe(category string, n int) {
	if n == 0 {
		return
	}
	framesDecoded.WithLabelValues(category).Add(float64(n))
}

// WriteText writes the current metric values in the Prometheus text
// exposition format to w.
func WriteText(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, f := range families {
		if err := enc.Encode(f); err != nil {
			return err
		}
	}
	return nil
}
