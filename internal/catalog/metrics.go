package catalog

import "github.com/prometheus/client_golang/prometheus"

// RegisterMetrics exposes catalog size gauges that are computed on scrape.
func RegisterMetrics(reg prometheus.Registerer, r Reader) {
	reg.MustRegister(
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "bookshop_books",
				Help: "Books currently in the catalog",
			},
			func() float64 {
				total, _ := r.Stats()
				return float64(total)
			},
		),
		prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "bookshop_books_owned",
				Help: "Books purchased and not returned",
			},
			func() float64 {
				_, owned := r.Stats()
				return float64(owned)
			},
		),
	)
}
