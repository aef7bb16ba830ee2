/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import "github.com/prometheus/client_golang/prometheus"

var (
	MessagesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ipfix_decoder_messages_total",
		Help: "Total number of IPFIX messages decoded",
	})
	ErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ipfix_decoder_errors_total",
		Help: "Total number of fatal decode errors (bad header or truncated set split)",
	})
	DurationMicroseconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ipfix_decoder_duration_microseconds",
		Help:    "Duration of decoding a single message, in microseconds",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})
	DecodedSets = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ipfix_decoder_decoded_sets_total",
		Help: "Total number of decoded sets per kind",
	}, []string{"kind"})
	DecodedRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ipfix_decoder_decoded_records_total",
		Help: "Total number of decoded data records per set kind",
	}, []string{"kind"})
	DroppedRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ipfix_decoder_dropped_records_total",
		Help: "Total number of sets whose decoding ended in an error (unknown template or malformed content), per set kind",
	}, []string{"kind"})
)

func init() {
	initMetrics()
}

func initMetrics() {
	MessagesTotal.Add(0)
	ErrorsTotal.Add(0)
	DurationMicroseconds.Observe(0)
	for _, kind := range []string{KindTemplateSet.String(), KindOptionsTemplateSet.String(), KindDataSet.String()} {
		DecodedSets.WithLabelValues(kind).Add(0)
		DecodedRecords.WithLabelValues(kind).Add(0)
		DroppedRecords.WithLabelValues(kind).Add(0)
	}
}
