// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 按照路由统计请求耗时和次数。
// 业务错误码不体现在 status_code 里面，ginx 对业务错误也返回 200
type MetricsBuilder struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

func NewMetricsBuilder(reg prometheus.Registerer) *MetricsBuilder {
	labels := []string{"method", "path", "status_code"}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "showcase",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, labels)
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "showcase",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests",
	}, labels)
	reg.MustRegister(duration, requests)
	return &MetricsBuilder{
		duration: duration,
		requests: requests,
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		// 没有匹配到路由的统一记成 unknown
		path := ctx.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		b.duration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
		b.requests.WithLabelValues(ctx.Request.Method, path, status).Inc()
	}
}
