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

package database

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

const startTimeKey = "metrics:start_time"

// GormMetricsPlugin 统计每一条 SQL 的耗时，按照表名和操作类型打点
type GormMetricsPlugin struct {
	vector *prometheus.SummaryVec
}

func NewGormMetricsPlugin(reg prometheus.Registerer) *GormMetricsPlugin {
	vector := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "showcase",
		Subsystem: "gorm",
		Name:      "statement_duration_seconds",
		Help:      "GORM statement duration in seconds",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, []string{"table", "op"})
	reg.MustRegister(vector)
	return &GormMetricsPlugin{vector: vector}
}

func (p *GormMetricsPlugin) Name() string {
	return "GormMetricsPlugin"
}

func (p *GormMetricsPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	if err := cb.Query().Before("gorm:query").Register("metrics:before_query", p.before); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("metrics:after_query", p.after("SELECT")); err != nil {
		return err
	}
	if err := cb.Create().Before("gorm:create").Register("metrics:before_create", p.before); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("metrics:after_create", p.after("INSERT")); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("metrics:before_update", p.before); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("metrics:after_update", p.after("UPDATE")); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("metrics:before_delete", p.before); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("metrics:after_delete", p.after("DELETE")); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("metrics:before_raw", p.before); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register("metrics:after_raw", p.after("RAW"))
}

func (p *GormMetricsPlugin) before(db *gorm.DB) {
	db.InstanceSet(startTimeKey, time.Now())
}

func (p *GormMetricsPlugin) after(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.InstanceGet(startTimeKey)
		if !ok {
			return
		}
		start, ok := val.(time.Time)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" && db.Statement.Schema != nil {
			table = db.Statement.Schema.Table
		}
		p.vector.WithLabelValues(table, op).Observe(time.Since(start).Seconds())
	}
}
