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

package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/showcase/internal/pkg/mqx"

// TraceMQ 给发送和消费消息打点，其余方法直接委托
type TraceMQ struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMQ(q mq.MQ) *TraceMQ {
	return NewTraceMQWithProvider(q, otel.GetTracerProvider())
}

func NewTraceMQWithProvider(q mq.MQ, tp trace.TracerProvider) *TraceMQ {
	return &TraceMQ{MQ: q, tracer: tp.Tracer(instrumentationName)}
}

func (t *TraceMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &traceProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

func (t *TraceMQ) Consumer(topic, groupID string) (mq.Consumer, error) {
	c, err := t.MQ.Consumer(topic, groupID)
	if err != nil {
		return nil, err
	}
	return &traceConsumer{Consumer: c, topic: topic, groupID: groupID, tracer: t.tracer}, nil
}

type traceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *traceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, t.topic+" send", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(messageAttributes(t.topic, m)...)
	res, err := t.Producer.Produce(ctx, m)
	endSpan(span, err)
	return res, err
}

func (t *traceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, t.topic+" send", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	span.SetAttributes(messageAttributes(t.topic, m)...)
	span.SetAttributes(attribute.Int("messaging.destination.partition.id", partition))
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	endSpan(span, err)
	return res, err
}

type traceConsumer struct {
	mq.Consumer
	topic   string
	groupID string
	tracer  trace.Tracer
}

func (t *traceConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	msg, err := t.Consumer.Consume(ctx)
	// 没拿到消息就不打点，阻塞等待的时间没有意义
	if msg == nil {
		return msg, err
	}
	_, span := t.tracer.Start(ctx, t.topic+" receive", trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()
	span.SetAttributes(messageAttributes(t.topic, msg)...)
	span.SetAttributes(attribute.String("messaging.consumer.group.name", t.groupID))
	endSpan(span, err)
	return msg, err
}

func messageAttributes(topic string, m *mq.Message) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "mq-api"),
		attribute.String("messaging.destination.name", topic),
	}
	if m != nil {
		attrs = append(attrs,
			attribute.String("messaging.message.key", string(m.Key)),
			attribute.Int("messaging.message.body.size", len(m.Value)))
	}
	return attrs
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
