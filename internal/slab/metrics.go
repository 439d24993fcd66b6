package slab

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Arena instrumentation. Instruments record per arena creation and per chunk
// growth, never per allocation, so the allocation hot path stays branch-free.
var (
	metricsOnce sync.Once

	arenasCreated metric.Int64Counter
	chunkBytes    metric.Int64Counter
	chunksGrown   metric.Int64Counter
)

func initMetrics() {
	meter := otel.Meter("github.com/bearlytools/talon/internal/slab")

	var err error
	arenasCreated, err = meter.Int64Counter(
		"talon.arena.created",
		metric.WithDescription("Total number of arenas created"),
	)
	if err != nil {
		otel.Handle(err)
	}
	chunksGrown, err = meter.Int64Counter(
		"talon.arena.chunks",
		metric.WithDescription("Total number of chunks added to arenas"),
	)
	if err != nil {
		otel.Handle(err)
	}
	chunkBytes, err = meter.Int64Counter(
		"talon.arena.chunk_bytes",
		metric.WithDescription("Total bytes of chunk memory reserved by arenas"),
		metric.WithUnit("By"),
	)
	if err != nil {
		otel.Handle(err)
	}
}

func arenaCreated() {
	metricsOnce.Do(initMetrics)
	if arenasCreated != nil {
		arenasCreated.Add(context.Background(), 1)
	}
}

func arenaGrew(size int) {
	metricsOnce.Do(initMetrics)
	if chunksGrown != nil {
		chunksGrown.Add(context.Background(), 1)
	}
	if chunkBytes != nil {
		chunkBytes.Add(context.Background(), int64(size))
	}
}
