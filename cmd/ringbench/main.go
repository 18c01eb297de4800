// File: cmd/ringbench/main.go
// License: Apache-2.0
//
// ringbench pushes a fixed item count through each ring buffer policy with
// one producer and one consumer goroutine and reports throughput, making
// the cost of the three synchronization disciplines directly comparable.
//
// Configuration comes from an optional ringbench.yaml in the working
// directory and RINGBENCH_* environment variables, e.g.:
//
//	RINGBENCH_ITEMS=10000000 RINGBENCH_PRODUCER_CPU=2 RINGBENCH_CONSUMER_CPU=4 ringbench

package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hotring/ringkit/api"
	"github.com/hotring/ringkit/concurrency"
	"github.com/hotring/ringkit/spsc"
)

type config struct {
	policies    []string
	capacity    int
	items       int
	producerCPU int
	consumerCPU int
}

func loadConfig() (config, error) {
	v := viper.New()
	v.SetDefault("policies", []string{"mutex", "atomic", "lockfree"})
	v.SetDefault("capacity", 1024)
	v.SetDefault("items", 5_000_000)
	v.SetDefault("producer_cpu", -1)
	v.SetDefault("consumer_cpu", -1)

	v.SetEnvPrefix("ringbench")
	v.AutomaticEnv()

	v.SetConfigName("ringbench")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config{}, err
		}
	}

	cfg := config{
		policies:    v.GetStringSlice("policies"),
		capacity:    v.GetInt("capacity"),
		items:       v.GetInt("items"),
		producerCPU: v.GetInt("producer_cpu"),
		consumerCPU: v.GetInt("consumer_cpu"),
	}
	if cfg.capacity < 1 {
		return config{}, fmt.Errorf("capacity must be at least 1, got %d", cfg.capacity)
	}
	if cfg.items < 1 {
		return config{}, fmt.Errorf("items must be at least 1, got %d", cfg.items)
	}
	return cfg, nil
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	logger.Info("starting ringbench",
		zap.Strings("policies", cfg.policies),
		zap.Int("capacity", cfg.capacity),
		zap.Int("items", cfg.items),
		zap.Int("gomaxprocs", runtime.GOMAXPROCS(0)),
	)

	type result struct {
		policy  string
		elapsed time.Duration
	}
	var results []result

	for _, name := range cfg.policies {
		ring, err := spsc.New[int](spsc.Policy(strings.ToLower(name)), cfg.capacity)
		if err != nil {
			logger.Fatal("cannot build ring", zap.String("policy", name), zap.Error(err))
		}

		elapsed, err := run(ring, cfg.items, cfg.producerCPU, cfg.consumerCPU)
		if err != nil {
			logger.Fatal("benchmark failed", zap.String("policy", name), zap.Error(err))
		}

		perOp := elapsed / time.Duration(cfg.items)
		logger.Info("policy result",
			zap.String("policy", name),
			zap.Duration("elapsed", elapsed),
			zap.Duration("ns_per_item", perOp),
			zap.Float64("mitems_per_sec", float64(cfg.items)/elapsed.Seconds()/1e6),
		)
		results = append(results, result{policy: name, elapsed: elapsed})
	}

	if len(results) > 1 {
		base := results[0].elapsed.Seconds()
		for _, r := range results[1:] {
			logger.Info("speedup vs "+results[0].policy,
				zap.String("policy", r.policy),
				zap.Float64("x", base/r.elapsed.Seconds()),
			)
		}
	}
}

// run drives one producer and one consumer over the ring and verifies the
// consumer sees 0..items-1 in order. Spin-retry with Gosched lives here, at
// the caller level; the ring itself never waits.
func run(ring api.Ring[int], items, producerCPU, consumerCPU int) (time.Duration, error) {
	errc := make(chan error, 1)
	done := make(chan struct{})

	start := time.Now()

	go func() {
		defer close(done)
		if consumerCPU >= 0 {
			if err := concurrency.Pin(consumerCPU); err == nil {
				defer concurrency.Unpin()
			}
		}
		for expect := 0; expect < items; expect++ {
			for {
				v, ok := ring.TryPop()
				if ok {
					if v != expect {
						errc <- fmt.Errorf("out of order: want %d, got %d", expect, v)
						return
					}
					break
				}
				runtime.Gosched()
			}
		}
	}()

	if producerCPU >= 0 {
		if err := concurrency.Pin(producerCPU); err == nil {
			defer concurrency.Unpin()
		}
	}
	// The done check keeps the producer from spinning on a full ring
	// forever if the consumer bails out early.
push:
	for i := 0; i < items; i++ {
		for !ring.TryPush(i) {
			select {
			case <-done:
				break push
			default:
				runtime.Gosched()
			}
		}
	}

	<-done
	select {
	case err := <-errc:
		return 0, err
	default:
	}
	return time.Since(start), nil
}
