package network

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/repair-minder-sync/internal/config"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/internal/utils"
)

// Prober periodically checks that the API host answers HTTP and feeds the
// result into a [Monitor]. Any HTTP response, whatever its status, counts
// as reachable; only transport failures count as offline.
type Prober struct {
	client   *utils.HTTPClient
	monitor  *Monitor
	path     string
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewProber builds a prober for the configured API address. The address is
// normalised the same way the request transport does it.
func NewProber(cfg config.ClientAdapter, monitor *Monitor, logger *logger.Logger) (*Prober, error) {
	baseURL, err := utils.NormalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid probe address: %w", err)
	}

	path := cfg.ProbePath
	if path == "" {
		path = config.DefaultProbePath
	}
	interval := cfg.ProbeInterval
	if interval <= 0 {
		interval = config.DefaultProbeInterval
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 || timeout > interval {
		timeout = interval
	}

	return &Prober{
		client: utils.NewHTTPClient(utils.HTTPClientOptions{
			BaseURL:   baseURL,
			Timeout:   timeout,
			UserAgent: cfg.UserAgent,
		}),
		monitor:  monitor,
		path:     path,
		interval: interval,
		logger:   logger.WithComponent("network"),
	}, nil
}

// Probe performs a single check and updates the monitor.
func (p *Prober) Probe(ctx context.Context) bool {
	_, err := p.client.R().SetContext(ctx).Head(p.path)
	reachable := err == nil

	if ctx.Err() != nil {
		// shutting down, not a network verdict
		return p.monitor.IsReachable()
	}

	if p.monitor.Set(reachable) {
		ev := p.logger.Info().Bool("reachable", reachable)
		if err != nil {
			ev = ev.Err(err)
		}
		ev.Msg("network reachability changed")
	}
	return reachable
}

// Run implements workers.Worker. It probes once immediately, then every
// interval until ctx is cancelled or Stop is called.
func (p *Prober) Run(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		p.Probe(jobCtx)

		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.Probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the probe loop and waits for it to exit.
func (p *Prober) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
