package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// CouponExpirer is the subset of application functionality the sweeper
// needs.
type CouponExpirer interface {
	ExpireCoupons(ctx context.Context) (int64, error)
}

// CouponSweeper periodically clears the active flag on coupons past expiry
// so admin listings reflect reality. Checkout never depends on the sweep:
// coupon lookups always check expiry themselves.
type CouponSweeper struct {
	expirer  CouponExpirer
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCouponSweeper constructs the background sweeper.
func NewCouponSweeper(expirer CouponExpirer, interval time.Duration, logger *slog.Logger) *CouponSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CouponSweeper{expirer: expirer, interval: interval, logger: logger}
}

// Start launches background sweeping.
func (s *CouponSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (s *CouponSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *CouponSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *CouponSweeper) sweep(ctx context.Context) {
	expired, err := s.expirer.ExpireCoupons(ctx)
	if err != nil {
		s.logger.Error("coupon expiry sweep failed", slog.String("error", err.Error()))
		return
	}
	if expired > 0 {
		s.logger.Info("deactivated expired coupons", slog.Int64("count", expired))
	}
}
