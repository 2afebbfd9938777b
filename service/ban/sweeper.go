package ban

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/QuangTung97/customer-ban/config"
	"github.com/QuangTung97/customer-ban/pkg/otellib"
	"github.com/QuangTung97/customer-ban/repository"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Locker is a cluster-wide lock, implemented by cacheclient.Client and redislock.Locker
type Locker interface {
	// TryLock does not wait, acquired is false when another process holds the lock
	TryLock(ctx context.Context, key string) (release func(), acquired bool, err error)
}

type expirer interface {
	ExpireBan(ctx context.Context, customerID string) (ExpireResult, error)
}

// SweepResult ...
type SweepResult struct {
	// Skipped when another instance is sweeping
	Skipped bool
	Expired int
	Failed  int
}

// Sweeper periodically expires due bans, at most one instance runs cluster-wide
type Sweeper struct {
	provider repository.Provider
	banRepo  repository.Ban
	expirer  expirer
	locker   Locker
	conf     config.SweepConfig
	now      func() time.Time
	logger   *zap.Logger

	scheduler gocron.Scheduler
}

// NewSweeper ...
func NewSweeper(
	provider repository.Provider, banRepo repository.Ban,
	coordinator *Coordinator, locker Locker,
	conf config.SweepConfig, logger *zap.Logger,
) *Sweeper {
	return newSweeper(provider, banRepo, coordinator, locker, conf, coordinator.opts.now, logger)
}

func newSweeper(
	provider repository.Provider, banRepo repository.Ban,
	exp expirer, locker Locker,
	conf config.SweepConfig, now func() time.Time, logger *zap.Logger,
) *Sweeper {
	if conf.BatchSize <= 0 {
		conf.BatchSize = 100
	}
	if conf.Parallelism <= 0 {
		conf.Parallelism = 1
	}
	if conf.LockKey == "" {
		conf.LockKey = "customer-ban:sweep"
	}
	return &Sweeper{
		provider: provider,
		banRepo:  banRepo,
		expirer:  exp,
		locker:   locker,
		conf:     conf,
		now:      now,
		logger:   logger,
	}
}

// RunOnce pages through due bans and expires them, bounded by the configured timeout
func (s *Sweeper) RunOnce(ctx context.Context) (SweepResult, error) {
	if timeout := s.conf.Timeout(); timeout > 0 {
		var cancel func()
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	ctx = otellib.ToContext(ctx, s.logger)

	release, acquired, err := s.locker.TryLock(ctx, s.conf.LockKey)
	if err != nil {
		sweepRunTotal.WithLabelValues("error").Inc()
		return SweepResult{}, err
	}
	if !acquired {
		sweepRunTotal.WithLabelValues("skipped").Inc()
		return SweepResult{Skipped: true}, nil
	}
	defer release()

	start := time.Now()
	defer func() {
		sweepDuration.Observe(time.Since(start).Seconds())
	}()

	var expired int64
	var failed int64

	afterID := int64(0)
	for {
		bans, err := s.banRepo.FindDueBans(s.provider.Readonly(ctx), s.now(), afterID, s.conf.BatchSize)
		if err != nil {
			sweepRunTotal.WithLabelValues("error").Inc()
			return SweepResult{Expired: int(expired), Failed: int(failed)}, err
		}
		if len(bans) == 0 {
			break
		}

		var g errgroup.Group
		g.SetLimit(s.conf.Parallelism)
		for _, b := range bans {
			customerID := b.CustomerID
			g.Go(func() error {
				customerCtx := otellib.With(ctx, zap.String("customer.id", customerID))
				result, err := s.expirer.ExpireBan(customerCtx, customerID)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					otellib.Extract(customerCtx).Error("sweep expire ban", zap.Error(err))
					return nil
				}
				if result.Expired {
					atomic.AddInt64(&expired, 1)
				}
				return nil
			})
		}
		_ = g.Wait()

		if err := ctx.Err(); err != nil {
			sweepRunTotal.WithLabelValues("timeout").Inc()
			return SweepResult{Expired: int(expired), Failed: int(failed)}, err
		}

		afterID = bans[len(bans)-1].ID
		if len(bans) < s.conf.BatchSize {
			break
		}
	}

	sweepRunTotal.WithLabelValues("ok").Inc()
	sweepExpiredTotal.Add(float64(expired))

	result := SweepResult{Expired: int(expired), Failed: int(failed)}
	if result.Expired > 0 || result.Failed > 0 {
		s.logger.Info("sweep finished", zap.Int("expired", result.Expired), zap.Int("failed", result.Failed))
	}
	return result, nil
}

// Start schedules RunOnce every configured interval, a run still in progress delays the next one
func (s *Sweeper) Start() error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.conf.Interval()),
		gocron.NewTask(func() {
			if _, err := s.RunOnce(context.Background()); err != nil {
				s.logger.Error("sweep failed", zap.Error(err))
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("ban-expiry-sweep"),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	scheduler.Start()
	s.scheduler = scheduler

	s.logger.Info("ban expiry sweep scheduled", zap.Duration("interval", s.conf.Interval()))
	return nil
}

// Shutdown waits for the running sweep
func (s *Sweeper) Shutdown() error {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Shutdown()
}
