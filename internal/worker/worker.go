package worker

//go:generate mockgen -source=worker.go -destination=mocks/mock_worker.go -package=mocks

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"urlpro/internal/types"
)

type Expirer interface {
	ExpireStale(ctx context.Context) (int, error)
}

type QuotaResetter interface {
	ResetMonthlyQuotas(ctx context.Context) (int64, error)
}

type DigestSource interface {
	WeeklyDigests(ctx context.Context) ([]types.WeeklyDigest, error)
}

// ReportSender delivers one digest over a single channel.
type ReportSender interface {
	SendWeeklyReport(ctx context.Context, d types.WeeklyDigest) error
}

// Job is one periodic unit of work. Errors are logged and the schedule continues.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Pool runs jobs on their own tickers until the context is cancelled.
type Pool struct {
	jobs []Job
	wg   sync.WaitGroup
}

func NewPool(jobs ...Job) *Pool {
	return &Pool{jobs: jobs}
}

func (p *Pool) Start(ctx context.Context) {
	for _, job := range p.jobs {
		if job.Interval <= 0 {
			logrus.WithField("worker", job.Name).Warn("worker disabled: non-positive interval")
			continue
		}
		p.wg.Add(1)
		go func(job Job) {
			defer p.wg.Done()
			run(ctx, job)
		}(job)
	}
}

// Wait blocks until every started job has observed cancellation.
func (p *Pool) Wait() {
	p.wg.Wait()
}

func run(ctx context.Context, job Job) {
	log := logrus.WithField("worker", job.Name)
	log.WithField("interval", job.Interval.String()).Info("worker started")

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("worker stopped")
			return
		case <-ticker.C:
			if err := job.Run(ctx); err != nil {
				log.WithError(err).Error("worker run failed")
			}
		}
	}
}

func ExpiryJob(e Expirer, interval time.Duration) Job {
	return Job{
		Name:     "expiry",
		Interval: interval,
		Run: func(ctx context.Context) error {
			n, err := e.ExpireStale(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				logrus.WithField("count", n).Info("deactivated expired links")
			}
			return nil
		},
	}
}

func QuotaJob(q QuotaResetter, interval time.Duration) Job {
	return Job{
		Name:     "quota_reset",
		Interval: interval,
		Run: func(ctx context.Context) error {
			n, err := q.ResetMonthlyQuotas(ctx)
			if err != nil {
				return err
			}
			if n > 0 {
				logrus.WithField("count", n).Info("reset api call quotas")
			}
			return nil
		},
	}
}

// ReportJob sends every digest through every sender. A failed delivery
// does not stop the rest.
func ReportJob(src DigestSource, senders []ReportSender, interval time.Duration) Job {
	return Job{
		Name:     "weekly_report",
		Interval: interval,
		Run: func(ctx context.Context) error {
			digests, err := src.WeeklyDigests(ctx)
			if err != nil {
				return err
			}
			for _, d := range digests {
				for _, s := range senders {
					if err := s.SendWeeklyReport(ctx, d); err != nil {
						logrus.WithError(err).WithField("user_id", d.UserID).Warn("weekly report delivery failed")
					}
				}
			}
			logrus.WithField("users", len(digests)).Info("weekly reports processed")
			return nil
		},
	}
}
