package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"paysecure-gateway/internal/core/domain"
	"paysecure-gateway/internal/core/ports"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
)

// Heuristic thresholds.
const (
	riskDynamicFloor      = 3000
	riskDynamicMultiplier = 5
	riskAverageWindow     = 30 * 24 * time.Hour
	riskVelocityWindow    = 10 * time.Minute
	riskVelocityThreshold = 5
	riskNewAccountAge     = 24 * time.Hour
	riskLowBalanceRatio   = 0.1
	riskFanInWindow       = 10 * time.Minute
	riskFanInThreshold    = 3
)

// RiskConfig sizes the heuristic worker pool and bounds each evaluation.
type RiskConfig struct {
	PoolSize int
	Timeout  time.Duration
}

type heuristicResult struct {
	index  int
	points int
	reason string
	err    error
}

type heuristic struct {
	name string
	run  func(ctx context.Context, c domain.RiskCandidate) (int, string, error)
}

// RiskService implements ports.RiskEngine. Heuristics run concurrently on a
// shared ants pool and each contributes points plus one reason.
type RiskService struct {
	history    ports.RiskRepository
	users      ports.UserRepository
	accounts   ports.AccountRepository
	metrics    ports.Metrics
	pool       *ants.Pool
	timeout    time.Duration
	heuristics []heuristic
	log        zerolog.Logger
}

// NewRiskService creates a new RiskService. Call Close to release the pool.
func NewRiskService(
	history ports.RiskRepository,
	users ports.UserRepository,
	accounts ports.AccountRepository,
	metrics ports.Metrics,
	cfg RiskConfig,
	log zerolog.Logger,
) (*RiskService, error) {
	pool, err := ants.NewPool(cfg.PoolSize, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("create risk worker pool: %w", err)
	}

	s := &RiskService{
		history:  history,
		users:    users,
		accounts: accounts,
		metrics:  metrics,
		pool:     pool,
		timeout:  cfg.Timeout,
		log:      log,
	}
	s.heuristics = []heuristic{
		{name: "large_amount", run: s.largeAmount},
		{name: "velocity", run: s.velocity},
		{name: "new_account", run: s.newAccount},
		{name: "balance_drain", run: s.balanceDrain},
		{name: "fan_in", run: s.fanIn},
	}
	return s, nil
}

// Close releases the worker pool.
func (s *RiskService) Close() {
	s.pool.Release()
}

// Score evaluates every heuristic. A heuristic that fails, cannot be
// scheduled on a saturated pool, or is still running when the timeout fires
// is skipped and the rest are summed. Only when no heuristic finishes is the
// candidate recorded as not evaluated.
func (s *RiskService) Score(ctx context.Context, c domain.RiskCandidate) domain.RiskAssessment {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	log := s.log.With().Str("sender_id", c.SenderID.String()).Logger()

	results := make(chan heuristicResult, len(s.heuristics))
	running := make(map[int]bool, len(s.heuristics))
	for i, h := range s.heuristics {
		i, h := i, h
		err := s.pool.Submit(func() {
			points, reason, err := h.run(ctx, c)
			results <- heuristicResult{index: i, points: points, reason: reason, err: err}
		})
		if err != nil {
			s.skipHeuristic(log, h.name, err, "risk heuristic not scheduled")
			continue
		}
		running[i] = true
	}

	collected := make([]*heuristicResult, len(s.heuristics))
	finished := 0
wait:
	for len(running) > 0 {
		select {
		case r := <-results:
			delete(running, r.index)
			if r.err != nil {
				s.skipHeuristic(log, s.heuristics[r.index].name, r.err, "risk heuristic failed")
				continue
			}
			collected[r.index] = &r
			finished++
		case <-ctx.Done():
			for i := range running {
				s.skipHeuristic(log, s.heuristics[i].name, ctx.Err(), "risk heuristic timed out")
			}
			break wait
		}
	}

	if finished == 0 {
		log.Warn().Msg("no risk heuristic finished; candidate not evaluated")
		return domain.NotEvaluated()
	}

	assessment := domain.RiskAssessment{Reasons: []string{}}
	for _, r := range collected {
		if r != nil && r.points > 0 {
			assessment.Add(r.points, r.reason)
		}
	}
	evaluated := time.Now().UTC()
	assessment.EvaluatedAt = &evaluated

	s.metrics.ObserveRiskScore(assessment.Score)
	return assessment
}

func (s *RiskService) skipHeuristic(log zerolog.Logger, name string, err error, msg string) {
	s.metrics.ObserveRiskHeuristicFailure(name)
	log.Warn().Err(err).Str("heuristic", name).Msg(msg)
}

func (s *RiskService) largeAmount(ctx context.Context, c domain.RiskCandidate) (int, string, error) {
	if c.Amount > domain.HighValueThreshold {
		return 40, fmt.Sprintf("large-amount: amount %d exceeds static threshold %d", c.Amount, domain.HighValueThreshold), nil
	}

	avg, ok, err := s.history.AverageSuccessfulAmount(ctx, c.SenderID, c.At.Add(-riskAverageWindow))
	if err != nil {
		return 0, "", fmt.Errorf("average amount: %w", err)
	}
	if !ok || avg <= 0 {
		return 0, "", nil
	}
	if float64(c.Amount) > math.Max(riskDynamicFloor, avg*riskDynamicMultiplier) {
		return 35, fmt.Sprintf("large-amount: amount %d is %.0fx the 30-day average %.0f",
			c.Amount, float64(c.Amount)/avg, avg), nil
	}
	return 0, "", nil
}

func (s *RiskService) velocity(ctx context.Context, c domain.RiskCandidate) (int, string, error) {
	prior, err := s.history.CountSentSince(ctx, c.SenderID, c.At.Add(-riskVelocityWindow))
	if err != nil {
		return 0, "", fmt.Errorf("count recent: %w", err)
	}
	count := prior + 1
	if count >= riskVelocityThreshold {
		return 30, fmt.Sprintf("velocity: %d transactions in the last 10 minutes", count), nil
	}
	return 0, "", nil
}

func (s *RiskService) newAccount(ctx context.Context, c domain.RiskCandidate) (int, string, error) {
	user, err := s.users.GetByID(ctx, c.SenderID)
	if err != nil {
		return 0, "", fmt.Errorf("load sender: %w", err)
	}
	if user == nil {
		return 0, "", nil
	}
	if c.At.Sub(user.CreatedAt) < riskNewAccountAge {
		return 20, "new-account: account created less than 24 hours ago", nil
	}
	return 0, "", nil
}

func (s *RiskService) balanceDrain(ctx context.Context, c domain.RiskCandidate) (int, string, error) {
	acc, err := s.accounts.GetByID(ctx, c.SourceAccountID)
	if err != nil {
		return 0, "", fmt.Errorf("load source account: %w", err)
	}
	if acc == nil {
		return 0, "", nil
	}
	remaining := acc.Balance - c.Amount
	switch {
	case remaining <= 0:
		return 15, "balance-drain: payment would drain the balance", nil
	case float64(remaining) < float64(acc.Balance)*riskLowBalanceRatio:
		return 8, "balance-drain: payment leaves less than 10% of the balance", nil
	}
	return 0, "", nil
}

func (s *RiskService) fanIn(ctx context.Context, c domain.RiskCandidate) (int, string, error) {
	senders, err := s.history.DistinctSendersSince(ctx, c.ReceiverID, c.At.Add(-riskFanInWindow))
	if err != nil {
		return 0, "", fmt.Errorf("distinct senders: %w", err)
	}
	distinct := make(map[uuid.UUID]struct{}, len(senders)+1)
	for _, id := range senders {
		distinct[id] = struct{}{}
	}
	distinct[c.SenderID] = struct{}{}
	if len(distinct) >= riskFanInThreshold {
		return 20, fmt.Sprintf("fan-in: receiver paid by %d distinct senders in the last 10 minutes", len(distinct)), nil
	}
	return 0, "", nil
}
