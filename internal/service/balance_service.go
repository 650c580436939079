package service

import (
	"context"
	"time"

	"ownly-protocol/internal/core/domain"
	"ownly-protocol/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// balanceTTL matches the refresh cadence of the original dashboard poll.
const balanceTTL = 5 * time.Second

// BalanceServiceImpl implements ports.BalanceService: per-token balance reads
// through a short-TTL cache, issued concurrently across the catalog.
type BalanceServiceImpl struct {
	ledger ports.LedgerClient
	cache  ports.BalanceCache
	log    zerolog.Logger
}

// NewBalanceService creates a new BalanceServiceImpl.
func NewBalanceService(ledger ports.LedgerClient, cache ports.BalanceCache, log zerolog.Logger) *BalanceServiceImpl {
	return &BalanceServiceImpl{ledger: ledger, cache: cache, log: log}
}

// GetBalances returns base-unit balances for every catalog token owned by
// address. Catalog entries are fetched concurrently; all complete before
// aggregation.
func (s *BalanceServiceImpl) GetBalances(ctx context.Context, address domain.Address) (map[string]string, error) {
	type entry struct {
		symbol  string
		balance string
	}

	results := make(chan entry, len(domain.SupportedTokens))
	g, gctx := errgroup.WithContext(ctx)

	for symbol, token := range domain.SupportedTokens {
		g.Go(func() error {
			bal, err := s.balance(gctx, address, symbol, token.CoinType)
			if err != nil {
				return err
			}
			results <- entry{symbol: symbol, balance: bal}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)

	out := make(map[string]string, len(domain.SupportedTokens))
	for e := range results {
		out[e.symbol] = e.balance
	}
	return out, nil
}

func (s *BalanceServiceImpl) balance(ctx context.Context, address domain.Address, symbol, coinType string) (string, error) {
	if cached, err := s.cache.Get(ctx, address, symbol); err != nil {
		s.log.Warn().Err(err).Str("token", symbol).Msg("balance cache read failed, querying ledger")
	} else if cached != "" {
		return cached, nil
	}

	bal, err := s.ledger.GetBalance(ctx, address, coinType)
	if err != nil {
		return "", err
	}
	baseUnits := bal.Dec()

	if err := s.cache.Set(ctx, address, symbol, baseUnits, balanceTTL); err != nil {
		s.log.Warn().Err(err).Str("token", symbol).Msg("balance cache write failed")
	}
	return baseUnits, nil
}
