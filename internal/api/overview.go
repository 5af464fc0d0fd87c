package api

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Bakuzaci/zora-dash/internal/model"
)

// overviewFetchCount is how many entries each underlying list contributes
// to the overview aggregate before slicing to the top five.
const overviewFetchCount = 10

// Overview fetches the four lists behind the overview view in parallel and
// aggregates headline stats from them.
func (c *Client) Overview(ctx context.Context) (*model.Overview, error) {
	var (
		gainers  []model.Coin
		volume   []model.Coin
		valuable []model.Coin
		traders  []model.Trader
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		gainers, err = c.TopGainers(ctx, overviewFetchCount)
		return err
	})
	g.Go(func() (err error) {
		volume, err = c.TopVolume(ctx, overviewFetchCount)
		return err
	})
	g.Go(func() (err error) {
		valuable, err = c.MostValuable(ctx, overviewFetchCount)
		return err
	})
	g.Go(func() (err error) {
		traders, err = c.TraderLeaderboard(ctx, overviewFetchCount)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("overview: %w", err)
	}

	ov := &model.Overview{
		TopGainers:   topN(gainers, 5),
		TopVolume:    topN(volume, 5),
		MostValuable: topN(valuable, 5),
		TopTraders:   topN(traders, 5),
	}
	for _, coin := range volume {
		if coin.Volume24h != nil {
			ov.Stats.TotalVolume24h += *coin.Volume24h
		}
	}
	for _, coin := range valuable {
		if coin.MarketCap != nil {
			ov.Stats.TopCoinsMcap += *coin.MarketCap
		}
	}

	return ov, nil
}

func topN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
