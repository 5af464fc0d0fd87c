package api

import (
	"context"
	"fmt"

	"github.com/Bakuzaci/zora-dash/internal/view"
)

// FetchQuery dispatches a logical view query to the one endpoint that
// serves it. This is the entry point the snapshot fetch controller uses;
// every payload type it can return is a view-specific result from the
// model package.
func (c *Client) FetchQuery(ctx context.Context, q view.Query) (any, error) {
	switch q.View {
	case view.Overview:
		return c.Overview(ctx)
	case view.Topics:
		return c.Topics(ctx)
	case view.Gainers:
		return c.TopGainers(ctx, q.Count)
	case view.Volume:
		return c.TopVolume(ctx, q.Count)
	case view.Valuable:
		return c.MostValuable(ctx, q.Count)
	case view.New:
		return c.NewCoins(ctx, q.Count)
	case view.Active:
		return c.LastTraded(ctx, q.Count)
	case view.Creators:
		return c.FeaturedCreators(ctx, q.Count)
	case view.Traders:
		return c.TraderLeaderboard(ctx, q.Count)
	case view.Whales:
		return c.WhaleTrades(ctx, q.MinUSD)
	default:
		return nil, fmt.Errorf("unknown view %q", q.View)
	}
}
