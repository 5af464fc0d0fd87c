package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Bakuzaci/zora-dash/internal/model"
)

// Explore fetches one ranked coin list.
func (c *Client) Explore(ctx context.Context, listType string, count int) ([]model.Coin, error) {
	query := url.Values{}
	query.Set("listType", listType)
	if count > 0 {
		query.Set("count", strconv.Itoa(count))
	}

	var resp exploreResponse
	if err := c.get(ctx, "/explore", query, &resp); err != nil {
		return nil, fmt.Errorf("explore %s: %w", listType, err)
	}

	return convertCoins(resp.ExploreList), nil
}

// TopGainers fetches coins with the highest 24h market cap gains.
func (c *Client) TopGainers(ctx context.Context, count int) ([]model.Coin, error) {
	return c.Explore(ctx, ListTopGainers, count)
}

// TopVolume fetches coins with the highest 24h trading volume.
func (c *Client) TopVolume(ctx context.Context, count int) ([]model.Coin, error) {
	return c.Explore(ctx, ListTopVolume24h, count)
}

// MostValuable fetches coins ranked by market cap.
func (c *Client) MostValuable(ctx context.Context, count int) ([]model.Coin, error) {
	return c.Explore(ctx, ListMostValuable, count)
}

// NewCoins fetches newly created coins.
func (c *Client) NewCoins(ctx context.Context, count int) ([]model.Coin, error) {
	return c.Explore(ctx, ListNew, count)
}

// LastTraded fetches recently traded coins.
func (c *Client) LastTraded(ctx context.Context, count int) ([]model.Coin, error) {
	return c.Explore(ctx, ListLastTraded, count)
}

// Topics fetches the category rollups.
func (c *Client) Topics(ctx context.Context) ([]model.Topic, error) {
	var resp topicsResponse
	if err := c.get(ctx, "/topics", nil, &resp); err != nil {
		return nil, fmt.Errorf("topics: %w", err)
	}

	topics := make([]model.Topic, 0, len(resp.Topics))
	for _, n := range resp.Topics {
		topics = append(topics, convertTopic(n))
	}
	return topics, nil
}

// Coin fetches detailed info for a single coin by address.
func (c *Client) Coin(ctx context.Context, address string) (*model.CoinDetail, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("chain", strconv.Itoa(BaseChainID))

	var resp coinResponse
	if err := c.get(ctx, "/coin", query, &resp); err != nil {
		return nil, fmt.Errorf("coin %s: %w", address, err)
	}

	detail := convertCoinDetail(resp.Data.Zora20Token)
	return &detail, nil
}

// CoinSwaps fetches recent trades for a single coin.
func (c *Client) CoinSwaps(ctx context.Context, address string, count int) ([]model.Swap, error) {
	query := url.Values{}
	query.Set("address", address)
	if count > 0 {
		query.Set("first", strconv.Itoa(count))
	}

	var resp coinSwapsResponse
	if err := c.get(ctx, "/coinSwaps", query, &resp); err != nil {
		return nil, fmt.Errorf("coin swaps %s: %w", address, err)
	}

	swaps := make([]model.Swap, 0, len(resp.Swaps.Edges))
	for _, e := range resp.Swaps.Edges {
		swaps = append(swaps, convertSwap(e.Node))
	}
	return swaps, nil
}

// TraderLeaderboard fetches the weekly trader leaderboard.
func (c *Client) TraderLeaderboard(ctx context.Context, count int) ([]model.Trader, error) {
	query := url.Values{}
	if count > 0 {
		query.Set("first", strconv.Itoa(count))
	}

	var resp traderLeaderboardResponse
	if err := c.get(ctx, "/traderLeaderboard", query, &resp); err != nil {
		return nil, fmt.Errorf("trader leaderboard: %w", err)
	}

	traders := make([]model.Trader, 0, len(resp.ExploreTraderLeaderboard.Edges))
	for _, e := range resp.ExploreTraderLeaderboard.Edges {
		traders = append(traders, convertTrader(e.Node))
	}
	return traders, nil
}

// FeaturedCreators fetches this week's featured creators.
func (c *Client) FeaturedCreators(ctx context.Context, count int) ([]model.Creator, error) {
	query := url.Values{}
	if count > 0 {
		query.Set("first", strconv.Itoa(count))
	}

	var resp featuredCreatorsResponse
	if err := c.get(ctx, "/featuredCreators", query, &resp); err != nil {
		return nil, fmt.Errorf("featured creators: %w", err)
	}

	creators := make([]model.Creator, 0, len(resp.TraderLeaderboardFeaturedCreators.Edges))
	for _, e := range resp.TraderLeaderboardFeaturedCreators.Edges {
		creators = append(creators, convertCreator(e.Node))
	}
	return creators, nil
}

// Profile fetches a user profile by handle or address.
func (c *Client) Profile(ctx context.Context, identifier string) (*model.Profile, error) {
	query := url.Values{}
	query.Set("identifier", identifier)

	var resp profileResponse
	if err := c.get(ctx, "/profile", query, &resp); err != nil {
		return nil, fmt.Errorf("profile %s: %w", identifier, err)
	}

	profile := convertProfile(resp.Profile)
	return &profile, nil
}

// WhaleTrades fetches the snapshot of recent trades at or above minUSD.
func (c *Client) WhaleTrades(ctx context.Context, minUSD float64) ([]model.WhaleAlert, error) {
	query := url.Values{}
	if minUSD > 0 {
		query.Set("minUsd", strconv.FormatFloat(minUSD, 'f', -1, 64))
	}

	var resp whaleTradesResponse
	if err := c.get(ctx, "/whaleTrades", query, &resp); err != nil {
		return nil, fmt.Errorf("whale trades: %w", err)
	}

	alerts := make([]model.WhaleAlert, 0, len(resp.WhaleTrades))
	for _, n := range resp.WhaleTrades {
		alerts = append(alerts, convertWhaleTrade(n))
	}
	return alerts, nil
}
