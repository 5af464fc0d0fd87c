package api

import (
	"strconv"

	"github.com/Bakuzaci/zora-dash/internal/model"
)

// parseAmount converts a decimal string from the SDK into *float64.
// Empty or malformed values map to nil rather than an error: ranked lists
// regularly contain coins with missing metrics and one bad field must not
// fail the whole list.
func parseAmount(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// truncate shortens s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// avatarURL extracts the preferred avatar preview from a profile node.
func avatarURL(p *profileNode) string {
	if p == nil || p.Avatar == nil {
		return ""
	}
	if p.Avatar.PreviewImage.Small != "" {
		return p.Avatar.PreviewImage.Small
	}
	return p.Avatar.PreviewImage.Medium
}

// convertCoin maps an SDK coin node to the domain type.
func convertCoin(n coinNode) model.Coin {
	c := model.Coin{
		Address:           n.Address,
		Name:              n.Name,
		Symbol:            n.Symbol,
		Description:       truncate(n.Description, 200),
		MarketCap:         parseAmount(n.MarketCap),
		MarketCapDelta24h: parseAmount(n.MarketCapDelta24h),
		Volume24h:         parseAmount(n.Volume24h),
		TotalVolume:       parseAmount(n.TotalVolume),
		UniqueHolders:     n.UniqueHolders,
		CreatedAt:         n.CreatedAt,
		CreatorAddress:    n.CreatorAddress,
		ChainID:           n.ChainID,
	}

	if c.ChainID == 0 {
		c.ChainID = BaseChainID
	}
	if n.TokenPrice != nil {
		c.PriceUSDC = parseAmount(n.TokenPrice.PriceInUsdc)
	}
	if n.MediaContent != nil {
		if n.MediaContent.PreviewImage.Small != "" {
			c.Image = n.MediaContent.PreviewImage.Small
		} else {
			c.Image = n.MediaContent.PreviewImage.Medium
		}
	}
	if n.CreatorProfile != nil {
		c.CreatorHandle = n.CreatorProfile.Handle
		c.CreatorAvatar = avatarURL(n.CreatorProfile)
	}

	return c
}

// convertCoinDetail maps a detail coin node, including detail-only fields.
func convertCoinDetail(n coinNode) model.CoinDetail {
	return model.CoinDetail{
		Coin:        convertCoin(n),
		TotalSupply: n.TotalSupply,
		TokenURI:    n.TokenURI,
		CoinType:    n.CoinType,
	}
}

// convertCoins maps a connection of coin nodes.
func convertCoins(conn connection[coinNode]) []model.Coin {
	coins := make([]model.Coin, 0, len(conn.Edges))
	for _, e := range conn.Edges {
		coins = append(coins, convertCoin(e.Node))
	}
	return coins
}

// convertSwap maps an SDK swap node.
func convertSwap(n swapNode) model.Swap {
	s := model.Swap{
		TxHash:      n.TransactionHash,
		CoinAddress: n.CoinAddress,
		Timestamp:   n.Timestamp,
		Direction:   n.Direction,
		ActorHandle: n.ActorHandle,
	}
	if f := parseAmount(n.AmountUSD); f != nil {
		s.AmountUSD = *f
	}
	return s
}

// convertTrader maps a leaderboard node.
func convertTrader(n traderNode) model.Trader {
	t := model.Trader{
		Score:       n.Score,
		TradesCount: n.WeekTradesCount,
	}
	if f := parseAmount(n.WeekVolumeUsd); f != nil {
		t.VolumeUSD = *f
	}
	if n.TraderProfile != nil {
		t.Handle = n.TraderProfile.Handle
		t.ProfileID = n.TraderProfile.ID
	}
	return t
}

// convertCreator maps a featured creator node.
func convertCreator(n creatorNode) model.Creator {
	c := model.Creator{}
	if n.Profile != nil {
		c.Handle = n.Profile.Handle
		c.Avatar = avatarURL(n.Profile)
		c.Bio = n.Profile.Bio
		c.Followers = n.Profile.FollowerCount
	}
	return c
}

// convertProfile maps a profile node.
func convertProfile(n profileNode) model.Profile {
	return model.Profile{
		ID:          n.ID,
		Handle:      n.Handle,
		DisplayName: n.DisplayName,
		Bio:         n.Bio,
		Avatar:      avatarURL(&n),
		Followers:   n.FollowerCount,
		Following:   n.FollowingCount,
	}
}

// convertTopic maps a topic rollup node.
func convertTopic(n topicNode) model.Topic {
	return model.Topic{
		Name:      n.Name,
		CoinCount: n.CoinCount,
		Volume24h: n.Volume24h,
		MarketCap: n.MarketCap,
	}
}

// convertWhaleTrade maps a whale trade node.
func convertWhaleTrade(n whaleTradeNode) model.WhaleAlert {
	return model.WhaleAlert{
		TxHash:      n.TransactionHash,
		Timestamp:   n.Timestamp,
		AmountUSD:   n.AmountUSD,
		Direction:   n.Direction,
		CoinAddress: n.CoinAddress,
		CoinSymbol:  n.CoinSymbol,
		CoinName:    n.CoinName,
		ActorHandle: n.ActorHandle,
	}
}
