package model

// -----------------------------------------------------------------------------
// Ranked List Types
// -----------------------------------------------------------------------------

// Coin represents a Zora coin as it appears in ranked explore lists.
type Coin struct {
	Address           string   `json:"address"` // Primary key (on-chain address)
	Name              string   `json:"name"`
	Symbol            string   `json:"symbol"`
	Description       string   `json:"description,omitempty"`
	Image             string   `json:"image,omitempty"`
	MarketCap         *float64 `json:"market_cap"`
	MarketCapDelta24h *float64 `json:"market_cap_delta_24h"`
	Volume24h         *float64 `json:"volume_24h"`
	TotalVolume       *float64 `json:"total_volume"`
	PriceUSDC         *float64 `json:"price_usdc"`
	UniqueHolders     int      `json:"unique_holders"`
	CreatedAt         string   `json:"created_at,omitempty"` // RFC 3339
	CreatorAddress    string   `json:"creator_address,omitempty"`
	CreatorHandle     string   `json:"creator_handle,omitempty"`
	CreatorAvatar     string   `json:"creator_avatar,omitempty"`
	ChainID           int      `json:"chain_id"`
}

// CoinDetail extends Coin with fields only present on the single-coin endpoint.
type CoinDetail struct {
	Coin

	TotalSupply string `json:"total_supply,omitempty"`
	TokenURI    string `json:"token_uri,omitempty"`
	CoinType    string `json:"coin_type,omitempty"`
}

// Swap represents one executed trade against a coin.
type Swap struct {
	TxHash      string  `json:"tx_hash"` // Primary key
	CoinAddress string  `json:"coin_address"`
	Timestamp   int64   `json:"timestamp"` // Unix seconds
	AmountUSD   float64 `json:"amount_usd"`
	Direction   string  `json:"direction"` // "buy" or "sell"
	ActorHandle string  `json:"actor_handle,omitempty"`
}

// Trader represents one entry in the weekly trader leaderboard.
type Trader struct {
	Handle      string  `json:"handle"` // Primary key
	ProfileID   string  `json:"profile_id,omitempty"`
	Score       float64 `json:"score"`
	VolumeUSD   float64 `json:"volume_usd"`
	TradesCount int     `json:"trades_count"`
}

// Creator represents one featured creator.
type Creator struct {
	Handle    string `json:"handle"` // Primary key
	Avatar    string `json:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Followers int    `json:"followers"`
}

// Topic represents a category rollup of coin activity.
type Topic struct {
	Name      string  `json:"name"` // Primary key
	CoinCount int     `json:"coin_count"`
	Volume24h float64 `json:"volume_24h"`
	MarketCap float64 `json:"market_cap"`
}

// Profile represents a user profile looked up by handle or address.
type Profile struct {
	ID          string `json:"id"`
	Handle      string `json:"handle"`
	DisplayName string `json:"display_name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// -----------------------------------------------------------------------------
// Aggregates
// -----------------------------------------------------------------------------

// OverviewStats holds the headline numbers for the overview view.
type OverviewStats struct {
	TotalVolume24h float64 `json:"total_volume_24h"`
	TopCoinsMcap   float64 `json:"top_coins_mcap"`
}

// Overview is the aggregate payload for the overview view: headline stats
// plus short top-5 slices of the main ranked lists.
type Overview struct {
	Stats        OverviewStats `json:"stats"`
	TopGainers   []Coin        `json:"top_gainers"`
	TopVolume    []Coin        `json:"top_volume"`
	MostValuable []Coin        `json:"most_valuable"`
	TopTraders   []Trader      `json:"top_traders"`
}

// -----------------------------------------------------------------------------
// Live Events
// -----------------------------------------------------------------------------

// WhaleAlert represents a single large trade, either pushed over the live
// channel or returned by the snapshot endpoint. Two alerts are the same
// trade iff their TxHash matches.
type WhaleAlert struct {
	TxHash      string  `json:"tx_hash"` // Primary key
	Timestamp   int64   `json:"timestamp"` // Unix seconds
	AmountUSD   float64 `json:"amount_usd"`
	Direction   string  `json:"direction"` // "buy" or "sell"
	CoinAddress string  `json:"coin_address,omitempty"`
	CoinSymbol  string  `json:"coin_symbol,omitempty"`
	CoinName    string  `json:"coin_name,omitempty"`
	ActorHandle string  `json:"actor_handle,omitempty"`
}
