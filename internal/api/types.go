package api

// Explore list types accepted by GET /explore.
const (
	ListTopGainers   = "TOP_GAINERS"
	ListTopVolume24h = "TOP_VOLUME_24H"
	ListMostValuable = "MOST_VALUABLE"
	ListNew          = "NEW"
	ListLastTraded   = "LAST_TRADED"
)

// BaseChainID is the only chain the dashboard reads from.
const BaseChainID = 8453

// edge wraps a node in the SDK's connection envelope.
type edge[T any] struct {
	Node T `json:"node"`
}

// connection is the SDK's paginated list envelope. The dashboard never
// paginates, so the cursor fields are ignored.
type connection[T any] struct {
	Edges []edge[T] `json:"edges"`
}

// exploreResponse from GET /explore.
type exploreResponse struct {
	ExploreList connection[coinNode] `json:"exploreList"`
}

// coinResponse from GET /coin.
type coinResponse struct {
	Data struct {
		Zora20Token coinNode `json:"zora20Token"`
	} `json:"data"`
}

// coinSwapsResponse from GET /coinSwaps.
type coinSwapsResponse struct {
	Swaps connection[swapNode] `json:"swaps"`
}

// traderLeaderboardResponse from GET /traderLeaderboard.
type traderLeaderboardResponse struct {
	ExploreTraderLeaderboard connection[traderNode] `json:"exploreTraderLeaderboard"`
}

// featuredCreatorsResponse from GET /featuredCreators.
type featuredCreatorsResponse struct {
	TraderLeaderboardFeaturedCreators connection[creatorNode] `json:"traderLeaderboardFeaturedCreators"`
}

// profileResponse from GET /profile.
type profileResponse struct {
	Profile profileNode `json:"profile"`
}

// topicsResponse from GET /topics.
type topicsResponse struct {
	Topics []topicNode `json:"topics"`
}

// whaleTradesResponse from GET /whaleTrades.
type whaleTradesResponse struct {
	WhaleTrades []whaleTradeNode `json:"whaleTrades"`
}

// coinNode is a Zora20 token as returned by the SDK. Numeric amounts arrive
// as decimal strings and may be absent.
type coinNode struct {
	Address           string `json:"address"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	Description       string `json:"description"`
	MarketCap         string `json:"marketCap"`
	MarketCapDelta24h string `json:"marketCapDelta24h"`
	Volume24h         string `json:"volume24h"`
	TotalVolume       string `json:"totalVolume"`
	UniqueHolders     int    `json:"uniqueHolders"`
	CreatedAt         string `json:"createdAt"`
	CreatorAddress    string `json:"creatorAddress"`
	ChainID           int    `json:"chainId"`

	TokenPrice *struct {
		PriceInUsdc string `json:"priceInUsdc"`
	} `json:"tokenPrice"`

	MediaContent *struct {
		PreviewImage previewImage `json:"previewImage"`
	} `json:"mediaContent"`

	CreatorProfile *profileNode `json:"creatorProfile"`

	// Detail-only fields (GET /coin).
	TotalSupply string `json:"totalSupply"`
	TokenURI    string `json:"tokenUri"`
	CoinType    string `json:"coinType"`
}

type swapNode struct {
	TransactionHash string `json:"transactionHash"`
	CoinAddress     string `json:"coinAddress"`
	Timestamp       int64  `json:"timestamp"`
	AmountUSD       string `json:"amountUsd"`
	Direction       string `json:"direction"`
	ActorHandle     string `json:"actorHandle"`
}

type traderNode struct {
	TraderProfile   *profileNode `json:"traderProfile"`
	Score           float64      `json:"score"`
	WeekVolumeUsd   string       `json:"weekVolumeUsd"`
	WeekTradesCount int          `json:"weekTradesCount"`
}

type creatorNode struct {
	Profile *profileNode `json:"profile"`
}

type profileNode struct {
	ID             string `json:"id"`
	Handle         string `json:"handle"`
	DisplayName    string `json:"displayName"`
	Bio            string `json:"bio"`
	FollowerCount  int    `json:"followerCount"`
	FollowingCount int    `json:"followingCount"`

	Avatar *struct {
		PreviewImage previewImage `json:"previewImage"`
	} `json:"avatar"`
}

type topicNode struct {
	Name      string  `json:"name"`
	CoinCount int     `json:"coinCount"`
	Volume24h float64 `json:"volume24h"`
	MarketCap float64 `json:"marketCap"`
}

type whaleTradeNode struct {
	TransactionHash string  `json:"transactionHash"`
	Timestamp       int64   `json:"timestamp"`
	AmountUSD       float64 `json:"amountUsd"`
	Direction       string  `json:"direction"`
	CoinAddress     string  `json:"coinAddress"`
	CoinSymbol      string  `json:"coinSymbol"`
	CoinName        string  `json:"coinName"`
	ActorHandle     string  `json:"actorHandle"`
}

type previewImage struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
}
