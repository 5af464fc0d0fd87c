package alerts

import (
	"encoding/json"
	"fmt"

	"github.com/Bakuzaci/zora-dash/internal/model"
)

// wireAlert is a pushed whale trade as delivered on the live channel. The
// field names match the snapshot endpoint's trade records.
type wireAlert struct {
	TransactionHash string  `json:"transactionHash"`
	Timestamp       int64   `json:"timestamp"`
	AmountUSD       float64 `json:"amountUsd"`
	Direction       string  `json:"direction"`
	CoinAddress     string  `json:"coinAddress"`
	CoinSymbol      string  `json:"coinSymbol"`
	CoinName        string  `json:"coinName"`
	ActorHandle     string  `json:"actorHandle"`
}

// ParseEvent decodes one pushed event. Events without a transaction hash
// are rejected: the hash is the identity used for dedup.
func ParseEvent(data []byte) (model.WhaleAlert, error) {
	var w wireAlert
	if err := json.Unmarshal(data, &w); err != nil {
		return model.WhaleAlert{}, fmt.Errorf("unmarshal alert event: %w", err)
	}
	if w.TransactionHash == "" {
		return model.WhaleAlert{}, fmt.Errorf("alert event missing transactionHash")
	}

	return model.WhaleAlert{
		TxHash:      w.TransactionHash,
		Timestamp:   w.Timestamp,
		AmountUSD:   w.AmountUSD,
		Direction:   w.Direction,
		CoinAddress: w.CoinAddress,
		CoinSymbol:  w.CoinSymbol,
		CoinName:    w.CoinName,
		ActorHandle: w.ActorHandle,
	}, nil
}
