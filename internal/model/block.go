package model

import "time"

// LiveBlockEvent announces one block committed on a channel.
type LiveBlockEvent struct {
	BlockNumber uint64    `json:"blockNumber"`
	TxCount     uint32    `json:"txCount"`
	Timestamp   time.Time `json:"timestamp"`
}

// ArchivedBlockEvent is a LiveBlockEvent as stored in the block archive.
type ArchivedBlockEvent struct {
	Channel    string    `json:"channel"`
	Chaincode  string    `json:"chaincode"`
	ReceivedAt time.Time `json:"receivedAt"`
	LiveBlockEvent
}
