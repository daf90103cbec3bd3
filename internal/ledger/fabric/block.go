package fabric

import (
	"errors"
	"fmt"
	"time"

	"github.com/hyperledger/fabric-protos-go-apiv2/common"
	"google.golang.org/protobuf/proto"

	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
	"github.com/goodnatureofminers/tracechain-gateway/pkg/safe"
)

// blockEvent summarizes a committed block. The timestamp is taken from the
// channel header of the first transaction; on a decode error the returned
// event still carries the number and transaction count.
func blockEvent(block *common.Block) (model.LiveBlockEvent, error) {
	event := model.LiveBlockEvent{BlockNumber: block.GetHeader().GetNumber()}

	data := block.GetData().GetData()
	txCount, err := safe.Uint32(len(data))
	if err != nil {
		return event, fmt.Errorf("tx count: %w", err)
	}
	event.TxCount = txCount

	ts, err := channelTimestamp(data)
	if err != nil {
		return event, err
	}
	event.Timestamp = ts
	return event, nil
}

func channelTimestamp(data [][]byte) (time.Time, error) {
	if len(data) == 0 {
		return time.Time{}, errors.New("block has no transactions")
	}

	envelope := &common.Envelope{}
	if err := proto.Unmarshal(data[0], envelope); err != nil {
		return time.Time{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	payload := &common.Payload{}
	if err := proto.Unmarshal(envelope.GetPayload(), payload); err != nil {
		return time.Time{}, fmt.Errorf("unmarshal payload: %w", err)
	}
	header := &common.ChannelHeader{}
	if err := proto.Unmarshal(payload.GetHeader().GetChannelHeader(), header); err != nil {
		return time.Time{}, fmt.Errorf("unmarshal channel header: %w", err)
	}
	if header.GetTimestamp() == nil {
		return time.Time{}, errors.New("channel header has no timestamp")
	}
	return header.GetTimestamp().AsTime().UTC(), nil
}
