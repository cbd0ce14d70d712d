package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"amoura_server/models"
)

// MinBidIncrement is the smallest amount a new bid must exceed the
// current highest bid by.
const MinBidIncrement = 100

var (
	ErrItemNotFound        = errors.New("auction item not found")
	ErrItemNotActive       = errors.New("auction item is not active")
	ErrBidTooLow           = errors.New("bid is below the minimum increment")
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrOutbid means another bid landed between read and write.
	ErrOutbid = errors.New("outbid by a concurrent bid")
)

// AuctionService handles auction items and the bidding flow.
type AuctionService struct {
	Dynamo *DynamoService
}

// BidResult describes the accepted bid back to the caller.
type BidResult struct {
	Item             models.AuctionItem `json:"item"`
	RemainingBalance int64              `json:"remainingBalance"`
}

// PlaceBid validates and records a bid. The item's highest bid is
// advanced with an optimistic lock: if a concurrent bid won the race
// the caller gets ErrOutbid and should retry against the fresh price.
// The displaced bidder is refunded before the new bidder is charged.
func (as *AuctionService) PlaceBid(ctx context.Context, sessionID, participantID, itemID string, amount int64) (*BidResult, error) {
	itemKey := map[string]types.AttributeValue{
		"itemId": &types.AttributeValueMemberS{Value: itemID},
	}
	raw, err := as.Dynamo.GetItem(ctx, models.AuctionItemsTable, itemKey)
	if err != nil {
		return nil, ErrItemNotFound
	}
	item, err := unmarshalAuctionItem(raw)
	if err != nil {
		return nil, err
	}

	if item.Status != models.ItemStatusActive {
		return nil, ErrItemNotActive
	}
	if amount < item.CurrentBid+MinBidIncrement {
		return nil, ErrBidTooLow
	}

	// Advance the item under an optimistic lock on the observed price.
	updated, err := as.Dynamo.UpdateItemConditional(ctx,
		models.AuctionItemsTable,
		"SET currentBid = :amount, highestBidderId = :bidder",
		"currentBid = :observed",
		itemKey,
		map[string]types.AttributeValue{
			":amount":   &types.AttributeValueMemberN{Value: strconv.FormatInt(amount, 10)},
			":bidder":   &types.AttributeValueMemberS{Value: participantID},
			":observed": &types.AttributeValueMemberN{Value: strconv.FormatInt(item.CurrentBid, 10)},
		},
		nil,
	)
	if err != nil {
		if errors.Is(err, ErrConditionFailed) {
			return nil, ErrOutbid
		}
		return nil, err
	}

	// Charge the new bidder; the condition keeps the balance from
	// going negative under concurrent bids.
	remaining, err := as.adjustBalance(ctx, participantID, -amount, true)
	if err != nil {
		// Roll the item back so the auction does not show a bid nobody
		// paid for.
		if _, rbErr := as.Dynamo.UpdateItem(ctx, models.AuctionItemsTable,
			"SET currentBid = :amount, highestBidderId = :bidder",
			itemKey,
			map[string]types.AttributeValue{
				":amount": &types.AttributeValueMemberN{Value: strconv.FormatInt(item.CurrentBid, 10)},
				":bidder": &types.AttributeValueMemberS{Value: item.HighestBidderID},
			},
			nil,
		); rbErr != nil {
			log.Printf("Failed to roll back item %s after charge failure: %v", itemID, rbErr)
		}
		return nil, err
	}

	// Refund whoever held the item before this bid, including the same
	// participant raising their own bid.
	if item.HighestBidderID != "" && item.CurrentBid > 0 {
		if _, err := as.adjustBalance(ctx, item.HighestBidderID, item.CurrentBid, false); err != nil {
			log.Printf("Failed to refund displaced bidder %s on item %s: %v", item.HighestBidderID, itemID, err)
		}
		if item.HighestBidderID == participantID {
			remaining += item.CurrentBid
		}
	}

	bid := models.Bid{
		BidID:         uuid.NewString(),
		ItemID:        itemID,
		ParticipantID: participantID,
		SessionID:     sessionID,
		Amount:        amount,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := as.Dynamo.PutItem(ctx, models.BidsTable, bid); err != nil {
		return nil, fmt.Errorf("failed to record bid: %w", err)
	}

	result, err := unmarshalAuctionItem(updated)
	if err != nil {
		return nil, err
	}
	return &BidResult{Item: *result, RemainingBalance: remaining}, nil
}

// adjustBalance adds delta to a participant's balance and returns the
// new value. When guarded is true the write requires the balance to
// cover the charge.
func (as *AuctionService) adjustBalance(ctx context.Context, participantID string, delta int64, guarded bool) (int64, error) {
	key := map[string]types.AttributeValue{
		"participantId": &types.AttributeValueMemberS{Value: participantID},
	}
	values := map[string]types.AttributeValue{
		":delta": &types.AttributeValueMemberN{Value: strconv.FormatInt(delta, 10)},
	}

	var attrs map[string]types.AttributeValue
	var err error
	if guarded {
		values[":need"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(-delta, 10)}
		attrs, err = as.Dynamo.UpdateItemConditional(ctx,
			models.ParticipantsTable,
			"SET balance = balance + :delta",
			"balance >= :need",
			key, values, nil,
		)
		if errors.Is(err, ErrConditionFailed) {
			return 0, ErrInsufficientBalance
		}
	} else {
		attrs, err = as.Dynamo.UpdateItem(ctx,
			models.ParticipantsTable,
			"SET balance = balance + :delta",
			key, values, nil,
		)
	}
	if err != nil {
		return 0, err
	}

	if n, ok := attrs["balance"].(*types.AttributeValueMemberN); ok {
		balance, perr := strconv.ParseInt(n.Value, 10, 64)
		if perr == nil {
			return balance, nil
		}
	}
	return 0, nil
}

// CreateItem adds a new active auction item to the session.
func (as *AuctionService) CreateItem(ctx context.Context, sessionID, title string) (*models.AuctionItem, error) {
	item := models.AuctionItem{
		ItemID:    uuid.NewString(),
		SessionID: sessionID,
		Title:     title,
		Status:    models.ItemStatusActive,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := as.Dynamo.PutItem(ctx, models.AuctionItemsTable, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CloseItem marks an item closed; closed items reject further bids.
func (as *AuctionService) CloseItem(ctx context.Context, itemID string) error {
	_, err := as.Dynamo.UpdateItem(ctx,
		models.AuctionItemsTable,
		"SET #status = :closed",
		map[string]types.AttributeValue{
			"itemId": &types.AttributeValueMemberS{Value: itemID},
		},
		map[string]types.AttributeValue{
			":closed": &types.AttributeValueMemberS{Value: models.ItemStatusClosed},
		},
		map[string]string{"#status": "status"},
	)
	return err
}

// ListItems returns the session's auction items in creation order.
func (as *AuctionService) ListItems(ctx context.Context, sessionID string) ([]models.AuctionItem, error) {
	var items []models.AuctionItem
	if err := as.Dynamo.ScanEqual(ctx, models.AuctionItemsTable, map[string]string{"sessionId": sessionID}, &items); err != nil {
		return nil, fmt.Errorf("failed to list auction items: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt != items[j].CreatedAt {
			return items[i].CreatedAt < items[j].CreatedAt
		}
		return items[i].ItemID < items[j].ItemID
	})
	return items, nil
}

func unmarshalAuctionItem(raw map[string]types.AttributeValue) (*models.AuctionItem, error) {
	var item models.AuctionItem
	if err := unmarshalMap(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auction item: %w", err)
	}
	return &item, nil
}
