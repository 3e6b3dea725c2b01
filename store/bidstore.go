package store

import (
	"context"
	"errors"

	"github.com/abdurrahmanmahmud5981/SoleAmhere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BidStore persists bids in the bids collection. The collection carries
// a unique (email, jobId) index, so Create is the authoritative
// duplicate check.
type BidStore struct {
	coll *mongo.Collection
}

func NewBidStore(coll *mongo.Collection) *BidStore {
	return &BidStore{coll: coll}
}

func (s *BidStore) Create(ctx context.Context, bid *models.Bid) (*models.Bid, error) {
	bid.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, bid); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return bid, nil
}

// Exists reports whether the bidder already has a bid on the job.
func (s *BidStore) Exists(ctx context.Context, jobID, email string) (bool, error) {
	err := s.coll.FindOne(ctx, bson.M{"email": email, "jobId": jobID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *BidStore) ByID(ctx context.Context, id string) (*models.Bid, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var bid models.Bid
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&bid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bid, nil
}

// ForUser returns bids received on the user's jobs (asBuyer) or bids
// the user placed.
func (s *BidStore) ForUser(ctx context.Context, email string, asBuyer bool) ([]models.Bid, error) {
	filter := bson.M{"email": email}
	if asBuyer {
		filter = bson.M{"buyer": email}
	}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bids := []models.Bid{}
	if err := cursor.All(ctx, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

func (s *BidStore) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
