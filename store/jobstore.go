package store

import (
	"context"
	"errors"
	"regexp"

	"github.com/abdurrahmanmahmud5981/SoleAmhere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// JobStore persists jobs in the jobs collection.
type JobStore struct {
	coll *mongo.Collection
}

func NewJobStore(coll *mongo.Collection) *JobStore {
	return &JobStore{coll: coll}
}

func (s *JobStore) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	job.ID = primitive.NewObjectID()
	if _, err := s.coll.InsertOne(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *JobStore) All(ctx context.Context) ([]models.Job, error) {
	return s.find(ctx, bson.M{}, nil)
}

func (s *JobStore) ByOwner(ctx context.Context, email string) ([]models.Job, error) {
	return s.find(ctx, bson.M{"buyer.email": email}, nil)
}

func (s *JobStore) ByID(ctx context.Context, id string) (*models.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var job models.Job
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (s *JobStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Upsert replaces the client-editable fields of the matching job, or
// inserts a fresh one under the given id. bid_count is owned by the bid
// workflow: it is seeded on insert and never overwritten here, so a
// full replacement document cannot stomp the counter.
func (s *JobStore) Upsert(ctx context.Context, id string, job *models.Job) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	update := bson.M{
		"$set": bson.M{
			"title":       job.Title,
			"category":    job.Category,
			"description": job.Description,
			"deadline":    job.Deadline,
			"budget":      job.Budget,
			"buyer":       job.Buyer,
		},
		"$setOnInsert": bson.M{"bid_count": int64(0)},
	}
	_, err = s.coll.UpdateOne(ctx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	return err
}

func (s *JobStore) Search(ctx context.Context, q models.JobSearch) ([]models.Job, error) {
	filter, opts := searchQuery(q)
	return s.find(ctx, filter, opts)
}

// IncBidCount adjusts the stored counter with a single-document $inc,
// which mongo applies atomically per document.
func (s *JobStore) IncBidCount(ctx context.Context, id string, n int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"bid_count": n}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// searchQuery builds the /all-jobs filter. The title regex is kept even
// for an empty search string: an empty pattern matches every title, so
// "no search" means "no filter", not "no results".
func searchQuery(q models.JobSearch) (bson.M, *options.FindOptions) {
	filter := bson.M{
		"title": primitive.Regex{Pattern: regexp.QuoteMeta(q.Text), Options: "i"},
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}

	var opts *options.FindOptions
	switch q.Sort {
	case "asc":
		opts = options.Find().SetSort(bson.D{{Key: "deadline", Value: 1}})
	case "desc":
		opts = options.Find().SetSort(bson.D{{Key: "deadline", Value: -1}})
	}
	return filter, opts
}

func (s *JobStore) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Job, error) {
	var (
		cursor *mongo.Cursor
		err    error
	)
	if opts != nil {
		cursor, err = s.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = s.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	jobs := []models.Job{}
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
