package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Bid statuses form a closed set; anything else is rejected at the
// update boundary.
const (
	BidPending  = "pending"
	BidAccepted = "accepted"
	BidRejected = "rejected"
)

func ValidBidStatus(s string) bool {
	switch s {
	case BidPending, BidAccepted, BidRejected:
		return true
	}
	return false
}

// Bid references its job by hex id. Buyer is the job owner's email,
// denormalized server-side when the bid is placed.
type Bid struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	JobID    string             `json:"jobId" bson:"jobId"`
	Email    string             `json:"email" bson:"email"`
	Buyer    string             `json:"buyer" bson:"buyer"`
	Status   string             `json:"status" bson:"status"`
	Price    float64            `json:"price" bson:"price"`
	Deadline string             `json:"deadline" bson:"deadline"`
	Comment  string             `json:"comment,omitempty" bson:"comment,omitempty"`
}
