package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Buyer is the owner identity embedded in a job document.
type Buyer struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Photo string `json:"photo,omitempty" bson:"photo,omitempty"`
}

// Job is a posting in the jobs collection. BidCount is owned by the bid
// workflow and is never taken from a client document.
type Job struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Category    string             `json:"category" bson:"category"`
	Description string             `json:"description" bson:"description"`
	Deadline    string             `json:"deadline" bson:"deadline"` // ISO date, sorts chronologically as a string
	Budget      float64            `json:"budget" bson:"budget"`
	Buyer       Buyer              `json:"buyer" bson:"buyer"`
	BidCount    int64              `json:"bid_count" bson:"bid_count"`
}

// JobSearch carries the /all-jobs query parameters.
type JobSearch struct {
	Text     string
	Category string
	Sort     string // "asc", "desc", or empty for store order
}
