package models

// WriteResult is the acknowledgement returned by insert, update and delete routes.
type WriteResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	InsertedID    string `json:"insertedId,omitempty"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	DeletedCount  int64  `json:"deletedCount"`
}
