package api

import (
	"encoding/json"

	"github.com/dmitrijs2005/bioadmin/internal/client/models"
)

// userCollectionEnvelope mirrors the server's wrapper convention: the page
// is nested under a fixed "UserCollection" key.
type userCollectionEnvelope struct {
	UserCollection struct {
		Rows  []models.UserRecord `json:"rows"`
		Total int                 `json:"total"`
	} `json:"UserCollection"`
}

// decodeUserCollection parses a directory page. Rows may be empty or absent
// entirely; both normalize to an empty slice. Malformed JSON yields a
// *DecodeError, distinct from server-reported failures.
func decodeUserCollection(body []byte) (*models.UserCollectionResult, error) {
	var env userCollectionEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Err: err}
	}

	rows := env.UserCollection.Rows
	if rows == nil {
		rows = []models.UserRecord{}
	}

	return &models.UserCollectionResult{Rows: rows, Total: env.UserCollection.Total}, nil
}
