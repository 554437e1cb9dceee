package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bioadmin/internal/client/api"
	"github.com/dmitrijs2005/bioadmin/internal/client/models"
	"github.com/dmitrijs2005/bioadmin/internal/logging"
)

// DefaultGroupID is the directory group queried when the caller does not
// name one.
const DefaultGroupID = 1

// DirectoryService defines user-directory operations for the CLI.
type DirectoryService interface {
	// List fetches one page of users. groupID <= 0 falls back to
	// DefaultGroupID; limit <= 0 falls back to the configured page size;
	// a negative offset is treated as 0.
	List(ctx context.Context, groupID, limit, offset int) (*models.UserCollectionResult, error)

	// Create adds a user to the directory and returns the created user id.
	Create(ctx context.Context, r *models.NewUserRequest) (string, error)
}

type directoryService struct {
	client   api.Client
	pageSize int
	log      logging.Logger
}

// NewDirectoryService constructs a DirectoryService. pageSize is the default
// page size used when List is called without an explicit limit.
func NewDirectoryService(client api.Client, pageSize int, log logging.Logger) DirectoryService {
	return &directoryService{
		client:   client,
		pageSize: pageSize,
		log:      log.With("component", "directory"),
	}
}

func (d *directoryService) List(ctx context.Context, groupID, limit, offset int) (*models.UserCollectionResult, error) {
	if groupID <= 0 {
		groupID = DefaultGroupID
	}
	if limit <= 0 {
		limit = d.pageSize
	}
	if offset < 0 {
		offset = 0
	}

	q := models.UserQuery{GroupID: groupID, Limit: limit, Offset: offset}

	res, err := d.client.ListUsers(ctx, q)
	if err != nil {
		d.log.Warn(ctx, "user listing failed", "group_id", groupID, "offset", offset, "err", err)
		return nil, fmt.Errorf("list users error: %w", err)
	}

	d.log.Debug(ctx, "user page fetched", "rows", len(res.Rows), "total", res.Total)
	return res, nil
}

func (d *directoryService) Create(ctx context.Context, r *models.NewUserRequest) (string, error) {
	id, err := d.client.CreateUser(ctx, r)
	if err != nil {
		d.log.Warn(ctx, "user creation failed", "user_id", r.UserID, "err", err)
		return "", fmt.Errorf("create user error: %w", err)
	}

	d.log.Info(ctx, "user created", "user_id", id)
	return id, nil
}
