package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/bioadmin/internal/client/api"
	"github.com/dmitrijs2005/bioadmin/internal/client/models"
	"github.com/dmitrijs2005/bioadmin/internal/common"
)

// Validity period granted when the operator does not enter explicit dates.
const defaultValidity = 10 * 365 * 24 * time.Hour

// AddUser interactively collects a new-user form and submits it. Empty
// answers leave optional fields absent; an empty user id is replaced with a
// generated UUID.
func (a *App) AddUser(ctx context.Context) error {
	userID, err := GetSimpleText(a.reader, "Enter user id (empty to generate)", a.out)
	if err != nil {
		return err
	}
	if userID == "" {
		userID = uuid.NewString()
	}

	groupText, err := GetSimpleText(a.reader, "Enter group id (empty for default)", a.out)
	if err != nil {
		return err
	}
	groupID := 1
	if groupText != "" {
		groupID, err = strconv.Atoi(groupText)
		if err != nil {
			fmt.Fprintln(a.out, "Group id must be a number")
			return common.ErrorIncorrectInput
		}
	}

	start, err := a.getTimestamp("Enter start date, RFC3339 (empty for now)", time.Now())
	if err != nil {
		return err
	}
	expiry, err := a.getTimestamp("Enter expiry date, RFC3339 (empty for default validity)", start.Add(defaultValidity))
	if err != nil {
		return err
	}

	req := &models.NewUserRequest{
		UserID:     userID,
		GroupID:    groupID,
		StartTime:  start,
		ExpiryTime: expiry,
	}

	if req.Name, err = a.getOptional("Enter name (optional)"); err != nil {
		return err
	}
	if req.Email, err = a.getOptional("Enter email (optional)"); err != nil {
		return err
	}
	if req.Department, err = a.getOptional("Enter department (optional)"); err != nil {
		return err
	}

	id, err := a.directory.Create(ctx, req)
	if err != nil {
		var ve *api.ValidationError
		if errors.As(err, &ve) {
			fmt.Fprintf(a.out, "Invalid input: %s %s\n", ve.Field, ve.Reason)
			return err
		}
		a.reportDirectoryError(err)
		return err
	}

	fmt.Fprintln(a.out, "User created:", id)
	return nil
}

// getOptional reads a line and maps an empty answer to nil (field absent).
func (a *App) getOptional(prompt string) (*string, error) {
	text, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return &text, nil
}

// getTimestamp reads an RFC3339 timestamp, returning fallback on an empty answer.
func (a *App) getTimestamp(prompt string, fallback time.Time) (time.Time, error) {
	text, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return time.Time{}, err
	}
	if text == "" {
		return fallback, nil
	}
	ts, err := time.Parse(time.RFC3339, text)
	if err != nil {
		fmt.Fprintln(a.out, "Unrecognized date, using default")
		return fallback, nil
	}
	return ts, nil
}
