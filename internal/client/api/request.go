package api

import (
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/bioadmin/internal/client/models"
)

const (
	loginPath = "/api/login"
	usersPath = "/api/users"

	// The directory is always requested in descending user_id order with no
	// incremental-modification filter. Both are fixed, not user-configurable.
	orderByParam      = "user_id:false"
	lastModifiedParam = "0"
)

type loginUser struct {
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

type loginRequest struct {
	User loginUser `json:"User"`
}

// loginBody serializes credentials into the login payload
// {"User":{"login_id":...,"password":...}}.
func loginBody(creds *models.Credentials) ([]byte, error) {
	return json.Marshal(loginRequest{
		User: loginUser{LoginID: creds.LoginID, Password: string(creds.Secret)},
	})
}

// listUsersQuery encodes a directory page selection. Besides the caller's
// group/limit/offset it always carries the fixed ordering directive and the
// fixed last_modified marker.
func listUsersQuery(q models.UserQuery) url.Values {
	v := url.Values{}
	v.Set("group_id", strconv.Itoa(q.GroupID))
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("offset", strconv.Itoa(q.Offset))
	v.Set("order_by", orderByParam)
	v.Set("last_modified", lastModifiedParam)
	return v
}

type idRef struct {
	ID int `json:"id"`
}

// userPayload is the wire form of a new user. Optional fields are pointers
// with omitempty so an absent field produces no key at all. Password is
// deliberately not omitempty: the server schema requires the key even when
// the value is empty.
type userPayload struct {
	UserID         string  `json:"user_id"`
	UserGroupID    idRef   `json:"user_group_id"`
	StartDatetime  string  `json:"start_datetime"`
	ExpiryDatetime string  `json:"expiry_datetime"`
	Password       string  `json:"password"`
	Name           *string `json:"name,omitempty"`
	Email          *string `json:"email,omitempty"`
	Department     *string `json:"department,omitempty"`
	Title          *string `json:"title,omitempty"`
	Photo          *string `json:"photo,omitempty"`
	PhoneNumber    *string `json:"phone_number,omitempty"`
	LoginID        *string `json:"login_id,omitempty"`
	SourceIP       *string `json:"source_ip,omitempty"`
	Permission     *idRef  `json:"permission,omitempty"`
	AccessGroups   []idRef `json:"access_groups,omitempty"`
}

type createUserRequest struct {
	User userPayload `json:"User"`
}

// createUserBody serializes a validated NewUserRequest into the creation
// payload {"User":{...}}. Timestamps are rendered as ISO 8601.
func createUserBody(r *models.NewUserRequest) ([]byte, error) {
	p := userPayload{
		UserID:         r.UserID,
		UserGroupID:    idRef{ID: r.GroupID},
		StartDatetime:  r.StartTime.Format(time.RFC3339),
		ExpiryDatetime: r.ExpiryTime.Format(time.RFC3339),
		Password:       r.Secret,
		Name:           r.Name,
		Email:          r.Email,
		Department:     r.Department,
		Title:          r.Title,
		Photo:          r.Photo,
		PhoneNumber:    r.Phone,
		LoginID:        r.LoginID,
		SourceIP:       r.SourceIP,
	}
	if r.PermissionID != nil {
		p.Permission = &idRef{ID: *r.PermissionID}
	}
	for _, id := range r.AccessGroupIDs {
		p.AccessGroups = append(p.AccessGroups, idRef{ID: id})
	}
	return json.Marshal(createUserRequest{User: p})
}
