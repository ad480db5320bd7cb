package types

import (
	"encoding/json"
	"strings"
	"time"
)

type Home struct {
	HomeID      string `json:"homeID"`
	UserID      string `json:"userID"`
	AppCode     string `json:"appCode"`
	OwnerUserID string `json:"ownerUserID"`
	IsOwner     bool   `json:"isOwner"`
	Name        string `json:"name"`
	Position    int    `json:"position,omitzero"`
}

type Area struct {
	AreaID   string `json:"areaID"`
	HomeID   string `json:"homeID"`
	UserID   string `json:"userID"`
	AppCode  string `json:"appCode"`
	Name     string `json:"name"`
	Position int    `json:"position,omitzero"`
}

type Device struct {
	DeviceID string `json:"deviceID"`
	HomeID   string `json:"homeID"`
	UserID   string `json:"userID"`
	AppCode  string `json:"appCode"`

	AreaID   string `json:"areaID,omitzero"`
	ParentID string `json:"parentID,omitzero"`

	FamilyName string `json:"familyName"`
	TypeCode   string `json:"typeCode"`
	Category   string `json:"category,omitzero"`
	Connection string `json:"connection,omitzero"`
	Vendor     string `json:"vendor,omitzero"`

	Name     string `json:"name,omitzero"`
	Position int    `json:"position,omitzero"`
	MAC      string `json:"mac,omitzero"`

	Extra json.RawMessage `json:"extra,omitempty"`

	// PairingToken is only present on create requests and is never persisted.
	PairingToken string `json:"pairingToken,omitzero"`

	CreatedOn  time.Time `json:"createdOn,omitzero"`
	ModifiedOn time.Time `json:"modifiedOn,omitzero"`
}

// IsController reports whether the device is a hub controller that may own
// child devices. The family name is matched with case and whitespace ignored,
// so "HC", "hc" and "Home Controller" all classify as controllers.
func (d Device) IsController() bool {
	f := normalizeFamily(d.FamilyName)
	return f == "hc" || f == "homecontroller"
}

func normalizeFamily(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

type HomeStatistics struct {
	HomeID      string `json:"homeID"`
	UserID      string `json:"userID"`
	AppCode     string `json:"appCode"`
	Entities    int64  `json:"entities"`
	Controllers int64  `json:"controllers"`
}

type AreaStatistics struct {
	AreaID      string `json:"areaID"`
	HomeID      string `json:"homeID"`
	UserID      string `json:"userID"`
	AppCode     string `json:"appCode"`
	Entities    int64  `json:"entities"`
	Controllers int64  `json:"controllers"`
}

type ShareRequest struct {
	HomeID    string   `json:"homeID"`
	AppCode   string   `json:"appCode"`
	UserID    string   `json:"userID"`
	MemberID  string   `json:"memberID"`
	DeviceIDs []string `json:"deviceIDs"`
}

// ShareResult reports the outcome for a single device id within a share or
// unshare batch. One id failing does not abort the rest of the batch.
type ShareResult struct {
	DeviceID string `json:"deviceID"`
	Shared   bool   `json:"shared"`
	Error    string `json:"error,omitzero"`
}

type TypeDescriptor struct {
	TypeCode   string `json:"typeCode"`
	FamilyName string `json:"familyName"`
	Vendor     string `json:"vendor,omitzero"`
	Active     bool   `json:"active"`
}

type Collection[T any] struct {
	Data       []T
	Count      uint64
	Offset     uint64
	Limit      uint64
	TotalCount uint64
}
