package api

import (
	"encoding/json"

	"github.com/diwise/home-entity-mgmt/pkg/types"
)

type meta struct {
	TotalRecords uint64  `json:"totalRecords"`
	Offset       *uint64 `json:"offset,omitempty"`
	Limit        *uint64 `json:"limit,omitempty"`
	Count        uint64  `json:"count"`
}

type ApiResponse struct {
	Meta *meta `json:"meta,omitempty"`
	Data any   `json:"data"`
}

func (r ApiResponse) Byte() []byte {
	b, _ := json.Marshal(r)
	return b
}

func NewApiResponse[T any](collection types.Collection[T]) ApiResponse {
	r := ApiResponse{
		Data: collection.Data,
		Meta: &meta{
			TotalRecords: collection.TotalCount,
			Count:        collection.Count,
		},
	}

	if collection.Limit > 0 {
		r.Meta.Offset = &collection.Offset
		r.Meta.Limit = &collection.Limit
	}

	return r
}

type createAreaRequest struct {
	AreaID   string `json:"areaID"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

type addMemberRequest struct {
	MemberID string `json:"memberID"`
}

type renameRequest struct {
	Name string `json:"name"`
}

type moveEntityRequest struct {
	AreaID string `json:"areaID"`
}
