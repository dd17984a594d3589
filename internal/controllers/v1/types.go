package v1

import (
	kb_uuid "github.com/kleinbuch/backend/internal/uuid"
)

type URIID struct {
	ID kb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIYear struct {
	Year int `uri:"year" binding:"required" example:"2024"` // Calendar year of the report
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
