package v1

import (
	"time"

	kc_uuid "github.com/kiracukai/backend/internal/uuid"
)

type URIID struct {
	ID kc_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	URIID
	Month time.Time `uri:"month" time_format:"2006-01" time_utc:"1" example:"2024-03" binding:"required"` // Year and month in YYYY-MM format
}

type QueryDate struct {
	AsOf time.Time `form:"asOf" time_format:"2006-01-02" time_utc:"1" example:"2024-04-15"` // Date in YYYY-MM-DD format
}

type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}
