// Package models contains request/response models and business domain types.
package models

import "github.com/lecternhq/lectern/ent"

// Validation limits for curriculum fields.
const (
	MaxTitleLength          = 200
	MaxTargetAudienceLength = 100
	MaxDurationLength       = 50
	MaxSummaryLength        = 1000
)

// Curriculum type values. Mirror the ent enum.
const (
	TypeOnline  = "online"
	TypeOffline = "offline"
	TypeHybrid  = "hybrid"
)

// ValidCurriculumType reports whether t is a recognized curriculum type.
func ValidCurriculumType(t string) bool {
	switch t {
	case TypeOnline, TypeOffline, TypeHybrid:
		return true
	}
	return false
}

// CreateCurriculumRequest contains fields for creating a curriculum
type CreateCurriculumRequest struct {
	UserID         string                 `json:"user_id"`
	Title          string                 `json:"title"`
	TargetAudience *string                `json:"target_audience,omitempty"`
	Duration       *string                `json:"duration,omitempty"`
	Type           string                 `json:"type"`
	Content        map[string]interface{} `json:"content"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	IsPublic       *bool                  `json:"is_public,omitempty"`
}

// UpdateCurriculumRequest contains fields for a partial curriculum update.
// Nil pointers mean "leave unchanged".
type UpdateCurriculumRequest struct {
	Title          *string                `json:"title,omitempty"`
	TargetAudience *string                `json:"target_audience,omitempty"`
	Duration       *string                `json:"duration,omitempty"`
	Type           *string                `json:"type,omitempty"`
	Content        map[string]interface{} `json:"content,omitempty"`
	Metadata       map[string]interface{} `json:"metadata,omitempty"`
	IsPublic       *bool                  `json:"is_public,omitempty"`
}

// ListCurriculaRequest contains pagination, filter and sort parameters for
// listing a user's curricula.
type ListCurriculaRequest struct {
	UserID         string `json:"user_id"`
	Page           int    `json:"page"`
	Limit          int    `json:"limit"`
	Search         string `json:"search,omitempty"`
	Type           string `json:"type,omitempty"`
	TargetAudience string `json:"target_audience,omitempty"`
	SortBy         string `json:"sort_by,omitempty"`    // created_at, updated_at, title
	SortOrder      string `json:"sort_order,omitempty"` // asc, desc
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// CurriculumListResponse is the paginated listing result.
type CurriculumListResponse struct {
	Curricula  []*ent.Curriculum `json:"curricula"`
	Pagination Pagination        `json:"pagination"`
}
