package dto

// SearchArtisansRequest carries either a location keyword or a coordinate
// pair. When both coordinates are supplied, radius mode wins.
type SearchArtisansRequest struct {
	Location string   `form:"location"`
	Lat      *float64 `form:"lat"`
	Lng      *float64 `form:"lng"`
}

// RadiusMode reports whether both coordinates are present.
func (r *SearchArtisansRequest) RadiusMode() bool {
	return r.Lat != nil && r.Lng != nil
}

type ArtisanSearchResult struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Skills     []string `json:"skills"`
	Location   string   `json:"location"`
	ProfilePic string   `json:"profile_pic"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}
