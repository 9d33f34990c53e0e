package rasff

import "foodrisk/internal/domain"

// pageResponse covers both the OData and the plain collection shapes of the feed.
type pageResponse struct {
	Value         []domain.RawRecord `json:"value"`
	Records       []domain.RawRecord `json:"records"`
	ODataNextLink string             `json:"@odata.nextLink"`
	NextLink      string             `json:"nextLink"`
}

func (r *pageResponse) page() *domain.FeedPage {
	records := r.Value
	if len(records) == 0 {
		records = r.Records
	}
	next := r.ODataNextLink
	if next == "" {
		next = r.NextLink
	}
	return &domain.FeedPage{Records: records, NextLink: next}
}
