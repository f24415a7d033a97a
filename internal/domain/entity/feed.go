package entity

import "strconv"

// DefaultNewMerchantLabel is shown instead of a rating for unrated merchants.
const DefaultNewMerchantLabel = "Novo"

// EmptyReason tells the presentation layer why a feed has no results.
type EmptyReason string

const (
	// EmptyReasonNone means the feed has results.
	EmptyReasonNone EmptyReason = ""
	// EmptyReasonNoSearchMatches means no merchant matched the search query.
	EmptyReasonNoSearchMatches EmptyReason = "no_search_matches"
	// EmptyReasonNoMerchantsInCategory means the selected category has no visible merchants.
	EmptyReasonNoMerchantsInCategory EmptyReason = "no_merchants_in_category"
)

// RankedResult is a merchant annotated for one consumer at one instant.
type RankedResult struct {
	Merchant  *Merchant       `json:"merchant"`
	IsOpenNow bool            `json:"is_open_now"`
	Delivery  DeliveryDisplay `json:"delivery"`
	Score     *int            `json:"score,omitempty"` // Relevance score, set only when searching.
}

// Feed is the ordered result of one feed evaluation.
type Feed struct {
	Results   []RankedResult `json:"results"`
	Searching bool           `json:"searching"`
	Empty     EmptyReason    `json:"empty,omitempty"`
}

// IsEmpty reports whether the feed has no results.
func (f *Feed) IsEmpty() bool {
	return len(f.Results) == 0
}

// RatingLabel formats the merchant rating with one decimal, or returns newLabel for unrated merchants.
func (r RankedResult) RatingLabel(newLabel string) string {
	if r.Merchant == nil || r.Merchant.Rating == nil {
		return newLabel
	}

	return strconv.FormatFloat(*r.Merchant.Rating, 'f', 1, 64)
}
