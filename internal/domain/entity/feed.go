package entity

// Feed accumulates product listing pages for one price view and search term.
// Any view or search change must reset the feed: resolved prices are never
// reused across view switches.
type Feed struct {
	View     PriceView
	Search   string
	Products []Product
	HasMore  bool
}

// NewFeed returns an empty feed for the given view and search term.
func NewFeed(view PriceView, search string) *Feed {
	return &Feed{View: view, Search: search, HasMore: true}
}

// Matches reports whether the feed was built for the given view and search
// term. A mismatch means accumulated pages are stale and must be discarded.
func (f *Feed) Matches(view PriceView, search string) bool {
	return f.View == view && f.Search == search
}

// Append adds one fetched page. A page shorter than the requested limit ends
// the feed.
func (f *Feed) Append(page []Product, limit int) {
	f.Products = append(f.Products, page...)
	f.HasMore = len(page) >= limit
}

// NextSkip is the offset for the next page fetch.
func (f *Feed) NextSkip() int {
	return len(f.Products)
}
