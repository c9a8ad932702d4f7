package places

// Wire types for the place provider. All provider-specific field names
// stay inside this package; everything downstream works with the
// normalized PlaceCandidate.

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type locationRestriction struct {
	Circle circle `json:"circle"`
}

type searchNearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes"`
	MaxResultCount      int                 `json:"maxResultCount"`
	LocationRestriction locationRestriction `json:"locationRestriction"`
}

type searchNearbyResponse struct {
	Places []rawPlace `json:"places"`
}

type localizedText struct {
	Text string `json:"text"`
}

type openingPoint struct {
	Day  int `json:"day"`
	Hour int `json:"hour"`
}

type openingPeriod struct {
	Open  openingPoint  `json:"open"`
	Close *openingPoint `json:"close,omitempty"`
}

type openingHours struct {
	Periods []openingPeriod `json:"periods"`
}

type rawPlace struct {
	ID                  string        `json:"id"`
	DisplayName         localizedText `json:"displayName"`
	FormattedAddress    string        `json:"formattedAddress"`
	Types               []string      `json:"types"`
	Rating              float64       `json:"rating"`
	UserRatingCount     int           `json:"userRatingCount"`
	PriceLevel          string        `json:"priceLevel"`
	Location            latLng        `json:"location"`
	WebsiteURI          string        `json:"websiteUri"`
	RegularOpeningHours *openingHours `json:"regularOpeningHours"`
}
