package catalog

import "time"

// Area is one directory group: every venue sharing a city and state.
type Area struct {
	City   string
	State  string
	Venues []VenueSummary
}

type VenueSummary struct {
	ID               uint
	Name             string
	NumUpcomingShows int64
}

type ArtistSummary struct {
	ID               uint
	Name             string
	NumUpcomingShows int64
}

type VenueSearch struct {
	SearchTerm string
	Count      int
	Results    []VenueSummary
}

type ArtistSearch struct {
	SearchTerm string
	Count      int
	Results    []ArtistSummary
}

// ArtistShow is a show seen from its venue's detail page.
type ArtistShow struct {
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// VenueShow is a show seen from its artist's detail page.
type VenueShow struct {
	VenueID        uint
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

type VenueDetail struct {
	ID                 uint
	Name               string
	Genres             []string
	Address            string
	City               string
	State              string
	Phone              string
	WebsiteLink        string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
	PastShows          []ArtistShow
	UpcomingShows      []ArtistShow
	PastShowsCount     int
	UpcomingShowsCount int
}

type ArtistDetail struct {
	ID                 uint
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	WebsiteLink        string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
	ImageLink          string
	PastShows          []VenueShow
	UpcomingShows      []VenueShow
	PastShowsCount     int
	UpcomingShowsCount int
}

// ShowListing is one row of the flat show list.
type ShowListing struct {
	ID              uint
	VenueID         uint
	VenueName       string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}
