package models

import "time"

// Static represents a named group that owns StaticTeammate records. The GUID
// is generated once at creation and is the value teammates reference; the
// store's own document id stays internal.
type Static struct {
	Name            string    `json:"name"`
	GUID            string    `json:"guid"`
	CreationDate    time.Time `json:"creationDate"`
	LastUpdatedDate time.Time `json:"lastUpdatedDate"`
}
