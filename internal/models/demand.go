package models

// DemandSignal is search interest for a region not yet converted into orders.
type DemandSignal struct {
	Region   string `json:"region"`
	Searches int    `json:"searches"`
}
