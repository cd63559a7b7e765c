package models

type Dealer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Region    string `json:"region"`
	Location  string `json:"location,omitempty"`
	Inventory int    `json:"inventory"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}
