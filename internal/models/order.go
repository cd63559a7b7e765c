package models

const (
	OrderPending   = "Pending"
	OrderShipped   = "Shipped"
	OrderDelivered = "Delivered"
)

type Order struct {
	ID           string `json:"id"`
	DealerID     string `json:"dealerId"`
	ProductID    string `json:"productId"`
	Quantity     int    `json:"quantity"`
	BuyerName    string `json:"buyerName"`
	Status       string `json:"status"`
	DeliveryDate string `json:"deliveryDate"`
}
