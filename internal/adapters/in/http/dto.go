package http

import (
	"backhouse/internal/core/domain/model/dish"
	"backhouse/internal/core/domain/model/order"
)

// dataEnvelope is the `{data: ...}` wrapping convention used for all
// request and response bodies except delete, which has no body.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// errorResponse carries the human-readable failure message.
type errorResponse struct {
	Error string `json:"error"`
}

// dishPayloadRequest is the inbound dish field set. Price is a pointer so an
// absent price is distinguishable from zero; the optional id is only checked
// against the route id on update.
type dishPayloadRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"image_url"`
}

func (r dishPayloadRequest) toPayload() dish.Payload {
	return dish.Payload{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
	}
}

type dishResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}

func toDishResponse(d *dish.Dish) dishResponse {
	return dishResponse{
		ID:          d.ID().String(),
		Name:        d.Name(),
		Description: d.Description(),
		Price:       d.Price(),
		ImageURL:    d.ImageURL(),
	}
}

func toDishResponses(dishes []*dish.Dish) []dishResponse {
	responses := make([]dishResponse, len(dishes))
	for i, d := range dishes {
		responses[i] = toDishResponse(d)
	}
	return responses
}

// lineItemRequest is one inbound dish reference. Quantity is a pointer so an
// absent quantity is distinguishable from zero.
type lineItemRequest struct {
	DishID   string   `json:"dishId"`
	Quantity *float64 `json:"quantity"`
}

// orderPayloadRequest is the inbound order field set. A nil Dishes slice
// means the field was absent from the request body.
type orderPayloadRequest struct {
	ID           string            `json:"id"`
	DeliverTo    string            `json:"deliverTo"`
	MobileNumber string            `json:"mobileNumber"`
	Status       string            `json:"status"`
	Dishes       []lineItemRequest `json:"dishes"`
}

func (r orderPayloadRequest) toPayload() order.Payload {
	var items []order.LineItemPayload
	if r.Dishes != nil {
		items = make([]order.LineItemPayload, len(r.Dishes))
		for i, item := range r.Dishes {
			items[i] = order.LineItemPayload{
				DishID:   item.DishID,
				Quantity: item.Quantity,
			}
		}
	}
	return order.Payload{
		DeliverTo:    r.DeliverTo,
		MobileNumber: r.MobileNumber,
		Status:       r.Status,
		Dishes:       items,
	}
}

type lineItemResponse struct {
	DishID   string `json:"dishId"`
	Quantity int    `json:"quantity"`
}

type orderResponse struct {
	ID           string             `json:"id"`
	DeliverTo    string             `json:"deliverTo"`
	MobileNumber string             `json:"mobileNumber"`
	Status       string             `json:"status"`
	Dishes       []lineItemResponse `json:"dishes"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]lineItemResponse, len(o.LineItems()))
	for i, item := range o.LineItems() {
		items[i] = lineItemResponse{
			DishID:   item.DishID(),
			Quantity: item.Quantity(),
		}
	}
	return orderResponse{
		ID:           o.ID().String(),
		DeliverTo:    o.DeliverTo(),
		MobileNumber: o.MobileNumber(),
		Status:       o.Status().String(),
		Dishes:       items,
	}
}

func toOrderResponses(orders []*order.Order) []orderResponse {
	responses := make([]orderResponse, len(orders))
	for i, o := range orders {
		responses[i] = toOrderResponse(o)
	}
	return responses
}
