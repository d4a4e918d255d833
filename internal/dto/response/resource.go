package response

import (
	"campus-booking/internal/data/entity"
)

type ResourceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Capacity    int    `json:"capacity"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func ResourceToResponse(resource *entity.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          resource.ID.String(),
		Name:        resource.Name,
		Type:        string(resource.Type),
		Capacity:    resource.Capacity,
		Location:    resource.Location,
		Description: resource.Description,
	}
}
