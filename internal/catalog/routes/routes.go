package routes

import (
	"context"

	"go-armada/internal/catalog/dto"
	"go-armada/internal/catalog/services"

	"github.com/danielgtaylor/huma/v2"
)

// Routes registers the public catalog endpoints
type Routes struct {
	service *services.Service
}

// NewRoutes creates a catalog routes module
func NewRoutes(service *services.Service) *Routes {
	return &Routes{service: service}
}

// RegisterUnifiedRoutes registers catalog routes on the shared Huma API
func (r *Routes) RegisterUnifiedRoutes(api huma.API, basePath string) {
	huma.Get(api, basePath+"/ships", r.listShipsHandler)
	huma.Get(api, basePath+"/missions", r.listMissionsHandler)
}

func (r *Routes) listShipsHandler(ctx context.Context, input *struct{}) (*dto.ListShipsOutput, error) {
	out := &dto.ListShipsOutput{}
	out.Body.Ships = r.service.Ships()
	return out, nil
}

func (r *Routes) listMissionsHandler(ctx context.Context, input *struct{}) (*dto.ListMissionsOutput, error) {
	out := &dto.ListMissionsOutput{}
	out.Body.Missions = r.service.Missions()
	return out, nil
}
