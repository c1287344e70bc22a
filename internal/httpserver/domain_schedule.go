package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	scheduleHTTP "taskplanner/internal/schedule/delivery/http"
)

// setupScheduleDomain registers the schedule domain routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(client, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
//
// Here steps 1-3 happen in main so the webhook handler can share the use case.
func (srv *HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup) {
	scheduleHTTP.RegisterRoutes(api.Group("/schedule"), srv.scheduleHandler, srv.mw)
	srv.l.Infof(ctx, "Schedule domain registered")
}
