package handlers

import (
	"net/http"

	"serralheria_os/pkg"

	"github.com/gin-gonic/gin"
)

// actorHeader carries the acting user for audit fields. Authentication
// lives upstream; this service only records who acted.
const actorHeader = "X-Actor-ID"

var errMissingActor = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Missing "+actorHeader+" header", http.StatusBadRequest)

func actorFrom(c *gin.Context) string {
	return c.GetHeader(actorHeader)
}

func invalidPayload(message string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("VALIDATION_ERROR", message, http.StatusBadRequest)
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
