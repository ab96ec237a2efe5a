package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gtkpad369/LegalSch/internal/domain/shared"
)

// FromDomain maps domain errors onto the HTTP surface. Anything it
// does not recognize becomes a generic 500 so internals never leak.
func FromDomain(c *gin.Context, err error) {
	var ve *shared.ValidationError
	if errors.As(err, &ve) {
		WriteReport(c, http.StatusBadRequest, "validation_failed", ve.Report)
		return
	}

	var ce *shared.ConflictError
	if errors.As(err, &ce) {
		WriteReport(c, http.StatusConflict, "conflict", ce.Report)
		return
	}

	var nf *shared.NotFoundError
	if errors.As(err, &nf) {
		NotFound(c, "not_found", nf.Error())
		return
	}

	var cte *shared.ContractError
	if errors.As(err, &cte) {
		BadRequest(c, "contract_violation", cte.Error())
		return
	}

	Internal(c, "internal_error", "something went wrong")
}
