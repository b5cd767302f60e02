package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

type errorMapping struct {
	status  int
	code    dto.ErrorCode
	message string
}

// kindMappings gives the HTTP status and code for every error kind
var kindMappings = map[error]errorMapping{
	apperrors.ErrNotFound:             {http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found"},
	apperrors.ErrDuplicateApplication: {http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Application already exists"},
	apperrors.ErrDuplicateOffer:       {http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Offer letter already exists"},
	apperrors.ErrDuplicateRollNumber:  {http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Roll number already registered"},
	apperrors.ErrReferencedEntity:     {http.StatusConflict, dto.ErrorCodeResourceReferenced, "Resource is still referenced"},
	apperrors.ErrInvalidTransition:    {http.StatusUnprocessableEntity, dto.ErrorCodeInvalidTransition, "Status transition not allowed"},
	apperrors.ErrIneligibleOffer:      {http.StatusUnprocessableEntity, dto.ErrorCodeIneligibleOffer, "Offer letter not allowed"},
	apperrors.ErrOutOfRange:           {http.StatusBadRequest, dto.ErrorCodeOutOfRange, "Value out of range"},
	apperrors.ErrValidationFailed:     {http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	mapping, ok := kindMappings[apperrors.Kind(err)]
	if !ok {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		abortWithError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
		return
	}

	detail := dto.NewErrorDetail(mapping.code, mapping.message)
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		if custom.Message != "" {
			detail.Message = custom.Message
		}
		if field, ok := custom.Details["field"].(string); ok {
			detail.WithField(field)
		}
		if len(custom.Details) > 0 {
			detail.WithDetails(custom.Details)
		}
	}
	if mapping.status < http.StatusInternalServerError {
		detail.WithSeverity(dto.ErrorSeverityWarning)
	}
	abortWithError(c, mapping.status, detail)
}

// HandleBindingError reports a malformed or incomplete request body
func HandleBindingError(c *gin.Context, err error) {
	abortWithError(c, http.StatusBadRequest, dto.HandleValidationError(err))
}

func abortWithError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.APIResponse{Error: detail, Timestamp: time.Now()})
}
