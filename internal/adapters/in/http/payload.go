package http

import (
	"errors"
	"fmt"
	"io"

	"grubdash/internal/core/application/pipeline"
	"grubdash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const invalidBodyMessage = "Invalid request body"

// readPayload decodes the request body and returns its "data" object. An empty body or
// a body without "data" yields an empty payload; anything that is not a JSON object, or
// a "data" that is not an object, is a bad request.
func readPayload(c echo.Context) (pipeline.Payload, error) {
	var body map[string]any
	if err := c.Echo().JSONSerializer.Deserialize(c, &body); err != nil {
		if errors.Is(err, io.EOF) {
			return pipeline.Payload{}, nil
		}
		return nil, errs.NewValidationError(errs.NewValueIsInvalidErrorWithCause("body", err), invalidBodyMessage)
	}

	raw, ok := body["data"]
	if !ok || raw == nil {
		return pipeline.Payload{}, nil
	}

	data, ok := pipeline.Object(raw)
	if !ok {
		return nil, errs.NewValidationError(
			errs.NewValueIsInvalidErrorWithCause("data", fmt.Errorf("%T is not an object", raw)),
			invalidBodyMessage,
		)
	}
	return data, nil
}
