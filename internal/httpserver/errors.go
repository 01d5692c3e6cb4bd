package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"fidelite-backend/internal/domain"
	"fidelite-backend/internal/service/crud"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// fieldError is one entry of a 422 response, shaped like {"loc": [...], "msg": ..., "type": ...}.
type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

var registerTagNames sync.Once

// useJSONFieldNames makes validator report fields by their JSON or form name.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	})
}

// writeUnprocessable renders a request shape error found while binding from the given
// location ("body", "query" or "path").
func writeUnprocessable(c *gin.Context, loc string, err error) {
	var query url.Values
	if loc == "query" {
		query = c.Request.URL.Query()
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": describeBindError(loc, query, err)})
}

// describeBindError turns a binding error into 422 entries. query is consulted to name the
// parameter behind a number parse failure, which gin reports without the field.
func describeBindError(loc string, query url.Values, err error) []fieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, fieldError{
				Loc:  []string{loc, fe.Field()},
				Msg:  validationMessage(fe),
				Type: fe.Tag(),
			})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []fieldError{{
			Loc:  []string{loc, typeErr.Field},
			Msg:  fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			Type: "type_error",
		}}
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		fe := fieldError{Loc: []string{loc}, Msg: "value is not a valid integer", Type: "int_parsing"}
		for _, key := range slices.Sorted(maps.Keys(query)) {
			if slices.Contains(query[key], numErr.Num) {
				fe.Loc = append(fe.Loc, key)
				break
			}
		}
		return []fieldError{fe}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []fieldError{{Loc: []string{loc}, Msg: "malformed JSON", Type: "json_invalid"}}
	}
	if errors.Is(err, io.EOF) {
		return []fieldError{{Loc: []string{loc}, Msg: "field required", Type: "missing"}}
	}
	return []fieldError{{Loc: []string{loc}, Msg: err.Error(), Type: "value_error"}}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}

// writeServiceError maps a service error onto its status code. Unexpected errors are
// logged and hidden behind a generic message.
func writeServiceError(c *gin.Context, logger *zap.Logger, label, id string, err error) {
	var verr *crud.ValidationError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("%s: %s non trouvé", label, id)})
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": verr.Message})
	case errors.Is(err, domain.ErrAlreadyExists):
		msg := label + " existe déjà"
		if id != "" {
			msg = fmt.Sprintf("%s: %s existe déjà", label, id)
		}
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"detail": msg})
	case errors.Is(err, domain.ErrConstraint):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}
