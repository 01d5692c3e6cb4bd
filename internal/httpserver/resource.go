package httpserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// crudService is the service surface a resource needs.
type crudService[E, P any, K comparable] interface {
	List(ctx context.Context, limit, offset int) ([]E, error)
	Get(ctx context.Context, id K) (*E, error)
	Create(ctx context.Context, e E) (*E, error)
	Patch(ctx context.Context, id K, p P) (*E, error)
	Delete(ctx context.Context, id K) error
	Entity() string
}

// keyedRequest is a create body whose key is chosen by the caller.
type keyedRequest interface {
	key() string
}

// resource serves list/get/create/patch/delete for one entity under its prefix.
type resource[E, P any, K comparable, R createRequest[E]] struct {
	svc     crudService[E, P, K]
	parseID func(string) (K, error)
	logger  *zap.Logger
}

func (r *resource[E, P, K, R]) register(group *gin.RouterGroup) {
	group.GET("", r.list)
	group.GET("/", r.list)
	group.POST("", r.create)
	group.POST("/", r.create)
	group.GET("/:id", r.get)
	group.PATCH("/:id", r.patch)
	group.DELETE("/:id", r.delete)
}

func (r *resource[E, P, K, R]) list(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeUnprocessable(c, "query", err)
		return
	}
	limit, offset := q.values()
	items, err := r.svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		writeServiceError(c, r.logger, r.svc.Entity(), "", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (r *resource[E, P, K, R]) get(c *gin.Context) {
	raw := c.Param("id")
	id, ok := r.id(c, raw)
	if !ok {
		return
	}
	item, err := r.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, r.logger, r.svc.Entity(), raw, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (r *resource[E, P, K, R]) create(c *gin.Context) {
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		writeUnprocessable(c, "body", err)
		return
	}
	created, err := r.svc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		var key string
		if k, ok := any(req).(keyedRequest); ok {
			key = k.key()
		}
		writeServiceError(c, r.logger, r.svc.Entity(), key, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (r *resource[E, P, K, R]) patch(c *gin.Context) {
	raw := c.Param("id")
	id, ok := r.id(c, raw)
	if !ok {
		return
	}
	var p P
	if err := c.ShouldBindJSON(&p); err != nil {
		writeUnprocessable(c, "body", err)
		return
	}
	updated, err := r.svc.Patch(c.Request.Context(), id, p)
	if err != nil {
		writeServiceError(c, r.logger, r.svc.Entity(), raw, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (r *resource[E, P, K, R]) delete(c *gin.Context) {
	raw := c.Param("id")
	id, ok := r.id(c, raw)
	if !ok {
		return
	}
	if err := r.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, r.logger, r.svc.Entity(), raw, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *resource[E, P, K, R]) id(c *gin.Context, raw string) (K, bool) {
	id, err := r.parseID(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": []fieldError{{
			Loc:  []string{"path", "id"},
			Msg:  "value is not a valid identifier",
			Type: "type_error",
		}}})
		return id, false
	}
	return id, true
}

func parseInt64(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func parseCode(raw string) (string, error) {
	return raw, nil
}
