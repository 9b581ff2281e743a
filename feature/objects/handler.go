package objects

import (
	"bytes"
	"errors"
	"strconv"

	"bucket-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CopyFromHeader names the source key for copy-style PUT requests.
const CopyFromHeader = "X-Copy-From"

// Handler handles HTTP requests for object operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/bucket", h.HandleBucketInfo)

	group := app.Group("/objects")
	group.Get("/*", h.HandleGet)
	group.Head("/*", h.HandleHead)
	group.Put("/*", h.HandlePut)
	group.Delete("/*", h.HandleDelete)
}

// HandleBucketInfo reports the bound bucket's name, existence and location.
// @Summary Bucket Info
// @Description Returns the bound bucket name, whether it exists, and its region.
// @Tags bucket
// @Produce json
// @Success 200 {object} objects.BucketInfo "Bucket Info"
// @Router /bucket [get]
func (h *Handler) HandleBucketInfo(c *fiber.Ctx) error {
	return c.JSON(h.service.BucketInfo(c.Context()))
}

// HandleGet streams an object's payload.
// @Summary Download Object
// @Tags objects
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} binary "Object payload"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /objects/{key} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	key, ok := objectKey(c)
	if !ok {
		return nil
	}

	rc, info, err := h.service.Get(c.Context(), key)
	if err != nil {
		return h.storeError(c, key, err)
	}

	setObjectHeaders(c, info)
	if info.Size > 0 {
		return c.SendStream(rc, int(info.Size))
	}
	return c.SendStream(rc)
}

// HandleHead serves object metadata without the payload.
func (h *Handler) HandleHead(c *fiber.Ctx) error {
	key, ok := objectKey(c)
	if !ok {
		return nil
	}

	info, err := h.service.Head(c.Context(), key)
	if err != nil {
		return h.storeError(c, key, err)
	}

	setObjectHeaders(c, info)
	return c.SendStatus(fiber.StatusOK)
}

// HandlePut stores the request body at the given key, or copies another key
// of the same bucket when the X-Copy-From header is set.
// @Summary Upload or Copy Object
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param key path string true "Object key"
// @Param X-Copy-From header string false "Copy from this key instead of uploading"
// @Success 200 {object} map[string]string "Copy result"
// @Success 201 {object} objects.ObjectInfo "Upload result"
// @Failure 404 {object} map[string]string "Copy source missing"
// @Router /objects/{key} [put]
func (h *Handler) HandlePut(c *fiber.Ctx) error {
	key, ok := objectKey(c)
	if !ok {
		return nil
	}

	if source := c.Get(CopyFromHeader); source != "" {
		if err := h.service.Copy(c.Context(), source, key); err != nil {
			return h.storeError(c, source, err)
		}
		return c.JSON(fiber.Map{
			"status": "copied",
			"source": source,
			"target": key,
		})
	}

	body := c.Body()
	info, err := h.service.Put(c.Context(), key, bytes.NewReader(body), int64(len(body)), c.Get(fiber.HeaderContentType))
	if err != nil {
		return h.storeError(c, key, err)
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleDelete removes an object.
// @Summary Delete Object
// @Tags objects
// @Param key path string true "Object key"
// @Success 204 "Deleted"
// @Router /objects/{key} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	key, ok := objectKey(c)
	if !ok {
		return nil
	}

	if err := h.service.Remove(c.Context(), key); err != nil {
		return h.storeError(c, key, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) storeError(c *fiber.Ctx, key string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "not found",
			"key":   key,
		})
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Error("Storage operation failed", zap.String("key", key), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// objectKey extracts the wildcard key. ok is false when the path carried no
// key; the 400 response has then already been written.
func objectKey(c *fiber.Ctx) (string, bool) {
	key := c.Params("*")
	if key == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing object key"})
		return "", false
	}
	return key, true
}

func setObjectHeaders(c *fiber.Ctx, info ObjectInfo) {
	if info.ContentType != "" {
		c.Set(fiber.HeaderContentType, info.ContentType)
	}
	if info.ETag != "" {
		c.Set(fiber.HeaderETag, `"`+info.ETag+`"`)
	}
	if info.Size > 0 {
		c.Set(fiber.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	}
}
