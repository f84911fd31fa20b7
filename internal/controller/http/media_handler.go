package http

import (
	"net/http"

	"grace-media/pkg/logger"
	"grace-media/pkg/storage"

	"github.com/gin-gonic/gin"
)

// ObjectLister is the slice of the storage client the media library uses.
type ObjectLister interface {
	ListObjects(bucket, prefix string) ([]storage.Object, error)
}

type MediaHandler struct {
	store  ObjectLister
	logger *logger.Logger
}

func NewMediaHandler(store ObjectLister, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{store: store, logger: logger}
}

var mediaBuckets = map[string]string{
	"sermons":       storage.BucketSermons,
	"documentaries": storage.BucketDocumentaries,
	"presentations": storage.BucketPresentations,
	"materials":     storage.BucketMaterials,
	"community":     storage.BucketCommunity,
	"avatars":       storage.BucketAvatars,
}

// ListMedia godoc
// @Summary      Browse stored files
// @Description  List the raw objects in one content bucket, optionally under a folder prefix
// @Tags         media
// @Produce      json
// @Security     BearerAuth
// @Param        bucket path string true "Bucket name" Enums(sermons, documentaries, presentations, materials, community, avatars)
// @Param        prefix query string false "Key prefix, e.g. videos/"
// @Success      200  {array}   storage.Object
// @Failure      400  {object}  map[string]string
// @Router       /media/{bucket} [get]
func (h *MediaHandler) ListMedia(c *gin.Context) {
	bucket, ok := mediaBuckets[c.Param("bucket")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown bucket"})
		return
	}

	objects, err := h.store.ListObjects(bucket, c.Query("prefix"))
	if err != nil {
		h.logger.Error("Failed to list media in %s: %v", bucket, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, objects)
}
