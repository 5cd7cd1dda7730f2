package handlers

import (
	"net/http"
	"strings"
	"time"

	"generation-service/config"
	"generation-service/content"
	"generation-service/llm"
	"generation-service/metrics"
	"generation-service/models"
	"generation-service/uploads"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// Route name constants used in logs and metrics labels.
const (
	RouteText     = "generate-text"
	RouteImage    = "generate-from-image"
	RouteDocument = "generate-from-document"
	RouteAudio    = "generate-from-audio"
)

// Per-route default prompts, applied when the prompt field is absent or empty
// on a media route.
const (
	DefaultImagePrompt    = "Caption this image."
	DefaultDocumentPrompt = "Summarize this document."
	DefaultAudioPrompt    = "Describe this audio clip."
)

// Handlers represents the HTTP handlers for the generation relay
type Handlers struct {
	cfg     *config.Config
	llm     llm.Client
	store   *uploads.Store
	builder *content.Builder
}

// NewHandlers creates new HTTP handlers. The provider client is injected so
// tests can substitute a stub.
func NewHandlers(cfg *config.Config, client llm.Client, store *uploads.Store) *Handlers {
	return &Handlers{
		cfg:     cfg,
		llm:     client,
		store:   store,
		builder: content.NewBuilder(cfg.InlineMaxBytes),
	}
}

// HealthCheck handles health check requests
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: "generation-service",
	})
}

// GenerateText handles POST /generate-text
func (h *Handlers) GenerateText(c *gin.Context) {
	var req models.GenerateTextRequest
	if err := c.BindJSON(&req); err != nil {
		metrics.RequestsTotal.WithLabelValues(RouteText, "invalid_input").Inc()
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request format"})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		metrics.RequestsTotal.WithLabelValues(RouteText, "invalid_input").Inc()
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Prompt is required"})
		return
	}

	output, err := h.generate(c, h.cfg.TextModel, []llm.Part{{Text: req.Prompt}})
	if err != nil {
		log.WithError(err).Error("Text generation failed")
		metrics.RequestsTotal.WithLabelValues(RouteText, "remote_error").Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	metrics.RequestsTotal.WithLabelValues(RouteText, "ok").Inc()
	c.JSON(http.StatusOK, models.GenerateResponse{Output: output})
}

// GenerateFromImage handles POST /generate-from-image
func (h *Handlers) GenerateFromImage(c *gin.Context) {
	h.generateFromMedia(c, mediaRoute{
		name:          RouteImage,
		field:         "image",
		defaultPrompt: DefaultImagePrompt,
		model:         h.cfg.ImageModel,
	})
}

// GenerateFromDocument handles POST /generate-from-document
func (h *Handlers) GenerateFromDocument(c *gin.Context) {
	h.generateFromMedia(c, mediaRoute{
		name:          RouteDocument,
		field:         "document",
		defaultPrompt: DefaultDocumentPrompt,
		model:         h.cfg.DocumentModel,
	})
}

// GenerateFromAudio handles POST /generate-from-audio
func (h *Handlers) GenerateFromAudio(c *gin.Context) {
	h.generateFromMedia(c, mediaRoute{
		name:          RouteAudio,
		field:         "audio",
		defaultPrompt: DefaultAudioPrompt,
		model:         h.cfg.AudioModel,
	})
}

// mediaRoute parameterizes the shared media handler.
type mediaRoute struct {
	name          string
	field         string
	defaultPrompt string
	model         string
}

// generateFromMedia is the shared flow for all media routes: validate the
// upload, materialize it to a scratch file, build the content list, call the
// provider and respond. The scratch file is released on every exit path.
func (h *Handlers) generateFromMedia(c *gin.Context, route mediaRoute) {
	fh, err := c.FormFile(route.field)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(route.name, "invalid_input").Inc()
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "No " + route.field + " file uploaded"})
		return
	}

	prompt := strings.TrimSpace(c.PostForm("prompt"))
	if prompt == "" {
		prompt = route.defaultPrompt
	}

	scratch, err := h.store.Save(fh)
	if err != nil {
		log.WithError(err).Errorf("Failed to save %s upload", route.field)
		metrics.RequestsTotal.WithLabelValues(route.name, "processing_error").Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to process uploaded file"})
		return
	}
	defer func() {
		if err := h.store.Delete(scratch); err != nil {
			log.WithError(err).Errorf("Failed to delete scratch file %s", scratch.Path)
		}
	}()

	metrics.UploadBytes.Observe(float64(fh.Size))

	parts, err := h.builder.Build(c.Request.Context(), h.llm, prompt, scratch)
	if err != nil {
		log.WithError(err).Errorf("Failed to build content for %s", route.name)
		metrics.RequestsTotal.WithLabelValues(route.name, "remote_error").Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := h.generate(c, route.model, parts)
	if err != nil {
		log.WithError(err).Errorf("Generation failed for %s", route.name)
		metrics.RequestsTotal.WithLabelValues(route.name, "remote_error").Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	metrics.RequestsTotal.WithLabelValues(route.name, "ok").Inc()
	c.JSON(http.StatusOK, models.GenerateResponse{Output: output})
}

// generate wraps the remote call with duration metrics.
func (h *Handlers) generate(c *gin.Context, model string, parts []llm.Part) (string, error) {
	start := time.Now()
	output, err := h.llm.GenerateContent(c.Request.Context(), model, parts)
	metrics.RemoteCallDurationSeconds.WithLabelValues("generate").Observe(time.Since(start).Seconds())
	return output, err
}
