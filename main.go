package main

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"content-studio/config"
	"content-studio/models"
	"content-studio/services"
	"content-studio/storage"
	"content-studio/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	contentCreatedCounter    prometheus.Counter
	approvalResponsesCounter *prometheus.CounterVec
	pendingLinksGauge        prometheus.Gauge
)

func init() {
	contentCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "content_items_created_total",
			Help: "Total number of content items created.",
		},
	)
	approvalResponsesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "approval_responses_total",
			Help: "Total number of approval link responses, by decision.",
		},
		[]string{"decision"},
	)
	pendingLinksGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "approval_links_pending",
			Help: "Approval links currently awaiting a client response.",
		},
	)
	prometheus.MustRegister(contentCreatedCounter, approvalResponsesCounter, pendingLinksGauge)
}

func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APISecretKey == "" {
			c.Next()
			return
		}
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey != cfg.APISecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logging.Fatal("Failed to connect to database", zap.Error(err))
	}
	logging.Info("Successfully connected to database.")

	if gin.Mode() == gin.DebugMode {
		logging.Info("Debug mode detected. Dropping tables for fresh start.")
		db.Migrator().DropTable(&models.ApprovalLink{}, &models.ContentItem{}, &models.Company{})
	}
	logging.Info("Running database auto-migration...")
	db.AutoMigrate(&models.Company{}, &models.ContentItem{}, &models.ApprovalLink{})

	seedDefaultCompanies(db, logging)

	// Setup services
	st := store.New(db)
	s3Client, err := storage.NewS3Client(cfg)
	if err != nil {
		logging.Fatal("S3 client creation failed", zap.Error(err))
	}
	boardService := services.NewBoardService(st, logging)
	approvalService := services.NewApprovalService(st, logging,
		time.Duration(cfg.ApprovalLinkTTLDays)*24*time.Hour)
	autosaver := services.NewAutosaver(st, logging,
		time.Duration(cfg.AutosaveDebounceMS)*time.Millisecond)

	// Setup Router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Agency surface behind the API key; approval pages stay public, the
	// token is their capability.
	agency := router.Group("/", apiKeyAuthMiddleware(cfg))
	setupCompanyRoutes(agency, st, boardService, logging)
	setupContentRoutes(agency, st, boardService, autosaver, s3Client, cfg, logging)
	setupApprovalAdminRoutes(agency, approvalService, cfg, logging)
	setupApprovalPublicRoutes(router, approvalService, logging)
	setupMetaRoutes(router)

	// Setup Cron: periodic approval-link stats for the dashboard gauge.
	cronScheduler := cron.New()
	cronScheduler.AddFunc(cfg.CronSchedule, func() {
		refreshApprovalStats(db, logging)
	})
	cronScheduler.Start()
	refreshApprovalStats(db, logging)

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		autosaver.FlushAll()
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func setupCompanyRoutes(rg *gin.RouterGroup, st *store.Store, boardService *services.BoardService, log *zap.Logger) {
	companies := rg.Group("/companies")

	// GET - All companies ordered by name, with content counts for the cards
	companies.GET("", func(c *gin.Context) {
		list, err := st.ListCompanies(c.Request.Context())
		if err != nil {
			log.Error("Database query for companies failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		type companyWithCount struct {
			models.Company
			ContentCount int64 `json:"content_count"`
		}
		out := make([]companyWithCount, 0, len(list))
		for _, company := range list {
			count, err := st.CountContentItems(c.Request.Context(), company.ID)
			if err != nil {
				log.Warn("Content count failed", zap.String("slug", company.Slug), zap.Error(err))
			}
			out = append(out, companyWithCount{Company: company, ContentCount: count})
		}
		c.JSON(http.StatusOK, out)
	})

	companies.GET("/:slug", func(c *gin.Context) {
		company, err := st.GetCompanyBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
				return
			}
			log.Error("DB error fetching company", zap.String("slug", c.Param("slug")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, company)
	})

	// GET - Kanban board, optionally filtered by month and status
	companies.GET("/:slug/board", func(c *gin.Context) {
		company, err := st.GetCompanyBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		board, err := boardService.LoadBoard(c.Request.Context(), company.ID)
		if err != nil {
			log.Error("Board load failed", zap.String("slug", company.Slug), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		monthFilter := services.MonthAll
		if raw := c.Query("month"); raw != "" && raw != "all" {
			m, err := strconv.Atoi(raw)
			if err != nil || m < 1 || m > 12 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month filter"})
				return
			}
			monthFilter = m
		}
		statusFilter := models.Status("")
		if raw := c.Query("status"); raw != "" && raw != "all" {
			statusFilter = models.Status(raw)
			if !statusFilter.Known() {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
				return
			}
		}
		if monthFilter != services.MonthAll || statusFilter != "" {
			board = services.ApplyFilters(board, monthFilter, statusFilter)
		}

		type column struct {
			Status models.Status        `json:"status"`
			Label  string               `json:"label"`
			Color  string               `json:"color"`
			Items  []models.ContentItem `json:"items"`
		}
		columns := make([]column, 0, len(models.BoardColumns))
		for _, col := range models.BoardColumns {
			meta := col.Meta()
			columns = append(columns, column{Status: col, Label: meta.Label, Color: meta.Color, Items: board.Columns[col]})
		}
		c.JSON(http.StatusOK, gin.H{"company": company, "columns": columns, "total": board.Total()})
	})

	// GET - Annual view: 12 month buckets for one year
	companies.GET("/:slug/calendar", func(c *gin.Context) {
		company, err := st.GetCompanyBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		year := time.Now().Year()
		if raw := c.Query("year"); raw != "" {
			y, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
				return
			}
			year = y
		}

		items, err := st.ListContentItems(c.Request.Context(), company.ID, nil, &year)
		if err != nil {
			log.Error("Calendar query failed", zap.String("slug", company.Slug), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		buckets := services.GroupByMonth(items)
		type monthBucket struct {
			Month        int                  `json:"month"`
			Items        []models.ContentItem `json:"items"`
			StatusCounts map[models.Status]int `json:"status_counts"`
		}
		out := make([]monthBucket, 0, 12)
		for m := 1; m <= 12; m++ {
			counts := map[models.Status]int{}
			for _, item := range buckets[m] {
				counts[models.NormalizeStatus(string(item.Status))]++
			}
			out = append(out, monthBucket{Month: m, Items: buckets[m], StatusCounts: counts})
		}
		c.JSON(http.StatusOK, gin.H{"company": company, "year": year, "months": out, "total": len(items)})
	})
}

// contentUpdatableFields whitelists the keys a partial content update may
// touch. Anything else in the request body is dropped silently.
var contentUpdatableFields = map[string]bool{
	"title": true, "type": true, "badge": true, "publish_date": true,
	"status": true, "description": true, "caption": true,
	"slides": true, "image_prompts": true, "video_prompts": true,
	"media_urls": true, "month": true, "year": true, "sort_order": true,
}

func filterContentFields(raw map[string]interface{}) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	for k, v := range raw {
		if !contentUpdatableFields[k] {
			continue
		}
		if k == "status" {
			s, _ := v.(string)
			if !models.Status(s).Known() {
				return nil, errors.New("unknown status value")
			}
		}
		// jsonb sequences arrive as arrays and have to be re-marshalled
		switch k {
		case "slides", "image_prompts", "video_prompts", "media_urls":
			b, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			updates[k] = datatypes.JSON(b)
		default:
			updates[k] = v
		}
	}
	return updates, nil
}

func setupContentRoutes(rg *gin.RouterGroup, st *store.Store, boardService *services.BoardService, autosaver *services.Autosaver, s3Client *awss3.Client, cfg *config.Config, log *zap.Logger) {
	contents := rg.Group("/contents")

	// POST - Create new content item
	contents.POST("", func(c *gin.Context) {
		var req struct {
			CompanyID   uint               `json:"company_id" binding:"required"`
			Title       string             `json:"title"`
			Type        models.ContentType `json:"type"`
			Badge       string             `json:"badge"`
			PublishDate *time.Time         `json:"publish_date"`
			Status      models.Status      `json:"status"`
			Description string             `json:"description"`
			Caption     string             `json:"caption"`
			Slides      []string           `json:"slides"`
			Month       int                `json:"month"`
			Year        int                `json:"year"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		item, err := boardService.QuickCreate(c.Request.Context(), nil, req.CompanyID, services.QuickCreateInput{
			Title:       req.Title,
			Type:        req.Type,
			Badge:       req.Badge,
			Status:      req.Status,
			Description: req.Description,
			Caption:     req.Caption,
			PublishDate: req.PublishDate,
			Slides:      req.Slides,
			Month:       req.Month,
			Year:        req.Year,
		})
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Error("Failed to create content item", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create content item"})
			return
		}
		contentCreatedCounter.Inc()
		c.JSON(http.StatusCreated, item)
	})

	contents.GET("/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		item, err := st.GetContentItem(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "content item not found"})
				return
			}
			log.Error("DB error fetching content item", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}
		c.JSON(http.StatusOK, item)
	})

	// PATCH - Partial update, only sent fields are applied
	contents.PATCH("/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var raw map[string]interface{}
		if err := c.ShouldBindJSON(&raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		updates, err := filterContentFields(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields provided"})
			return
		}
		item, err := st.UpdateContentItem(c.Request.Context(), id, updates)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "content item not found"})
				return
			}
			log.Error("DB error updating content item", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update content item"})
			return
		}
		c.JSON(http.StatusOK, item)
	})

	// PATCH - Status move, the drag-and-drop persistence path
	contents.PATCH("/:id/status", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req struct {
			Status models.Status `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. 'status' field is required."})
			return
		}
		item, err := boardService.MoveStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "content item not found"})
			default:
				log.Error("Status move failed", zap.Uint("id", id), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to move content item"})
			}
			return
		}
		c.JSON(http.StatusOK, item)
	})

	// PATCH - Debounced inline-edit autosave; rapid edits collapse into one write
	contents.PATCH("/:id/autosave", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var raw map[string]interface{}
		if err := c.ShouldBindJSON(&raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		updates, err := filterContentFields(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No updatable fields provided"})
			return
		}
		autosaver.Queue(id, updates)
		c.JSON(http.StatusAccepted, gin.H{"message": "autosave scheduled"})
	})

	contents.DELETE("/:id", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := st.DeleteContentItem(c.Request.Context(), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "content item not found"})
				return
			}
			log.Error("DB error deleting content item", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete content item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	})

	// POST - Attach media: multipart upload to S3, or a plain URL in JSON
	contents.POST("/:id/media", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		item, err := st.GetContentItem(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "content item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			return
		}

		var mediaURL string
		if file, err := c.FormFile("file"); err == nil {
			f, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read upload"})
				return
			}
			defer f.Close()
			data, err := io.ReadAll(f)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read upload"})
				return
			}
			mediaURL, err = storage.UploadMedia(c.Request.Context(), s3Client, cfg, id, file.Filename, data)
			if err != nil {
				log.Error("Media upload failed", zap.Uint("id", id), zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "media upload failed"})
				return
			}
		} else {
			var req struct {
				URL string `json:"url" binding:"required"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "provide a 'file' upload or a 'url' field"})
				return
			}
			mediaURL = req.URL
		}

		urls := append(item.MediaURLList(), mediaURL)
		encoded, err := json.Marshal(urls)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode media urls"})
			return
		}
		updated, err := st.UpdateContentItem(c.Request.Context(), id, map[string]interface{}{
			"media_urls": datatypes.JSON(encoded),
		})
		if err != nil {
			log.Error("Failed to append media url", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save media url"})
			return
		}
		c.JSON(http.StatusOK, updated)
	})
}

func setupApprovalAdminRoutes(rg *gin.RouterGroup, approvalService *services.ApprovalService, cfg *config.Config, log *zap.Logger) {
	rg.POST("/contents/:id/approval-links", func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		link, err := approvalService.CreateLink(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "content item not found"})
				return
			}
			log.Error("Failed to create approval link", zap.Uint("content_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create approval link"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"link": link,
			"url":  cfg.AppBaseURL + "/approval?token=" + link.Token,
		})
	})
}

func setupApprovalPublicRoutes(router *gin.Engine, approvalService *services.ApprovalService, log *zap.Logger) {
	rg := router.Group("/approvals")

	rg.GET("/:token", func(c *gin.Context) {
		view, err := approvalService.LoadApproval(c.Request.Context(), c.Param("token"))
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "approval link not found"})
			case errors.Is(err, services.ErrExpired):
				c.JSON(http.StatusGone, gin.H{"error": "approval link expired"})
			default:
				log.Error("Approval lookup failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
			}
			return
		}
		c.JSON(http.StatusOK, view)
	})

	rg.POST("/:token/respond", func(c *gin.Context) {
		var req struct {
			Decision   services.Decision `json:"decision" binding:"required"`
			Comment    string            `json:"comment"`
			ClientName string            `json:"client_name"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body. 'decision' field is required."})
			return
		}
		link, err := approvalService.Respond(c.Request.Context(), c.Param("token"), req.Decision, req.Comment, req.ClientName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, store.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "approval link not found"})
			case errors.Is(err, services.ErrExpired):
				c.JSON(http.StatusGone, gin.H{"error": "approval link expired"})
			case errors.Is(err, store.ErrAlreadyResponded):
				c.JSON(http.StatusConflict, gin.H{"error": "approval link already responded"})
			default:
				log.Error("Approval response failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record response"})
			}
			return
		}
		approvalResponsesCounter.WithLabelValues(string(req.Decision)).Inc()
		c.JSON(http.StatusOK, link)
	})
}

func setupMetaRoutes(router *gin.Engine) {
	rg := router.Group("/meta")

	rg.GET("/statuses", func(c *gin.Context) {
		type statusInfo struct {
			Key   models.Status `json:"key"`
			Label string        `json:"label"`
			Color string        `json:"color"`
		}
		out := make([]statusInfo, 0, len(models.BoardColumns))
		for _, s := range models.BoardColumns {
			meta := s.Meta()
			out = append(out, statusInfo{Key: s, Label: meta.Label, Color: meta.Color})
		}
		c.JSON(http.StatusOK, out)
	})

	rg.GET("/types", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.ContentTypes)
	})
}

// refreshApprovalStats feeds the pending-links gauge and logs how many
// pending links already ran out their validity window. Expiry stays a
// read-time check; nothing is mutated here.
func refreshApprovalStats(db *gorm.DB, log *zap.Logger) {
	var pending, expired int64
	if err := db.Model(&models.ApprovalLink{}).
		Where("status = ?", models.ApprovalPending).
		Count(&pending).Error; err != nil {
		log.Error("Approval stats query failed", zap.Error(err))
		return
	}
	db.Model(&models.ApprovalLink{}).
		Where("status = ? AND expires_at < ?", models.ApprovalPending, time.Now()).
		Count(&expired)

	pendingLinksGauge.Set(float64(pending))
	log.Info("Approval link stats",
		zap.Int64("pending", pending),
		zap.Int64("expired_pending", expired))
}

func seedDefaultCompanies(db *gorm.DB, logger *zap.Logger) {
	var count int64
	db.Model(&models.Company{}).Count(&count)
	if count > 0 {
		return
	}
	companies := []models.Company{
		{Name: "The Beat Life Club", Slug: "beatlife", Colors: datatypes.JSON(`{"primary": "#0c1f32", "secondary": "#1a3a5c"}`)},
		{Name: "Manchester", Slug: "manchester", Colors: datatypes.JSON(`{"primary": "#C41E3A", "secondary": "#C9A227"}`)},
		{Name: "Nechio Congelados", Slug: "nechio", Colors: datatypes.JSON(`{"primary": "#6366F1", "secondary": "#818CF8"}`)},
		{Name: "FlexByo", Slug: "flexbyo", Colors: datatypes.JSON(`{"primary": "#10B981", "secondary": "#34D399"}`)},
		{Name: "Just Burn", Slug: "justburn", Colors: datatypes.JSON(`{"primary": "#F59E0B", "secondary": "#FBBF24"}`)},
		{Name: "RT", Slug: "rt", Colors: datatypes.JSON(`{"primary": "#EF4444", "secondary": "#F87171"}`)},
	}
	if err := db.Create(&companies).Error; err != nil {
		logger.Warn("Failed to seed default companies", zap.Error(err))
	} else {
		logger.Info("Default companies seeded.")
	}
}
