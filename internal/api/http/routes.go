package httpapi

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/temperature-heatmap/internal/climate"
	"github.com/i474232898/temperature-heatmap/internal/heatmap"
)

var validate = validator.New()

// DatasetLoader is the part of climate.Service the handlers need.
type DatasetLoader interface {
	Load(ctx context.Context) (climate.Dataset, error)
}

// Handler renders a fresh chart for every request.
type Handler struct {
	loader   DatasetLoader
	renderer *heatmap.Renderer
	timeout  time.Duration
}

func NewHandler(loader DatasetLoader, renderer *heatmap.Renderer, fetchTimeout time.Duration) *Handler {
	return &Handler{
		loader:   loader,
		renderer: renderer,
		timeout:  fetchTimeout,
	}
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/", func(c *fiber.Ctx) error {
		chart, err := h.render(c)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := heatmap.WritePage(&buf, chart, ""); err != nil {
			log.Printf("ERROR: page render failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	})

	v1 := app.Group("/api/v1")

	v1.Get("/heatmap.svg", func(c *fiber.Ctx) error {
		var q highlightQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		chart, err := h.render(c)
		if err != nil {
			return err
		}

		if q.selected && !chart.Enter(q.Year, q.Month, q.X, q.Y) {
			return fiber.NewError(fiber.StatusNotFound, "no record for requested year and month")
		}

		var buf bytes.Buffer
		if err := heatmap.WriteSVG(&buf, chart); err != nil {
			log.Printf("ERROR: svg render failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render chart")
		}
		c.Set(fiber.HeaderContentType, "image/svg+xml; charset=utf-8")
		return c.Send(buf.Bytes())
	})

	v1.Get("/heatmap", func(c *fiber.Ctx) error {
		chart, err := h.render(c)
		if err != nil {
			return err
		}
		return c.JSON(chart)
	})

	v1.Get("/dataset/summary", func(c *fiber.Ctx) error {
		ds, err := h.load(c)
		if err != nil {
			return err
		}
		return c.JSON(ds.Summarize())
	})
}

func (h *Handler) load(c *fiber.Ctx) (climate.Dataset, error) {
	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	ds, err := h.loader.Load(ctx)
	if err != nil {
		log.Printf("ERROR: dataset load failed: %v", err)
		switch {
		case errors.Is(err, climate.ErrMalformedPayload):
			return climate.Dataset{}, fiber.NewError(fiber.StatusBadGateway, "dataset payload is malformed")
		case errors.Is(err, context.DeadlineExceeded):
			return climate.Dataset{}, fiber.NewError(fiber.StatusGatewayTimeout, "timed out fetching dataset")
		default:
			return climate.Dataset{}, fiber.NewError(fiber.StatusBadGateway, "failed to fetch dataset")
		}
	}
	return ds, nil
}

func (h *Handler) render(c *fiber.Ctx) (*heatmap.Chart, error) {
	ds, err := h.load(c)
	if err != nil {
		return nil, err
	}

	chart, err := h.renderer.Render(ds)
	if err != nil {
		log.Printf("ERROR: chart render failed: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to render chart")
	}
	c.Set("X-Render-ID", chart.ID)
	return chart, nil
}

// highlightQuery selects a cell to draw highlighted, with the pointer
// position the tooltip is anchored to.
type highlightQuery struct {
	Year  int
	Month int     `validate:"min=1,max=12"`
	X     float64 `validate:"gte=0"`
	Y     float64 `validate:"gte=0"`

	selected bool
}

func (q *highlightQuery) bind(c *fiber.Ctx) error {
	year, month := c.Query("year"), c.Query("month")
	if year == "" && month == "" {
		return nil
	}
	if year == "" || month == "" {
		return errors.New("year and month must be given together")
	}

	var err error
	if q.Year, err = strconv.Atoi(year); err != nil {
		return errors.New("year must be an integer")
	}
	if q.Month, err = strconv.Atoi(month); err != nil {
		return errors.New("month must be an integer")
	}
	if x := c.Query("x"); x != "" {
		if q.X, err = strconv.ParseFloat(x, 64); err != nil {
			return errors.New("x must be a number")
		}
	}
	if y := c.Query("y"); y != "" {
		if q.Y, err = strconv.ParseFloat(y, 64); err != nil {
			return errors.New("y must be a number")
		}
	}
	q.selected = true

	return validate.Struct(q)
}
