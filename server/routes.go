package main

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/meikuraledutech/decision"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// newApp wires the HTTP routes. store may be nil, in which case reports are
// not persisted and the report and schema routes answer 503.
func newApp(v *decision.Validator, store decision.Store, bodyLimit int, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{BodyLimit: bodyLimit})

	requireStore := func(c fiber.Ctx) error {
		if store == nil {
			return c.Status(503).JSON(fiber.Map{"error": "report storage is not configured"})
		}
		return c.Next()
	}

	// ── Validation ────────────────────────────────────────────────────
	app.Post("/validate", func(c fiber.Ctx) error {
		r := v.ValidateBytes(c.Query("source", "request"), c.Body())
		if store != nil {
			if _, err := store.SaveReport(c.Context(), r); err != nil {
				logger.Error().Err(err).Msg("save report")
				return c.Status(500).JSON(fiber.Map{"error": err.Error()})
			}
		}
		logger.Info().
			Str("source", r.Source).
			Str("report", r.ID).
			Bool("valid", r.Valid).
			Int("diagnostics", len(r.Diagnostics)).
			Msg("document validated")
		if !r.Valid {
			return c.Status(422).JSON(r)
		}
		return c.JSON(r)
	})

	// ── Schema ────────────────────────────────────────────────────────
	app.Post("/schema", requireStore, func(c fiber.Ctx) error {
		if err := store.CreateSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema created"})
	})

	app.Delete("/schema", requireStore, func(c fiber.Ctx) error {
		if err := store.DropSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema dropped"})
	})

	// ── Reports ───────────────────────────────────────────────────────
	app.Get("/reports", requireStore, func(c fiber.Ctx) error {
		limit := 50
		if q := c.Query("limit"); q != "" {
			n, err := strconv.Atoi(q)
			if err != nil || n <= 0 {
				return c.Status(400).JSON(fiber.Map{"error": "invalid limit"})
			}
			limit = n
		}
		reports, err := store.ListReports(c.Context(), limit)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(reports)
	})

	app.Get("/reports/:id", requireStore, func(c fiber.Ctx) error {
		r, err := store.GetReport(c.Context(), c.Params("id"))
		if errors.Is(err, decision.ErrReportNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "report not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(r)
	})

	app.Delete("/reports/:id", requireStore, func(c fiber.Ctx) error {
		if err := store.DeleteReport(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	// ── Metrics ───────────────────────────────────────────────────────
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}
