// server/http/handlers.go
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ViniZap4/noteful-server/domain"
	apperrors "github.com/ViniZap4/noteful-server/errors"
	"github.com/ViniZap4/noteful-server/validation"
)

const msgInvalidID = "The `id` is not valid"

// Store is the persistence the handlers depend on. Lookups by id return
// store.ErrNotFound when nothing matches; folder writes return
// store.ErrDuplicate when the name is taken.
type Store interface {
	ListFolders(ctx context.Context) ([]domain.Folder, error)
	GetFolder(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	CreateFolder(ctx context.Context, name string) (*domain.Folder, error)
	UpdateFolder(ctx context.Context, id uuid.UUID, name string) (*domain.Folder, error)
	DeleteFolder(ctx context.Context, id uuid.UUID) error

	ListNotes(ctx context.Context, filter domain.NoteFilter) ([]domain.Note, error)
	GetNote(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	CreateNote(ctx context.Context, in domain.NoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, id uuid.UUID, in domain.NoteInput) (*domain.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error

	Ping(ctx context.Context) error
}

type Config struct {
	APIPrefix   string
	CORSOrigins string
}

type Server struct {
	store    Store
	log      zerolog.Logger
	validate *validation.Validator
}

func NewServer(store Store, log zerolog.Logger) *Server {
	return &Server{
		store:    store,
		log:      log,
		validate: validation.New(),
	}
}

// App builds the fiber application with every route mounted.
func (s *Server) App(cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "noteful",
		ErrorHandler:          s.handleError,
		DisableStartupMessage: true,
	})

	app.Use(fiberrecover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(s.log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	app.Get("/health", s.HandleHealth)

	api := app.Group(cfg.APIPrefix)

	api.Get("/folders", s.HandleFolders)
	api.Get("/folders/:id", s.HandleGetFolder)
	api.Post("/folders", s.HandleCreateFolder)
	api.Put("/folders/:id", s.HandleUpdateFolder)
	api.Delete("/folders/:id", s.HandleDeleteFolder)

	api.Get("/notes", s.HandleNotes)
	api.Get("/notes/:id", s.HandleGetNote)
	api.Post("/notes", s.HandleCreateNote)
	api.Put("/notes/:id", s.HandleUpdateNote)
	api.Delete("/notes/:id", s.HandleDeleteNote)

	app.Use(func(c *fiber.Ctx) error {
		return apperrors.NotFoundf("Cannot %s %s", c.Method(), c.Path())
	})

	return app
}

func (s *Server) HandleHealth(c *fiber.Ctx) error {
	if err := s.store.Ping(c.UserContext()); err != nil {
		s.log.Warn().Err(err).Msg("Health check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// parseBody decodes a JSON body into out and validates it. An empty body
// decodes to the zero value so that required-field checks report it.
func (s *Server) parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(out); err != nil {
			return apperrors.MalformedBody(err)
		}
	}
	return s.validate.Validate(out)
}

// handleError is the single place errors become responses.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Code != apperrors.CodeInternal {
		return c.Status(appErr.HTTPStatus()).JSON(appErr)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"code":    strings.ToUpper(strings.ReplaceAll(http.StatusText(fiberErr.Code), " ", "_")),
			"message": fiberErr.Message,
		})
	}

	s.log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("Unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(apperrors.ErrInternal)
}
