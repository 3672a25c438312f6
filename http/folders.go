// server/http/folders.go
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ViniZap4/noteful-server/domain"
	apperrors "github.com/ViniZap4/noteful-server/errors"
	"github.com/ViniZap4/noteful-server/id"
	"github.com/ViniZap4/noteful-server/store"
)

type folderRequest struct {
	Name string `json:"name" validate:"required"`
}

func (s *Server) HandleFolders(c *fiber.Ctx) error {
	folders, err := s.store.ListFolders(c.UserContext())
	if err != nil {
		return err
	}
	if folders == nil {
		folders = []domain.Folder{}
	}
	return c.JSON(folders)
}

func (s *Server) HandleGetFolder(c *fiber.Ctx) error {
	folderID, err := id.Parse(c.Params("id"), msgInvalidID)
	if err != nil {
		return err
	}

	folder, err := s.store.GetFolder(c.UserContext(), folderID)
	if err != nil {
		return folderError(err)
	}
	return c.JSON(folder)
}

func (s *Server) HandleCreateFolder(c *fiber.Ctx) error {
	var req folderRequest
	if err := s.parseBody(c, &req); err != nil {
		return err
	}

	folder, err := s.store.CreateFolder(c.UserContext(), req.Name)
	if err != nil {
		return folderError(err)
	}

	s.log.Info().Str("folder_id", folder.ID.String()).Msg("Folder created")

	c.Location(c.Path() + "/" + folder.ID.String())
	return c.Status(fiber.StatusCreated).JSON(folder)
}

func (s *Server) HandleUpdateFolder(c *fiber.Ctx) error {
	folderID, err := id.Parse(c.Params("id"), msgInvalidID)
	if err != nil {
		return err
	}

	var req folderRequest
	if err := s.parseBody(c, &req); err != nil {
		return err
	}

	folder, err := s.store.UpdateFolder(c.UserContext(), folderID, req.Name)
	if err != nil {
		return folderError(err)
	}
	return c.JSON(folder)
}

// HandleDeleteFolder detaches the folder from its notes before removing it.
func (s *Server) HandleDeleteFolder(c *fiber.Ctx) error {
	folderID, err := id.Parse(c.Params("id"), msgInvalidID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteFolder(c.UserContext(), folderID); err != nil {
		return folderError(err)
	}

	s.log.Info().Str("folder_id", folderID.String()).Msg("Folder deleted")
	return c.SendStatus(fiber.StatusNoContent)
}

func folderError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return apperrors.NotFound("Folder not found")
	case errors.Is(err, store.ErrDuplicate):
		return apperrors.DuplicateName("The folder name already exists")
	default:
		return err
	}
}
