// server/http/notes.go
package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ViniZap4/noteful-server/domain"
	apperrors "github.com/ViniZap4/noteful-server/errors"
	"github.com/ViniZap4/noteful-server/id"
	"github.com/ViniZap4/noteful-server/store"
)

type noteRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  *string  `json:"content"`
	FolderID string   `json:"folderId"`
	Tags     []string `json:"tags"`
}

// input checks the references and converts them to ids.
func (r noteRequest) input() (domain.NoteInput, error) {
	folderID, err := id.ParseOptional(r.FolderID, "Invalid `folderId` in request body")
	if err != nil {
		return domain.NoteInput{}, err
	}

	tagIDs, err := id.ParseAll(r.Tags, "Invalid `tag` id in request body")
	if err != nil {
		return domain.NoteInput{}, err
	}

	return domain.NoteInput{
		Title:    r.Title,
		Content:  r.Content,
		FolderID: folderID,
		TagIDs:   tagIDs,
	}, nil
}

// HandleNotes lists notes filtered by searchTerm, folderId and tagId. A
// malformed folderId or tagId cannot match anything, so it yields an empty
// list rather than an error.
func (s *Server) HandleNotes(c *fiber.Ctx) error {
	filter := domain.NoteFilter{SearchTerm: c.Query("searchTerm")}

	folderID, err := id.ParseOptional(c.Query("folderId"), "")
	if err != nil {
		return c.JSON([]domain.Note{})
	}
	filter.FolderID = folderID

	tagID, err := id.ParseOptional(c.Query("tagId"), "")
	if err != nil {
		return c.JSON([]domain.Note{})
	}
	filter.TagID = tagID

	notes, err := s.store.ListNotes(c.UserContext(), filter)
	if err != nil {
		return err
	}
	if notes == nil {
		notes = []domain.Note{}
	}
	return c.JSON(notes)
}

func (s *Server) HandleGetNote(c *fiber.Ctx) error {
	noteID, err := id.Parse(c.Params("id"), msgInvalidID)
	if err != nil {
		return err
	}

	note, err := s.store.GetNote(c.UserContext(), noteID)
	if err != nil {
		return noteError(err)
	}
	return c.JSON(note)
}

func (s *Server) HandleCreateNote(c *fiber.Ctx) error {
	var req noteRequest
	if err := s.parseBody(c, &req); err != nil {
		return err
	}

	in, err := req.input()
	if err != nil {
		return err
	}

	note, err := s.store.CreateNote(c.UserContext(), in)
	if err != nil {
		return noteError(err)
	}

	s.log.Info().Str("note_id", note.ID.String()).Msg("Note created")

	c.Location(c.Path() + "/" + note.ID.String())
	return c.Status(fiber.StatusCreated).JSON(note)
}

// HandleUpdateNote replaces title, content, folderId and tags wholesale.
func (s *Server) HandleUpdateNote(c *fiber.Ctx) error {
	noteID, err := id.Parse(c.Params("id"), msgInvalidID)
	if err != nil {
		return err
	}

	var req noteRequest
	if err := s.parseBody(c, &req); err != nil {
		return err
	}

	in, err := req.input()
	if err != nil {
		return err
	}

	note, err := s.store.UpdateNote(c.UserContext(), noteID, in)
	if err != nil {
		return noteError(err)
	}
	return c.JSON(note)
}

func (s *Server) HandleDeleteNote(c *fiber.Ctx) error {
	noteID, err := id.Parse(c.Params("id"), msgInvalidID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteNote(c.UserContext(), noteID); err != nil {
		return noteError(err)
	}

	s.log.Info().Str("note_id", noteID.String()).Msg("Note deleted")
	return c.SendStatus(fiber.StatusNoContent)
}

func noteError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.NotFound("Note not found")
	}
	return err
}
