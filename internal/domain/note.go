package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/studyhive-lab/backend/internal/domain/entitlement"
	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/pubsub"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type NoteDomain interface {
	GetList(context.Context, *model.GetNotesRequest) (*model.GetNotesResponse, error)
	Get(context.Context, *model.GetNoteRequest) (*model.GetNoteResponse, error)
	Create(context.Context, *model.CreateNoteRequest) (*model.CreateNoteResponse, error)
	Update(context.Context, *model.UpdateNoteRequest) (*model.UpdateNoteResponse, error)
	Delete(context.Context, *model.DeleteNoteRequest) (*model.DeleteNoteResponse, error)
}

type noteDomain struct {
	noteRepo repository.NoteRepository
	loader   *entitlement.Loader
	refetch  *refetcher
}

func NewNoteDomain(
	noteRepo repository.NoteRepository,
	loader *entitlement.Loader,
	publisher pubsub.Publisher,
) *noteDomain {
	return &noteDomain{
		noteRepo: noteRepo,
		loader:   loader,
		refetch:  newRefetcher(publisher),
	}
}

func (d *noteDomain) GetList(
	ctx context.Context, req *model.GetNotesRequest,
) (*model.GetNotesResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	notes, err := d.noteRepo.GetList(ctx, repository.NoteFilter{
		Category:   req.Category,
		ActiveOnly: true,
		Offset:     req.Offset,
		Limit:      req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get notes: %v", err)
		return nil, errorx.Unknown
	}

	snapshot, err := d.loader.Load(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	clientNotes := []model.Note{}
	for _, n := range notes {
		hasAccess := entitlement.HasAccess(entitlement.NoteItem(&n), snapshot)
		clientNotes = append(clientNotes, model.ConvertNote(&n, hasAccess))
	}

	return &model.GetNotesResponse{Notes: clientNotes}, nil
}

func (d *noteDomain) Get(
	ctx context.Context, req *model.GetNoteRequest,
) (*model.GetNoteResponse, error) {
	note, err := d.noteRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found note")
		}

		xcontext.Logger(ctx).Errorf("Cannot get note: %v", err)
		return nil, errorx.Unknown
	}

	snapshot, err := d.loader.Load(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	hasAccess := entitlement.HasAccess(entitlement.NoteItem(note), snapshot)
	return &model.GetNoteResponse{Note: model.ConvertNote(note, hasAccess)}, nil
}

func (d *noteDomain) Create(
	ctx context.Context, req *model.CreateNoteRequest,
) (*model.CreateNoteResponse, error) {
	if req.Title == "" || req.Category == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a title and category")
	}

	note := &entity.Note{
		Base:      entity.Base{ID: uuid.NewString()},
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Price:     req.Price,
		FileURL:   req.FileURL,
		IsActive:  true,
		CreatedBy: xcontext.RequestUserID(ctx),
	}

	if err := d.noteRepo.Create(ctx, note); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create note: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.NotesBucket, note.ID)

	return &model.CreateNoteResponse{ID: note.ID}, nil
}

func (d *noteDomain) Update(
	ctx context.Context, req *model.UpdateNoteRequest,
) (*model.UpdateNoteResponse, error) {
	if _, err := d.noteRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found note")
		}

		xcontext.Logger(ctx).Errorf("Cannot get note: %v", err)
		return nil, errorx.Unknown
	}

	updateMap := map[string]any{}
	if req.Title != "" {
		updateMap["title"] = req.Title
	}

	if req.Content != "" {
		updateMap["content"] = req.Content
	}

	if req.Category != "" {
		updateMap["category"] = req.Category
	}

	if req.FileURL != "" {
		updateMap["file_url"] = req.FileURL
	}

	if req.Price != nil {
		updateMap["price"] = *req.Price
	}

	if req.IsActive != nil {
		updateMap["is_active"] = *req.IsActive
	}

	if len(updateMap) == 0 {
		return nil, errorx.New(errorx.BadRequest, "Nothing to update")
	}

	if err := d.noteRepo.UpdateByID(ctx, req.ID, updateMap); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update note: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.NotesBucket, req.ID)

	return &model.UpdateNoteResponse{}, nil
}

func (d *noteDomain) Delete(
	ctx context.Context, req *model.DeleteNoteRequest,
) (*model.DeleteNoteResponse, error) {
	if _, err := d.noteRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found note")
		}

		xcontext.Logger(ctx).Errorf("Cannot get note: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.noteRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete note: %v", err)
		return nil, errorx.Unknown
	}

	d.refetch.invalidate(ctx, model.NotesBucket, req.ID)

	return &model.DeleteNoteResponse{}, nil
}
