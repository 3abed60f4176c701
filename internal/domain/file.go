package domain

import (
	"context"
	"io"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/storage"
	"github.com/studyhive-lab/backend/pkg/xcontext"
)

type FileDomain interface {
	UploadNoteFile(context.Context, *model.UploadNoteFileRequest) (*model.UploadNoteFileResponse, error)
	UploadAvatar(context.Context, *model.UploadAvatarRequest) (*model.UploadAvatarResponse, error)
}

type fileDomain struct {
	storage  storage.Storage
	userRepo repository.UserRepository
}

func NewFileDomain(storage storage.Storage, userRepo repository.UserRepository) *fileDomain {
	return &fileDomain{storage: storage, userRepo: userRepo}
}

func (d *fileDomain) UploadNoteFile(
	ctx context.Context, req *model.UploadNoteFileRequest,
) (*model.UploadNoteFileResponse, error) {
	object, err := formToUploadObject(ctx, "file", xcontext.Configs(ctx).File.MaterialBucket, "notes")
	if err != nil {
		return nil, err
	}

	uresp, err := d.storage.Upload(ctx, object)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upload file: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UploadNoteFileResponse{URL: uresp.Url}, nil
}

func (d *fileDomain) UploadAvatar(
	ctx context.Context, req *model.UploadAvatarRequest,
) (*model.UploadAvatarResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	object, err := formToUploadObject(ctx, "image", xcontext.Configs(ctx).File.AvatarBucket, "avatars")
	if err != nil {
		return nil, err
	}

	uresp, err := d.storage.Upload(ctx, object)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upload avatar: %v", err)
		return nil, errorx.Unknown
	}

	err = d.userRepo.UpdateByID(ctx, userID, &entity.User{AvatarURL: uresp.Url})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update avatar url: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UploadAvatarResponse{URL: uresp.Url}, nil
}

func formToUploadObject(ctx context.Context, key, bucket, prefix string) (*storage.UploadObject, error) {
	req := xcontext.HTTPRequest(ctx)
	if err := req.ParseMultipartForm(xcontext.Configs(ctx).File.MaxSize); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Request must be multipart form")
	}

	file, header, err := req.FormFile(key)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Cannot get the %s", key)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read file: %v", err)
		return nil, errorx.Unknown
	}

	return &storage.UploadObject{
		Bucket:   bucket,
		Prefix:   prefix,
		FileName: header.Filename,
		Mime:     header.Header.Get("Content-Type"),
		Data:     content,
	}, nil
}
