package domain

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/testutil"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_fileDomain_UploadAvatar(t *testing.T) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("image", "avatar.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	request := httptest.NewRequest("POST", "/uploadAvatar", body)
	request.Header.Add("Content-Type", writer.FormDataContentType())

	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithHTTPRequest(ctx, request)
	ctx = xcontext.WithRequestUserID(ctx, testutil.User1.ID)

	userRepo := repository.NewUserRepository()
	fileDomain := NewFileDomain(&testutil.MockStorage{}, userRepo)

	resp, err := fileDomain.UploadAvatar(ctx, &model.UploadAvatarRequest{})
	require.NoError(t, err)
	require.Equal(t, "http://storage.local/avatars/avatar.png", resp.URL)

	user, err := userRepo.GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, resp.URL, user.AvatarURL)
}

func Test_fileDomain_UploadNoteFile(t *testing.T) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("file", "summary.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("pdf-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	request := httptest.NewRequest("POST", "/uploadNoteFile", body)
	request.Header.Add("Content-Type", writer.FormDataContentType())

	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithHTTPRequest(ctx, request)
	ctx = xcontext.WithRequestUserID(ctx, testutil.Admin.ID)

	fileDomain := NewFileDomain(&testutil.MockStorage{}, repository.NewUserRepository())

	resp, err := fileDomain.UploadNoteFile(ctx, &model.UploadNoteFileRequest{})
	require.NoError(t, err)
	require.Equal(t, "http://storage.local/materials/summary.pdf", resp.URL)
}

func Test_fileDomain_UploadNoteFile_notMultipart(t *testing.T) {
	request := httptest.NewRequest("POST", "/uploadNoteFile", bytes.NewBufferString("plain body"))

	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	ctx = xcontext.WithHTTPRequest(ctx, request)
	ctx = xcontext.WithRequestUserID(ctx, testutil.Admin.ID)

	fileDomain := NewFileDomain(&testutil.MockStorage{}, repository.NewUserRepository())

	_, err := fileDomain.UploadNoteFile(ctx, &model.UploadNoteFileRequest{})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.BadRequest, errx.Code)
}
