package service

import (
	"context"
	"errors"
	"testing"

	"PifKeeper/internal/model"
	"PifKeeper/internal/onepif"
	"PifKeeper/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Мок журнала импортов
type mockImportLogRepo struct{ mock.Mock }

func (m *mockImportLogRepo) Create(ctx context.Context, log *model.ImportLog) error {
	return m.Called(ctx, log).Error(0)
}
func (m *mockImportLogRepo) ListBySubject(ctx context.Context, subject string) ([]model.ImportLog, error) {
	args := m.Called(ctx, subject)
	if v, ok := args.Get(0).([]model.ImportLog); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockImportLogRepo) GetEntries(ctx context.Context, subject, id string) ([]model.ImportedEntry, error) {
	args := m.Called(ctx, subject, id)
	if v, ok := args.Get(0).([]model.ImportedEntry); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ImportLogRepository = (*mockImportLogRepo)(nil)

const sampleText = `{"uuid":"A","typeName":"webforms.WebForm","title":"Mail","secureContents":{"fields":[{"designation":"username","value":"alice"}]}}
***5642bee8-a5ff-11dc-8314-0800200c9a66***
{"uuid":"B","typeName":"securenotes.SecureNote","title":"Note"}
***5642bee8-a5ff-11dc-8314-0800200c9a66***
{"uuid":"C","typeName":"webforms.WebForm","title":"Gone","trashed":true}
***5642bee8-a5ff-11dc-8314-0800200c9a66***
{"uuid":"D","typeName":"system.folder.SavedSearch","title":"Search"}`

func TestImportService_Import_StoresLog(t *testing.T) {
	r := new(mockImportLogRepo)
	svc := NewImportService(r, nil)

	var saved *model.ImportLog
	r.On("Create", mock.Anything, mock.AnythingOfType("*model.ImportLog")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*model.ImportLog) }).
		Return(nil).Once()

	out, err := svc.Import(context.Background(), "alice", ImportInput{
		Text:        sampleText,
		Attachments: onepif.AttachmentMap{"A": {"k.txt": []byte("K")}},
	})
	require.NoError(t, err)
	r.AssertExpectations(t)

	require.NotNil(t, saved)
	assert.Equal(t, "alice", saved.Subject)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, 2, saved.Groups) // Logins, Secure Notes
	assert.Equal(t, 2, saved.Imported)
	assert.Equal(t, 1, saved.Trashed)
	assert.Equal(t, 1, saved.Unsupported)

	require.Len(t, saved.Entries, 2)
	assert.Equal(t, model.ImportedEntry{Position: 0, Group: "Logins", Title: "Mail", Username: "alice", Attachments: 1}, saved.Entries[0])
	assert.Equal(t, "Secure Notes", saved.Entries[1].Group)

	assert.Equal(t, saved.ID, out.Log.ID)
	_, entries := out.Root.Count()
	assert.Equal(t, 2, entries)
}

func TestImportService_Import_Errors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := new(mockImportLogRepo)
	svc := NewImportService(r, zap.New(core).Sugar())
	ctx := context.Background()

	_, err := svc.Import(ctx, "", ImportInput{Text: sampleText})
	assert.ErrorIs(t, err, ErrEmptySubject)

	_, err = svc.Import(ctx, "alice", ImportInput{Text: "not json"})
	assert.ErrorIs(t, err, onepif.ErrCouldNotConvertStringToData)

	_, err = svc.Import(ctx, "alice", ImportInput{Text: `{"typeName":"x.Unknown"}`, Strict: true})
	var ute *onepif.UnknownRecordTypeError
	require.ErrorAs(t, err, &ute)
	assert.Equal(t, "x.Unknown", ute.TypeName)
	assert.Equal(t, 2, logs.FilterMessage("import rejected").Len())

	r.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
	_, err = svc.Import(ctx, "alice", ImportInput{Text: sampleText})
	assert.EqualError(t, err, "db down")
	assert.Equal(t, 1, logs.FilterMessage("failed to save import log").Len())
	r.AssertExpectations(t)
}

func TestImportService_ListAndEntries(t *testing.T) {
	r := new(mockImportLogRepo)
	svc := NewImportService(r, zap.NewNop().Sugar())
	ctx := context.Background()

	r.On("ListBySubject", mock.Anything, "alice").Return([]model.ImportLog{{ID: "1"}}, nil).Once()
	r.On("GetEntries", mock.Anything, "alice", "1").Return([]model.ImportedEntry{{Title: "Mail"}}, nil).Once()

	logs, err := svc.List(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	entries, err := svc.Entries(ctx, "alice", "1")
	require.NoError(t, err)
	assert.Equal(t, "Mail", entries[0].Title)

	_, err = svc.List(ctx, "")
	assert.ErrorIs(t, err, ErrEmptySubject)
	_, err = svc.Entries(ctx, "", "1")
	assert.ErrorIs(t, err, ErrEmptySubject)
	r.AssertExpectations(t)
}
