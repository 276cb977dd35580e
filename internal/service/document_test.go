package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"docuagent/internal/client"
	clientMocks "docuagent/internal/client/mocks"
	"docuagent/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleDocuments() []model.Document {
	return []model.Document{
		{ID: "1", Filename: "beta-contract.pdf", Summary: "Supply agreement", Risks: model.NoIssuesFound, CreatedAt: model.ParseTimestamp("2024-01-02T10:00:00")},
		{ID: "2", Filename: "Alpha-invoice.pdf", Summary: "Invoice for March", Risks: "- Late fee clause", CreatedAt: model.ParseTimestamp("2024-03-01T09:00:00Z")},
		{ID: "3", Filename: "gamma.txt", Summary: "Meeting notes mention an INVOICE", Risks: "", CreatedAt: model.ParseTimestamp("")},
	}
}

func ids(items []DocumentItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestDocumentService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		query      DocumentQuery
		setupMocks func(m *clientMocks.MockDocumentAPI)
		wantIDs    []string
		wantErr    error
	}{
		{
			name:  "default sort newest first, undated last",
			query: DocumentQuery{},
			setupMocks: func(m *clientMocks.MockDocumentAPI) {
				m.On("List", ctx, 0).Return(sampleDocuments(), nil)
			},
			wantIDs: []string{"2", "1", "3"},
		},
		{
			name:  "sort by name ignores case",
			query: DocumentQuery{Sort: "name"},
			setupMocks: func(m *clientMocks.MockDocumentAPI) {
				m.On("List", ctx, 0).Return(sampleDocuments(), nil)
			},
			wantIDs: []string{"2", "1", "3"},
		},
		{
			name:  "search filename and summary",
			query: DocumentQuery{Search: "invoice", Sort: "name"},
			setupMocks: func(m *clientMocks.MockDocumentAPI) {
				m.On("List", ctx, 0).Return(sampleDocuments(), nil)
			},
			wantIDs: []string{"2", "3"},
		},
		{
			name:  "empty backend list",
			query: DocumentQuery{},
			setupMocks: func(m *clientMocks.MockDocumentAPI) {
				m.On("List", ctx, 0).Return([]model.Document{}, nil)
			},
			wantIDs: []string{},
		},
		{
			name:       "invalid sort",
			query:      DocumentQuery{Sort: "size"},
			setupMocks: func(m *clientMocks.MockDocumentAPI) {},
			wantErr:    ErrInvalidSort,
		},
		{
			name:  "backend error propagates",
			query: DocumentQuery{},
			setupMocks: func(m *clientMocks.MockDocumentAPI) {
				m.On("List", ctx, 0).Return(nil, &client.APIError{StatusCode: 500, Message: client.DefaultErrorMessage})
			},
			wantErr: &client.APIError{StatusCode: 500, Message: client.DefaultErrorMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(clientMocks.MockDocumentAPI)
			tt.setupMocks(m)
			svc := NewDocumentService(m, nil)

			res, err := svc.List(ctx, tt.query)

			if tt.wantErr != nil {
				assert.Nil(t, res)
				var apiErr *client.APIError
				if errors.As(tt.wantErr, &apiErr) {
					assert.Equal(t, tt.wantErr, err)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				require.NoError(t, err)
				assert.NotNil(t, res.Items)
				assert.Equal(t, tt.wantIDs, ids(res.Items))
				assert.Equal(t, len(tt.wantIDs), res.Total)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestDocumentService_ListClassifiesRisks(t *testing.T) {
	ctx := context.Background()
	m := new(clientMocks.MockDocumentAPI)
	m.On("List", ctx, 0).Return(sampleDocuments(), nil)

	res, err := NewDocumentService(m, nil).List(ctx, DocumentQuery{Sort: SortByName})
	require.NoError(t, err)

	risky := map[string]bool{}
	for _, it := range res.Items {
		risky[it.ID] = it.Risky
	}
	assert.Equal(t, map[string]bool{"1": false, "2": true, "3": false}, risky)
}

func TestDocumentService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("detail with risk lines", func(t *testing.T) {
		m := new(clientMocks.MockDocumentAPI)
		m.On("Get", ctx, "2").Return(&sampleDocuments()[1], nil)

		detail, err := NewDocumentService(m, nil).Get(ctx, "2")
		require.NoError(t, err)
		assert.True(t, detail.Risky)
		assert.Equal(t, []string{"Late fee clause"}, detail.RiskLines)
		m.AssertExpectations(t)
	})

	t.Run("not found passes through", func(t *testing.T) {
		m := new(clientMocks.MockDocumentAPI)
		m.On("Get", ctx, "404").Return(nil, &client.APIError{StatusCode: 404, Message: "Document not found"})

		_, err := NewDocumentService(m, nil).Get(ctx, "404")
		assert.True(t, client.IsNotFound(err))
	})

	t.Run("id required", func(t *testing.T) {
		m := new(clientMocks.MockDocumentAPI)
		_, err := NewDocumentService(m, nil).Get(ctx, "")
		assert.ErrorIs(t, err, client.ErrIDRequired)
		m.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()
	content := append(append([]byte{}, pdfBytes...), bytes.Repeat([]byte{0}, 5*1024*1024)...)

	tests := []struct {
		name       string
		in         UploadInput
		setupMocks func(m *clientMocks.MockDocumentAPI)
		want       *UploadOutcome
		wantErr    error
	}{
		{
			name: "5 MB pdf",
			in:   UploadInput{Filename: "report.pdf", Size: int64(len(content)), Content: bytes.NewReader(content)},
			setupMocks: func(m *clientMocks.MockDocumentAPI) {
				m.On("Upload", ctx, "report.pdf", "application/pdf", mock.Anything).
					Return(&model.UploadResult{Message: "Document processed", Data: model.Document{ID: "42"}}, nil)
			},
			want: &UploadOutcome{ID: "42", Location: "/documents/42", Message: "Document processed", Document: model.Document{ID: "42"}},
		},
		{
			name:       "gate rejects before network",
			in:         UploadInput{Filename: "photo.png", Size: int64(len(pngBytes)), Content: bytes.NewReader(pngBytes)},
			setupMocks: func(m *clientMocks.MockDocumentAPI) {},
			wantErr:    ErrUnsupportedType,
		},
		{
			name: "backend failure",
			in:   UploadInput{Filename: "notes.txt", Size: 5, Content: bytes.NewReader([]byte("hello"))},
			setupMocks: func(m *clientMocks.MockDocumentAPI) {
				m.On("Upload", ctx, "notes.txt", "text/plain", mock.Anything).
					Return(nil, &client.APIError{StatusCode: 500, Message: client.UploadErrorMessage})
			},
			wantErr: &client.APIError{StatusCode: 500, Message: client.UploadErrorMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(clientMocks.MockDocumentAPI)
			tt.setupMocks(m)
			svc := NewDocumentService(m, NewUploadGate(DefaultMaxUploadBytes))

			got, err := svc.Upload(ctx, tt.in)

			if tt.wantErr != nil {
				assert.Nil(t, got)
				var apiErr *client.APIError
				if errors.As(tt.wantErr, &apiErr) {
					assert.Equal(t, tt.wantErr, err)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()

	m := new(clientMocks.MockDocumentAPI)
	m.On("Delete", ctx, "7").Return(nil)
	svc := NewDocumentService(m, nil)

	assert.NoError(t, svc.Delete(ctx, "7"))
	assert.ErrorIs(t, svc.Delete(ctx, ""), client.ErrIDRequired)
	m.AssertExpectations(t)
}

func TestDocumentLocation(t *testing.T) {
	assert.Equal(t, "/documents/42", DocumentLocation("42"))
}
