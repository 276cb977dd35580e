package service

import (
	"context"
	"errors"
	"path"
	"sort"
	"strings"

	"docuagent/internal/client"
	"docuagent/internal/model"
)

var (
	ErrInvalidSort   = errors.New("sort must be one of: date, name")
	ErrInvalidFilter = errors.New("invalid filter value")
)

// Sort orders accepted by DocumentService.List.
const (
	SortByDate = "date"
	SortByName = "name"
)

// DocumentQuery narrows and orders the document list.
type DocumentQuery struct {
	Search string
	Sort   string
}

// DocumentItem is a document row annotated with its risk classification.
type DocumentItem struct {
	model.Document
	Risky bool `json:"has_risks"`
}

// DocumentDetail is the single-document view.
type DocumentDetail struct {
	model.Document
	Risky     bool     `json:"has_risks"`
	RiskLines []string `json:"risk_lines"`
}

// DocumentListResult is the service-level DTO for the documents page.
type DocumentListResult struct {
	Items []DocumentItem `json:"data"`
	Total int            `json:"total"`
}

// UploadOutcome is what the dashboard needs after a successful upload.
type UploadOutcome struct {
	ID       string         `json:"id"`
	Location string         `json:"location"`
	Message  string         `json:"message,omitempty"`
	Document model.Document `json:"document"`
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// List fetches all documents, then filters by Search (filename or summary,
	// case-insensitive) and orders them newest first or by filename.
	List(ctx context.Context, q DocumentQuery) (*DocumentListResult, error)

	// Get returns a single document with its risk lines split out.
	Get(ctx context.Context, id string) (*DocumentDetail, error)

	// Upload runs the client-side gate, then posts the file for processing.
	Upload(ctx context.Context, in UploadInput) (*UploadOutcome, error)

	// Delete removes a document by ID.
	Delete(ctx context.Context, id string) error
}

type documentService struct {
	docs client.DocumentAPI
	gate *UploadGate
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(docs client.DocumentAPI, gate *UploadGate) DocumentService {
	if gate == nil {
		gate = NewUploadGate(0)
	}
	return &documentService{docs: docs, gate: gate}
}

func (s *documentService) List(ctx context.Context, q DocumentQuery) (*DocumentListResult, error) {
	order := strings.ToLower(strings.TrimSpace(q.Sort))
	if order == "" {
		order = SortByDate
	}
	if order != SortByDate && order != SortByName {
		return nil, ErrInvalidSort
	}

	docs, err := s.docs.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	items := make([]DocumentItem, 0, len(docs))
	for _, d := range FilterDocuments(docs, q.Search) {
		items = append(items, DocumentItem{Document: d, Risky: d.HasRisks()})
	}
	SortDocuments(items, order)

	return &DocumentListResult{Items: items, Total: len(items)}, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*DocumentDetail, error) {
	if id == "" {
		return nil, client.ErrIDRequired
	}
	doc, err := s.docs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &DocumentDetail{Document: *doc, Risky: doc.HasRisks(), RiskLines: doc.RiskLines()}, nil
}

func (s *documentService) Upload(ctx context.Context, in UploadInput) (*UploadOutcome, error) {
	file, err := s.gate.Check(in)
	if err != nil {
		return nil, err
	}

	res, err := s.docs.Upload(ctx, in.Filename, file.ContentType, file.Reader)
	if err != nil {
		return nil, err
	}
	return &UploadOutcome{
		ID:       res.Data.ID,
		Location: DocumentLocation(res.Data.ID),
		Message:  res.Message,
		Document: res.Data,
	}, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return client.ErrIDRequired
	}
	return s.docs.Delete(ctx, id)
}

// DocumentLocation is the dashboard path of a document's detail view.
func DocumentLocation(id string) string {
	return path.Join("/documents", id)
}

// FilterDocuments keeps documents whose filename or summary contains search,
// ignoring case. An empty search keeps everything.
func FilterDocuments(docs []model.Document, search string) []model.Document {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		if needle == "" ||
			strings.Contains(strings.ToLower(d.Filename), needle) ||
			strings.Contains(strings.ToLower(d.Summary), needle) {
			out = append(out, d)
		}
	}
	return out
}

// SortDocuments orders items in place. Unparseable dates sort last.
func SortDocuments(items []DocumentItem, order string) {
	switch order {
	case SortByName:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := strings.ToLower(items[i].Filename), strings.ToLower(items[j].Filename)
			if a == b {
				return items[i].Filename < items[j].Filename
			}
			return a < b
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i].CreatedAt.Time, items[j].CreatedAt.Time
			if a.IsZero() != b.IsZero() {
				return b.IsZero()
			}
			return a.After(b)
		})
	}
}
