package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"docuagent/internal/model"
)

const (
	documentsPath = "/documents/"
	processPath   = "/process-document/"
	uploadField   = "file"
)

// DocumentAPI is the document resource as consumed by the service layer.
type DocumentAPI interface {
	// List returns documents in backend order. A positive limit caps the result count.
	List(ctx context.Context, limit int) ([]model.Document, error)
	// Get returns one document; a missing id surfaces as a 404 *APIError.
	Get(ctx context.Context, id string) (*model.Document, error)
	// Upload sends the whole file in one multipart request for processing.
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (*model.UploadResult, error)
	// Delete removes a document. The response body is ignored.
	Delete(ctx context.Context, id string) error
}

// DocumentResource wraps the /documents and /process-document endpoints.
type DocumentResource struct {
	c *Client
}

var _ DocumentAPI = (*DocumentResource)(nil)

func (r *DocumentResource) List(ctx context.Context, limit int) ([]model.Document, error) {
	docs := make([]model.Document, 0)
	if err := r.c.Do(ctx, withLimit(documentsPath, limit), RequestOptions{Route: documentsPath}, &docs); err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []model.Document{}
	}
	return docs, nil
}

func (r *DocumentResource) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	var doc model.Document
	if err := r.c.Do(ctx, itemPath(documentsPath, id), RequestOptions{Route: documentsPath + "{id}"}, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *DocumentResource) Upload(ctx context.Context, filename, contentType string, rd io.Reader) (*model.UploadResult, error) {
	if rd == nil {
		return nil, ErrReaderNil
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := createFilePart(writer, filename, contentType)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, rd); err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	opts := RequestOptions{
		Method:       http.MethodPost,
		Body:         body,
		Header:       http.Header{"Content-Type": []string{writer.FormDataContentType()}},
		ErrorMessage: UploadErrorMessage,
		Route:        processPath,
	}
	var res model.UploadResult
	if err := r.c.Do(ctx, processPath, opts, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *DocumentResource) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	opts := RequestOptions{Method: http.MethodDelete, Route: documentsPath + "{id}"}
	return r.c.Do(ctx, itemPath(documentsPath, id), opts, nil)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// createFilePart is multipart.Writer.CreateFormFile with a caller-chosen part Content-Type.
func createFilePart(w *multipart.Writer, filename, contentType string) (io.Writer, error) {
	if contentType == "" {
		return w.CreateFormFile(uploadField, filename)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(uploadField), quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)
	return w.CreatePart(h)
}
