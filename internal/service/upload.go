package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrFileRequired    = errors.New("please select a file to upload")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("invalid file type: please upload PDF, DOCX, TXT, CSV, or Excel files")
)

// DefaultMaxUploadBytes is the 10 MB limit applied when none is configured.
const DefaultMaxUploadBytes int64 = 10 * 1024 * 1024

// sniffLen matches mimetype's default read limit.
const sniffLen = 3072

// AllowedTypes are the MIME types the backend can process.
var AllowedTypes = []string{
	"application/pdf",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"text/csv",
}

// extType describes a known extension: the type sent to the backend and the
// sniffed container its content must at least match.
type extType struct {
	mime      string
	container string
}

var knownExtensions = map[string]extType{
	".pdf":  {mime: "application/pdf", container: "application/pdf"},
	".docx": {mime: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", container: "application/zip"},
	".xlsx": {mime: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", container: "application/zip"},
	".xls":  {mime: "application/vnd.ms-excel", container: "application/x-ole-storage"},
	".txt":  {mime: "text/plain", container: "text/plain"},
	".csv":  {mime: "text/csv", container: "text/plain"},
}

// UploadInput is a file picked for upload. Size is -1 when unknown.
type UploadInput struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// GatedFile is an upload that passed the gate. Reader replays the sniffed
// prefix and fails with ErrFileTooLarge if the content outgrows the limit.
type GatedFile struct {
	ContentType string
	Reader      io.Reader
}

// UploadGate validates files before they reach the network.
type UploadGate struct {
	maxBytes int64
}

// NewUploadGate returns a gate enforcing maxBytes (DefaultMaxUploadBytes when <= 0).
func NewUploadGate(maxBytes int64) *UploadGate {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &UploadGate{maxBytes: maxBytes}
}

// MaxBytes returns the enforced size limit.
func (g *UploadGate) MaxBytes() int64 { return g.maxBytes }

// Check rejects missing, empty, oversized and unsupported files.
func (g *UploadGate) Check(in UploadInput) (*GatedFile, error) {
	if in.Content == nil || strings.TrimSpace(in.Filename) == "" || in.Size == 0 {
		return nil, ErrFileRequired
	}
	if in.Size > g.maxBytes {
		return nil, g.tooLarge()
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(in.Content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return nil, ErrFileRequired
	}

	contentType, ok := DetectContentType(in.Filename, head)
	if !ok {
		return nil, ErrUnsupportedType
	}

	return &GatedFile{
		ContentType: contentType,
		Reader: &limitedReader{
			r:    io.MultiReader(bytes.NewReader(head), in.Content),
			left: g.maxBytes,
			err:  g.tooLarge(),
		},
	}, nil
}

func (g *UploadGate) tooLarge() error {
	return fmt.Errorf("%w: maximum size is %s", ErrFileTooLarge, humanize.IBytes(uint64(g.maxBytes)))
}

// DetectContentType sniffs head and decides the Content-Type to upload with.
// A recognised extension wins when the sniffed content matches its container,
// e.g. a .csv sniffed as text/plain or a .docx sniffed as application/zip.
func DetectContentType(filename string, head []byte) (string, bool) {
	detected := mimetype.Detect(head)

	if ext, ok := knownExtensions[strings.ToLower(filepath.Ext(filename))]; ok {
		if detected.Is(ext.mime) || inChain(detected, ext.container) {
			return ext.mime, true
		}
		return "", false
	}

	for m := detected; m != nil; m = m.Parent() {
		for _, allowed := range AllowedTypes {
			if m.Is(allowed) {
				return allowed, true
			}
		}
	}
	return "", false
}

func inChain(m *mimetype.MIME, want string) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is(want) {
			return true
		}
	}
	return false
}

type limitedReader struct {
	r    io.Reader
	left int64
	err  error
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.left < 0 {
		return 0, l.err
	}
	if int64(len(p)) > l.left+1 {
		p = p[:l.left+1]
	}
	n, err := l.r.Read(p)
	l.left -= int64(n)
	if l.left < 0 {
		return n, l.err
	}
	return n, err
}
