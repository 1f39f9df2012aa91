package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/bnema/estate-admin-cli/internal/domain"
)

// encodeBody returns the request body and, for multipart forms, the
// Content-Type carrying the generated boundary.
func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *domain.MultipartForm:
		if b == nil {
			return nil, "", nil
		}
		return encodeMultipart(b)
	case domain.MultipartForm:
		return encodeMultipart(&b)
	case json.RawMessage:
		return bytes.NewReader(b), "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	case string:
		return strings.NewReader(b), "", nil
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, "", fmt.Errorf("encode json body: %w", err)
		}
		return bytes.NewReader(encoded), "", nil
	}
}

func encodeMultipart(form *domain.MultipartForm) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range form.Fields {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return nil, "", fmt.Errorf("write form field %q: %w", field.Name, err)
		}
	}

	for _, file := range form.Files {
		part, err := writer.CreatePart(fileHeader(file))
		if err != nil {
			return nil, "", fmt.Errorf("create form file %q: %w", file.FileName, err)
		}
		if file.Content == nil {
			continue
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, "", fmt.Errorf("copy form file %q: %w", file.FileName, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func fileHeader(file domain.FormFile) textproto.MIMEHeader {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(file.FileName)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(file.Field), quoteEscaper.Replace(filepath.Base(file.FileName))))
	header.Set("Content-Type", contentType)
	return header
}

func bodyKind(body any) string {
	switch b := body.(type) {
	case nil:
		return "none"
	case *domain.MultipartForm:
		if b == nil {
			return "none"
		}
		return "multipart"
	case domain.MultipartForm:
		return "multipart"
	default:
		return "json"
	}
}
