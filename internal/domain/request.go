package domain

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// Request describes a single API call. Body may be nil, a value to encode as
// JSON, pre-encoded JSON ([]byte or json.RawMessage) or a *MultipartForm.
type Request struct {
	Method  Method
	Headers map[string]string
	Body    any
}

func (r Request) MethodOrDefault() Method {
	if r.Method == "" {
		return MethodGet
	}
	return r.Method
}

type FormField struct {
	Name  string
	Value string
}

type FormFile struct {
	Field    string
	FileName string
	Content  io.Reader
}

// MultipartForm is sent as multipart/form-data exactly as assembled. The
// boundary, and therefore the Content-Type header, is chosen by the encoder.
type MultipartForm struct {
	Fields []FormField
	Files  []FormFile
}

func (f *MultipartForm) Add(name, value string) {
	f.Fields = append(f.Fields, FormField{Name: name, Value: value})
}

func (f *MultipartForm) AddFile(field, fileName string, content io.Reader) {
	f.Files = append(f.Files, FormFile{Field: field, FileName: fileName, Content: content})
}

// Response is the parsed result of a successful call: raw JSON when the server
// declared a JSON content type, text otherwise.
type Response struct {
	StatusCode  int
	ContentType string
	JSON        json.RawMessage
	Text        string
}

var ErrResponseNotJSON = errors.New("response is not json")

func (r Response) IsJSON() bool {
	return r.JSON != nil
}

func (r Response) Decode(v any) error {
	if !r.IsJSON() {
		return ErrResponseNotJSON
	}
	return json.Unmarshal(r.JSON, v)
}

func (r Response) String() string {
	if r.IsJSON() {
		return strings.TrimSpace(string(r.JSON))
	}
	return r.Text
}
