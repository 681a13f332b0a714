package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strings"
)

// Body encodes a request payload and reports its content type.
type Body interface {
	Encode() (io.Reader, string, error)
}

type jsonBody struct {
	v any
}

// JSONBody sends v as application/json.
func JSONBody(v any) Body {
	return jsonBody{v: v}
}

func (b jsonBody) Encode() (io.Reader, string, error) {
	payload, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", fmt.Errorf("error marshalling payload: %w", err)
	}
	return bytes.NewReader(payload), "application/json", nil
}

type formBody struct {
	values url.Values
}

// FormBody sends values as application/x-www-form-urlencoded.
func FormBody(values url.Values) Body {
	return formBody{values: values}
}

func (b formBody) Encode() (io.Reader, string, error) {
	return strings.NewReader(b.values.Encode()), "application/x-www-form-urlencoded", nil
}

// File is one file part of a multipart body.
type File struct {
	Field    string
	Filename string
	Content  io.Reader
}

type multipartBody struct {
	fields [][2]string
	files  []File
}

// MultipartBody sends fields, in order, followed by files as multipart/form-data.
func MultipartBody(fields [][2]string, files ...File) Body {
	return multipartBody{fields: fields, files: files}
}

func (b multipartBody) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range b.fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return nil, "", fmt.Errorf("error writing field %q: %w", field[0], err)
		}
	}

	for _, f := range b.files {
		part, err := writer.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("error creating form file %q: %w", f.Field, err)
		}
		if f.Content != nil {
			if _, err = io.Copy(part, f.Content); err != nil {
				return nil, "", fmt.Errorf("error copying form file %q: %w", f.Field, err)
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("error closing multipart writer: %w", err)
	}

	return &buf, writer.FormDataContentType(), nil
}
