package api

import (
	"bytes"
	"mime/multipart"
	"strconv"
)

// Form builds a multipart/form-data body. Methods chain; the first error
// sticks and surfaces from Encode.
type Form struct {
	buf bytes.Buffer
	mw  *multipart.Writer
	err error
}

func NewForm() *Form {
	f := &Form{}
	f.mw = multipart.NewWriter(&f.buf)
	return f
}

// Add appends a text field. The same key may be added repeatedly, which the
// backend reads as a list.
func (f *Form) Add(key, value string) *Form {
	if f.err == nil {
		f.err = f.mw.WriteField(key, value)
	}
	return f
}

func (f *Form) AddInt(key string, value int) *Form {
	return f.Add(key, strconv.Itoa(value))
}

// AddFile appends a file part under key with the given filename.
func (f *Form) AddFile(key, filename string, data []byte) *Form {
	if f.err != nil {
		return f
	}
	w, err := f.mw.CreateFormFile(key, filename)
	if err != nil {
		f.err = err
		return f
	}
	_, f.err = w.Write(data)
	return f
}

// Encode finalizes the body and returns it with its boundary-bearing
// content type.
func (f *Form) Encode() ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	if err := f.mw.Close(); err != nil {
		return nil, "", err
	}
	return f.buf.Bytes(), f.mw.FormDataContentType(), nil
}
