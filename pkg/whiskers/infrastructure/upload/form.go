package upload

import (
	"bytes"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"

	"kgeyst.com/whiskers/pkg/whiskers/domain"
)

// The endpoint only looks at the file part, but expects both fields to be present. The media type is always
// image/png, whatever the actual format is.
const (
	nameFieldName  = "name"
	nameFieldValue = "image"
	fileFieldName  = "file"
	fileName       = "image.png"
	fileMediaType  = "image/png"
)

func buildUploadForm(data []byte, mediaType string) (*bytes.Buffer, string, error) {
	if _, _, err := mime.ParseMediaType(mediaType); err != nil {
		return nil, "", fmt.Errorf("%w: invalid media type %q: %v", domain.ErrBuildRequest, mediaType, err)
	}
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField(nameFieldName, nameFieldValue); err != nil {
		return nil, "", fmt.Errorf("%w: write %s field: %v", domain.ErrBuildRequest, nameFieldName, err)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileFieldName, fileName))
	header.Set("Content-Type", mediaType)
	filePart, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("%w: create %s part: %v", domain.ErrBuildRequest, fileFieldName, err)
	}
	if _, err := filePart.Write(data); err != nil {
		return nil, "", fmt.Errorf("%w: write image data: %v", domain.ErrBuildRequest, err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("%w: close multipart writer: %v", domain.ErrBuildRequest, err)
	}
	return &buf, writer.FormDataContentType(), nil
}
