package onboard

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/validate"
)

// uploadOverhead leaves room for multipart boundaries and headers.
const uploadOverhead = 1 << 20

// sniffLen is how many leading bytes content detection looks at.
const sniffLen = 512

// multipartMemory is how much of the form is held in memory before parts
// spill to temporary files.
const multipartMemory = 512 << 10

// ReadImageUpload extracts the profile image from a multipart request.
//
// The declared content type is ignored; the type is sniffed from the bytes,
// and the bytes themselves are discarded.
func ReadImageUpload(writer http.ResponseWriter, request *http.Request) (ImageMeta, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, constants.MaxProfileImageBytes+uploadOverhead)

	if err := request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ImageMeta{}, validate.RequiredError(FieldImage, "Profile image must be 10MB or smaller")
		}
		return ImageMeta{}, validate.RequiredError(FieldImage, "Attach an image file")
	}
	defer func() { _ = request.MultipartForm.RemoveAll() }()

	file, header, err := request.FormFile(FieldImage)
	if err != nil {
		return ImageMeta{}, validate.RequiredError(FieldImage, "Attach an image file")
	}
	defer file.Close()

	return describe(file, header)
}

func describe(file multipart.File, header *multipart.FileHeader) (ImageMeta, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return ImageMeta{}, validate.RequiredError(FieldImage, "Image could not be read")
	}

	return ImageMeta{
		Filename:    filepath.Base(header.Filename),
		Size:        header.Size,
		ContentType: http.DetectContentType(head[:n]),
	}, nil
}
