package profile

import (
	"fmt"
	"io"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/exceptions"
	"konsulin-portal/internal/pkg/utils"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Picture is the profile picture field of the profile form. Exactly one of
// Unset, Existing and PendingUpload.
type Picture interface {
	picture()
}

// Unset leaves the stored picture untouched.
type Unset struct{}

// Existing keeps an already uploaded picture, referenced by URL.
type Existing struct {
	URL string
}

// PendingUpload replaces the picture with new bytes.
type PendingUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (Unset) picture()         {}
func (Existing) picture()      {}
func (PendingUpload) picture() {}

// ValidatePicture checks a pending upload's format and size. Other variants
// are always valid.
func ValidatePicture(picture Picture, maxSizeInMB int) error {
	switch p := picture.(type) {
	case nil, Unset, Existing:
		return nil
	case PendingUpload:
		if err := utils.ValidateImageFormat(p.Filename, constvars.ImageAllowedProfilePictureFormats); err != nil {
			return exceptions.ErrImageValidation(err)
		}
		if err := utils.ValidateImageSize(p.Data, maxSizeInMB); err != nil {
			return exceptions.ErrImageValidation(err)
		}
		return nil
	default:
		return exceptions.ErrUnknownPictureVariant(fmt.Sprintf("%T", picture))
	}
}

// writePicture adds the picture to w. Unset writes nothing.
func writePicture(w *multipart.Writer, picture Picture) error {
	switch p := picture.(type) {
	case nil, Unset:
		return nil
	case Existing:
		return w.WriteField(constvars.FormFieldProfilePicture, p.URL)
	case PendingUpload:
		contentType := p.ContentType
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}
		header := make(textproto.MIMEHeader)
		header.Set(constvars.HeaderContentDisposition, fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			constvars.FormFieldProfilePicture, escapeQuotes(p.Filename)))
		header.Set(constvars.HeaderContentType, contentType)
		part, err := w.CreatePart(header)
		if err != nil {
			return err
		}
		_, err = part.Write(p.Data)
		return err
	default:
		return exceptions.ErrUnknownPictureVariant(fmt.Sprintf("%T", picture))
	}
}

// PictureFromMultipart reads the picture field of a parsed multipart form.
// A file part wins over a text value; neither yields Unset.
func PictureFromMultipart(form *multipart.Form) (Picture, error) {
	if form == nil {
		return Unset{}, nil
	}
	if files := form.File[constvars.FormFieldProfilePicture]; len(files) > 0 {
		fileHeader := files[0]
		file, err := fileHeader.Open()
		if err != nil {
			return nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		return PendingUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
			Data:        data,
		}, nil
	}
	if values := form.Value[constvars.FormFieldProfilePicture]; len(values) > 0 && strings.TrimSpace(values[0]) != "" {
		return Existing{URL: strings.TrimSpace(values[0])}, nil
	}
	return Unset{}, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
