package profile

import (
	"bytes"
	"konsulin-portal/internal/pkg/constvars"
	"konsulin-portal/internal/pkg/dto/requests"
	"konsulin-portal/internal/pkg/exceptions"
	"konsulin-portal/internal/pkg/utils"
	"mime/multipart"
	"strings"
)

// Form is a profile update. Blank fields are not sent.
type Form struct {
	Fields  requests.UpdateProfile
	Picture Picture
}

func FormFromMultipart(form *multipart.Form) (*Form, error) {
	result := &Form{Picture: Unset{}}
	if form == nil {
		return result, nil
	}

	value := func(key string) string {
		if values := form.Value[key]; len(values) > 0 {
			return strings.TrimSpace(values[0])
		}
		return ""
	}
	result.Fields = requests.UpdateProfile{
		Fullname:    value(constvars.FormFieldFullname),
		PhoneNumber: value(constvars.FormFieldPhoneNumber),
		Gender:      value(constvars.FormFieldGender),
		BirthDate:   value(constvars.FormFieldBirthDate),
		Bio:         value(constvars.FormFieldBio),
	}

	picture, err := PictureFromMultipart(form)
	if err != nil {
		return nil, err
	}
	result.Picture = picture
	return result, nil
}

func (f *Form) Validate(maxPictureSizeInMB int) error {
	if err := utils.ValidateStruct(f.Fields); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return ValidatePicture(f.Picture, maxPictureSizeInMB)
}

// Encode writes the form as multipart/form-data and returns the body with
// its content type.
func (f *Form) Encode() (*bytes.Buffer, string, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	fields := []struct {
		key   string
		value string
	}{
		{constvars.FormFieldFullname, f.Fields.Fullname},
		{constvars.FormFieldPhoneNumber, f.Fields.PhoneNumber},
		{constvars.FormFieldGender, f.Fields.Gender},
		{constvars.FormFieldBirthDate, f.Fields.BirthDate},
		{constvars.FormFieldBio, f.Fields.Bio},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		if err := writer.WriteField(field.key, field.value); err != nil {
			return nil, "", exceptions.ErrCannotBuildMultipartForm(err)
		}
	}

	if err := writePicture(writer, f.Picture); err != nil {
		if customErr, ok := err.(*exceptions.CustomError); ok {
			return nil, "", customErr
		}
		return nil, "", exceptions.ErrCannotBuildMultipartForm(err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", exceptions.ErrCannotBuildMultipartForm(err)
	}
	return body, writer.FormDataContentType(), nil
}
