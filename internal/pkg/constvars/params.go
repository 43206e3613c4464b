package constvars

const (
	URLParamSessionID      = "session_id"
	URLParamSlotID         = "slot_id"
	URLParamPsychologistID = "psychologist_id"
	URLParamComplaintID    = "complaint_id"
	URLParamApplicationID  = "application_id"
)

const (
	URLQueryParamPage           = "page"
	URLQueryParamLimit          = "limit"
	URLQueryParamSkip           = "skip"
	URLQueryParamStatus         = "status"
	URLQueryParamGender         = "gender"
	URLQueryParamSpecialization = "specialization"
	URLQueryParamDate           = "date"
	URLQueryParamSort           = "sort"
	URLQueryParamSearch         = "search"
	URLQueryParamInterval       = "interval"
)

const (
	FormFieldFullname       = "fullname"
	FormFieldPhoneNumber    = "phoneNumber"
	FormFieldBio            = "bio"
	FormFieldGender         = "gender"
	FormFieldBirthDate      = "birthDate"
	FormFieldProfilePicture = "profilePicture"
)
