package dto

// UpdateStudentRequest represents a profile update. Nil fields are left
// untouched; password changes are not accepted through this path.
type UpdateStudentRequest struct {
	FirstName *string  `json:"firstName,omitempty"`
	LastName  *string  `json:"lastName,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Image     *string  `json:"image,omitempty"`
	BatchID   *int64   `json:"batchId,omitempty"`
	CourseIDs *[]int64 `json:"courseIds,omitempty"`
}

// StudentListResult is the service-level pagination result for students
type StudentListResult struct {
	Count    int         `json:"count"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	Pages    int         `json:"pages"`
	Students interface{} `json:"data"`
}

// UploadImageResponse reports the stored filename of a profile image
type UploadImageResponse struct {
	Filename string `json:"filename"`
}
